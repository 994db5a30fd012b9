package repository

import (
	"context"
	"salonbook/internal/models"

	"github.com/google/uuid"
)

// AvailabilityRepository defines the interface for the weekly schedule
type AvailabilityRepository interface {
	Repository
	// Replace swaps a salon's whole weekly schedule in one transaction
	// (delete-all-then-insert-all, matching the owner-facing settings form).
	Replace(ctx context.Context, salonID uuid.UUID, rules []models.AvailabilityRule) ([]models.AvailabilityRule, error)
	ListBySalon(ctx context.Context, salonID uuid.UUID) ([]models.AvailabilityRule, error)
	// UpdateRule patches one rule, scoped to the owning salon.
	UpdateRule(ctx context.Context, id, salonID uuid.UUID, patch models.UpdateAvailabilityRequest) (*models.AvailabilityRule, error)
}

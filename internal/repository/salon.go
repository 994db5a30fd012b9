package repository

import (
	"context"
	"salonbook/internal/models"

	"github.com/google/uuid"
)

// SalonRepository defines the interface for salon account operations
type SalonRepository interface {
	Repository
	Create(ctx context.Context, salon *models.Salon) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Salon, error)
	GetByEmail(ctx context.Context, email string) (*models.Salon, error)
	UpdateTimezone(ctx context.Context, id uuid.UUID, timezone string) error
}

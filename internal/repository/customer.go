package repository

import (
	"context"
	"salonbook/internal/models"

	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer lookups. Full customer
// management lives outside this service; booking only needs existence checks
// and contact details for reminders.
type CustomerRepository interface {
	Repository
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
}

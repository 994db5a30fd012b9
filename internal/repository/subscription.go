package repository

import (
	"context"
	"salonbook/internal/models"

	"github.com/google/uuid"
)

// SubscriptionRepository defines the lookups booking needs on visit packages.
// Selling and redeeming subscriptions is handled elsewhere.
type SubscriptionRepository interface {
	Repository
	GetByID(ctx context.Context, id uuid.UUID) (*models.Subscription, error)
}

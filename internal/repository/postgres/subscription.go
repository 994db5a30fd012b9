package postgres

import (
	"context"
	"database/sql"

	"salonbook/internal/models"
	"salonbook/internal/repository"

	"github.com/google/uuid"
)

type subscriptionRepository struct {
	repository.BaseRepository
}

// NewSubscriptionRepository creates a new PostgreSQL subscription repository
func NewSubscriptionRepository(db *sql.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		BaseRepository: repository.NewBaseRepository(db),
	}
}

func (r *subscriptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Subscription, error) {
	query := `
		SELECT id, salon_id, customer_id, name, visits_total, visits_used, created_at
		FROM subscriptions
		WHERE id = $1`

	sub := &models.Subscription{}
	err := r.DB().QueryRowContext(ctx, query, id).Scan(
		&sub.ID,
		&sub.SalonID,
		&sub.CustomerID,
		&sub.Name,
		&sub.VisitsTotal,
		&sub.VisitsUsed,
		&sub.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return sub, nil
}

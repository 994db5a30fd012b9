package postgres

import (
	"context"
	"database/sql"
	"time"

	"salonbook/internal/models"
	"salonbook/internal/repository"

	"github.com/google/uuid"
)

type customerRepository struct {
	repository.BaseRepository
}

// NewCustomerRepository creates a new PostgreSQL customer repository
func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{
		BaseRepository: repository.NewBaseRepository(db),
	}
}

func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (id, salon_id, name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING created_at, updated_at`

	customer.ID = uuid.New()
	return r.DB().QueryRowContext(ctx, query,
		customer.ID,
		customer.SalonID,
		customer.Name,
		customer.Email,
		customer.Phone,
		time.Now().UTC(),
	).Scan(&customer.CreatedAt, &customer.UpdatedAt)
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	query := `
		SELECT id, salon_id, name, email, phone, created_at, updated_at
		FROM customers
		WHERE id = $1`

	customer := &models.Customer{}
	err := r.DB().QueryRowContext(ctx, query, id).Scan(
		&customer.ID,
		&customer.SalonID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return customer, nil
}

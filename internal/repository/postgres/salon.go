package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"salonbook/internal/models"
	"salonbook/internal/repository"

	"github.com/google/uuid"
)

type salonRepository struct {
	repository.BaseRepository
}

// NewSalonRepository creates a new PostgreSQL salon repository
func NewSalonRepository(db *sql.DB) repository.SalonRepository {
	return &salonRepository{
		BaseRepository: repository.NewBaseRepository(db),
	}
}

func (r *salonRepository) Create(ctx context.Context, salon *models.Salon) error {
	if salon.Timezone == "" {
		salon.Timezone = "UTC"
	}
	if _, err := time.LoadLocation(salon.Timezone); err != nil {
		return repository.ErrInvalidTimezone
	}

	query := `
		INSERT INTO salons (id, name, email, password, timezone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING created_at, updated_at`

	salon.ID = uuid.New()
	err := r.DB().QueryRowContext(ctx, query,
		salon.ID,
		salon.Name,
		salon.Email,
		salon.Password,
		salon.Timezone,
		time.Now().UTC(),
	).Scan(&salon.CreatedAt, &salon.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "salons_email_key") {
			return repository.ErrEmailExists
		}
		return err
	}
	return nil
}

func (r *salonRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Salon, error) {
	return r.get(ctx, "id = $1", id)
}

func (r *salonRepository) GetByEmail(ctx context.Context, email string) (*models.Salon, error) {
	return r.get(ctx, "email = $1", email)
}

func (r *salonRepository) get(ctx context.Context, where string, arg interface{}) (*models.Salon, error) {
	query := `
		SELECT id, name, email, password, timezone, created_at, updated_at
		FROM salons
		WHERE ` + where

	salon := &models.Salon{}
	err := r.DB().QueryRowContext(ctx, query, arg).Scan(
		&salon.ID,
		&salon.Name,
		&salon.Email,
		&salon.Password,
		&salon.Timezone,
		&salon.CreatedAt,
		&salon.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return salon, nil
}

func (r *salonRepository) UpdateTimezone(ctx context.Context, id uuid.UUID, timezone string) error {
	if _, err := time.LoadLocation(timezone); err != nil {
		return repository.ErrInvalidTimezone
	}

	result, err := r.DB().ExecContext(ctx,
		`UPDATE salons SET timezone = $1, updated_at = $2 WHERE id = $3`,
		timezone, time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

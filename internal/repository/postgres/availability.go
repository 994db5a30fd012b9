package postgres

import (
	"context"
	"database/sql"
	"time"

	"salonbook/internal/models"
	"salonbook/internal/repository"

	"github.com/google/uuid"
)

type availabilityRepository struct {
	repository.BaseRepository
}

// NewAvailabilityRepository creates a new PostgreSQL availability repository
func NewAvailabilityRepository(db *sql.DB) repository.AvailabilityRepository {
	return &availabilityRepository{
		BaseRepository: repository.NewBaseRepository(db),
	}
}

const availabilityColumns = `id, salon_id, day_of_week, is_working_day, start_time::text, end_time::text, slot_duration, created_at, updated_at`

func scanRule(row interface{ Scan(...interface{}) error }, rule *models.AvailabilityRule) error {
	err := row.Scan(
		&rule.ID,
		&rule.SalonID,
		&rule.DayOfWeek,
		&rule.IsWorkingDay,
		&rule.StartTime,
		&rule.EndTime,
		&rule.SlotDuration,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	)
	if err == nil {
		rule.DayName = models.DayName(rule.DayOfWeek)
	}
	return err
}

func (r *availabilityRepository) Replace(ctx context.Context, salonID uuid.UUID, rules []models.AvailabilityRule) ([]models.AvailabilityRule, error) {
	saved := make([]models.AvailabilityRule, 0, len(rules))

	err := r.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM salon_availability WHERE salon_id = $1`, salonID,
		); err != nil {
			return err
		}

		query := `
			INSERT INTO salon_availability
				(id, salon_id, day_of_week, is_working_day, start_time, end_time, slot_duration, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
			RETURNING ` + availabilityColumns

		now := time.Now().UTC()
		for _, rule := range rules {
			row := tx.QueryRowContext(ctx, query,
				uuid.New(),
				salonID,
				rule.DayOfWeek,
				rule.IsWorkingDay,
				rule.StartTime,
				rule.EndTime,
				rule.SlotDuration,
				now,
			)
			var out models.AvailabilityRule
			if err := scanRule(row, &out); err != nil {
				return err
			}
			saved = append(saved, out)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *availabilityRepository) ListBySalon(ctx context.Context, salonID uuid.UUID) ([]models.AvailabilityRule, error) {
	query := `
		SELECT ` + availabilityColumns + `
		FROM salon_availability
		WHERE salon_id = $1
		ORDER BY day_of_week`

	rows, err := r.DB().QueryContext(ctx, query, salonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []models.AvailabilityRule
	for rows.Next() {
		var rule models.AvailabilityRule
		if err := scanRule(rows, &rule); err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *availabilityRepository) UpdateRule(ctx context.Context, id, salonID uuid.UUID, patch models.UpdateAvailabilityRequest) (*models.AvailabilityRule, error) {
	query := `
		UPDATE salon_availability
		SET is_working_day = COALESCE($3, is_working_day),
		    start_time = COALESCE($4::time, start_time),
		    end_time = COALESCE($5::time, end_time),
		    slot_duration = COALESCE($6, slot_duration),
		    updated_at = $7
		WHERE id = $1 AND salon_id = $2
		RETURNING ` + availabilityColumns

	row := r.DB().QueryRowContext(ctx, query,
		id,
		salonID,
		patch.IsWorkingDay,
		patch.StartTime,
		patch.EndTime,
		patch.SlotDuration,
		time.Now().UTC(),
	)

	var rule models.AvailabilityRule
	if err := scanRule(row, &rule); err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &rule, nil
}

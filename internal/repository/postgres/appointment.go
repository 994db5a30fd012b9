package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"salonbook/internal/booking"
	"salonbook/internal/models"
	"salonbook/internal/repository"

	"github.com/google/uuid"
)

type appointmentRepository struct {
	repository.BaseRepository
}

// NewAppointmentRepository creates a new PostgreSQL appointment repository
func NewAppointmentRepository(db *sql.DB) repository.AppointmentRepository {
	return &appointmentRepository{
		BaseRepository: repository.NewBaseRepository(db),
	}
}

const appointmentColumns = `id, salon_id, customer_id, subscription_id, requested_time, proposed_time, status, notes, reminder_sent_at, created_at, updated_at`

func scanAppointment(row interface{ Scan(...interface{}) error }, apt *models.Appointment) error {
	return row.Scan(
		&apt.ID,
		&apt.SalonID,
		&apt.CustomerID,
		&apt.SubscriptionID,
		&apt.RequestedTime,
		&apt.ProposedTime,
		&apt.Status,
		&apt.Notes,
		&apt.ReminderSentAt,
		&apt.CreatedAt,
		&apt.UpdatedAt,
	)
}

// CreateIfFree inserts the appointment and checks for colliding CONFIRMED
// appointments in the same statement. The WHERE NOT EXISTS guard and the
// partial unique index on (salon_id, requested_time) WHERE status='CONFIRMED'
// together prevent two racing bookings from both landing.
func (r *appointmentRepository) CreateIfFree(ctx context.Context, apt *models.Appointment, window time.Duration) error {
	query := `
		INSERT INTO appointments
			(id, salon_id, customer_id, subscription_id, requested_time, notes, status, created_at, updated_at)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $8
		WHERE NOT EXISTS (
			SELECT 1 FROM appointments
			WHERE salon_id = $2
			  AND status = 'CONFIRMED'
			  AND COALESCE(proposed_time, requested_time) < $5::timestamptz + make_interval(mins => $9)
			  AND COALESCE(proposed_time, requested_time) + make_interval(mins => $9) > $5::timestamptz
		)
		RETURNING created_at, updated_at`

	apt.ID = uuid.New()
	apt.Status = models.StatusPending
	apt.RequestedTime = apt.RequestedTime.UTC()

	err := r.DB().QueryRowContext(ctx, query,
		apt.ID,
		apt.SalonID,
		apt.CustomerID,
		apt.SubscriptionID,
		apt.RequestedTime,
		apt.Notes,
		apt.Status,
		time.Now().UTC(),
		int(window.Minutes()),
	).Scan(&apt.CreatedAt, &apt.UpdatedAt)

	if err == sql.ErrNoRows {
		return repository.ErrSlotTaken
	}
	if err != nil {
		if strings.Contains(err.Error(), "appointments_salon_confirmed_time_key") {
			return repository.ErrSlotTaken
		}
		return err
	}
	return nil
}

func (r *appointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

	apt := &models.Appointment{}
	if err := scanAppointment(r.DB().QueryRowContext(ctx, query, id), apt); err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return apt, nil
}

func (r *appointmentRepository) GetBySalon(ctx context.Context, id, salonID uuid.UUID) (*models.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1 AND salon_id = $2`

	apt := &models.Appointment{}
	if err := scanAppointment(r.DB().QueryRowContext(ctx, query, id, salonID), apt); err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return apt, nil
}

func (r *appointmentRepository) ListBySalon(ctx context.Context, salonID uuid.UUID, filter repository.AppointmentFilter) ([]models.Appointment, error) {
	query := `
		SELECT a.id, a.salon_id, a.customer_id, a.subscription_id, a.requested_time, a.proposed_time,
		       a.status, a.notes, a.reminder_sent_at, a.created_at, a.updated_at,
		       c.name, c.email, c.phone
		FROM appointments a
		JOIN customers c ON a.customer_id = c.id
		WHERE a.salon_id = $1`

	args := []interface{}{salonID}
	if filter.Status != nil {
		query += ` AND a.status = $2`
		args = append(args, *filter.Status)
	}
	query += ` ORDER BY a.requested_time DESC`

	rows, err := r.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appointments []models.Appointment
	for rows.Next() {
		var apt models.Appointment
		if err := rows.Scan(
			&apt.ID,
			&apt.SalonID,
			&apt.CustomerID,
			&apt.SubscriptionID,
			&apt.RequestedTime,
			&apt.ProposedTime,
			&apt.Status,
			&apt.Notes,
			&apt.ReminderSentAt,
			&apt.CreatedAt,
			&apt.UpdatedAt,
			&apt.CustomerName,
			&apt.CustomerEmail,
			&apt.CustomerPhone,
		); err != nil {
			return nil, err
		}
		appointments = append(appointments, apt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE customer_id = $1
		ORDER BY requested_time DESC`

	rows, err := r.DB().QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appointments []models.Appointment
	for rows.Next() {
		var apt models.Appointment
		if err := scanAppointment(rows, &apt); err != nil {
			return nil, err
		}
		appointments = append(appointments, apt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) ListCommittedTimes(ctx context.Context, salonID uuid.UUID) ([]time.Time, error) {
	query := `
		SELECT COALESCE(proposed_time, requested_time)
		FROM appointments
		WHERE salon_id = $1 AND status IN ($2, $3)
		ORDER BY 1`

	rows, err := r.DB().QueryContext(ctx, query, salonID, models.StatusConfirmed, models.StatusRescheduleProposed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var times []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		times = append(times, t.UTC())
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return times, nil
}

func (r *appointmentRepository) ApplyTransition(ctx context.Context, id uuid.UUID, from models.AppointmentStatus, change booking.Change) (*models.Appointment, error) {
	query := `
		UPDATE appointments
		SET status = $3, requested_time = $4, proposed_time = $5, updated_at = $6
		WHERE id = $1 AND status = $2
		RETURNING ` + appointmentColumns

	apt := &models.Appointment{}
	err := scanAppointment(r.DB().QueryRowContext(ctx, query,
		id,
		from,
		change.Status,
		change.RequestedTime.UTC(),
		change.ProposedTime,
		time.Now().UTC(),
	), apt)

	if err == sql.ErrNoRows {
		// Either the row is gone or a concurrent transition moved it first.
		var exists bool
		if checkErr := r.DB().QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM appointments WHERE id = $1)`, id,
		).Scan(&exists); checkErr != nil {
			return nil, checkErr
		}
		if !exists {
			return nil, repository.ErrNotFound
		}
		return nil, repository.ErrConflict
	}
	if err != nil {
		if strings.Contains(err.Error(), "appointments_salon_confirmed_time_key") {
			return nil, repository.ErrSlotTaken
		}
		return nil, err
	}
	return apt, nil
}

func (r *appointmentRepository) ListDueReminders(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	query := `
		SELECT a.id, a.salon_id, a.customer_id, a.subscription_id, a.requested_time, a.proposed_time,
		       a.status, a.notes, a.reminder_sent_at, a.created_at, a.updated_at,
		       c.name, c.email, c.phone
		FROM appointments a
		JOIN customers c ON a.customer_id = c.id
		WHERE a.status = $1
		  AND a.reminder_sent_at IS NULL
		  AND a.requested_time >= $2
		  AND a.requested_time < $3
		ORDER BY a.requested_time`

	rows, err := r.DB().QueryContext(ctx, query, models.StatusConfirmed, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appointments []models.Appointment
	for rows.Next() {
		var apt models.Appointment
		if err := rows.Scan(
			&apt.ID,
			&apt.SalonID,
			&apt.CustomerID,
			&apt.SubscriptionID,
			&apt.RequestedTime,
			&apt.ProposedTime,
			&apt.Status,
			&apt.Notes,
			&apt.ReminderSentAt,
			&apt.CreatedAt,
			&apt.UpdatedAt,
			&apt.CustomerName,
			&apt.CustomerEmail,
			&apt.CustomerPhone,
		); err != nil {
			return nil, err
		}
		appointments = append(appointments, apt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) MarkReminded(ctx context.Context, id uuid.UUID, at time.Time) error {
	result, err := r.DB().ExecContext(ctx,
		`UPDATE appointments SET reminder_sent_at = $1 WHERE id = $2`,
		at.UTC(), id,
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

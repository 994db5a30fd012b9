package repository

import (
	"context"
	"time"

	"salonbook/internal/booking"
	"salonbook/internal/models"

	"github.com/google/uuid"
)

// AppointmentFilter narrows owner-facing appointment listings
type AppointmentFilter struct {
	Status *models.AppointmentStatus
}

// AppointmentRepository defines the interface for appointment persistence
type AppointmentRepository interface {
	Repository
	// CreateIfFree inserts the appointment only when no CONFIRMED appointment
	// for the salon occupies a window overlapping [RequestedTime,
	// RequestedTime+window). The check and insert are one statement, so two
	// racing bookings cannot both land; the loser gets ErrSlotTaken.
	CreateIfFree(ctx context.Context, apt *models.Appointment, window time.Duration) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	// GetBySalon returns the appointment only when it belongs to salonID;
	// cross-salon access is reported as ErrNotFound.
	GetBySalon(ctx context.Context, id, salonID uuid.UUID) (*models.Appointment, error)
	ListBySalon(ctx context.Context, salonID uuid.UUID, filter AppointmentFilter) ([]models.Appointment, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Appointment, error)
	// ListCommittedTimes returns effective times (proposed if set, else
	// requested) of CONFIRMED and RESCHEDULE_PROPOSED appointments.
	ListCommittedTimes(ctx context.Context, salonID uuid.UUID) ([]time.Time, error)
	// ApplyTransition persists a lifecycle change guarded by the status the
	// change was computed from; a concurrent transition yields ErrConflict.
	ApplyTransition(ctx context.Context, id uuid.UUID, from models.AppointmentStatus, change booking.Change) (*models.Appointment, error)
	// ListDueReminders returns CONFIRMED, un-reminded appointments starting in
	// [from, to), with customer contact details populated.
	ListDueReminders(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
	MarkReminded(ctx context.Context, id uuid.UUID, at time.Time) error
}

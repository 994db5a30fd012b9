package models

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus enumerates the appointment lifecycle states.
type AppointmentStatus string

const (
	// StatusPending is the initial state of every appointment request.
	StatusPending AppointmentStatus = "PENDING"
	// StatusConfirmed means the owner accepted the requested (or proposed) time.
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	// StatusRescheduleProposed means the owner countered with a new time and is
	// waiting on the customer.
	StatusRescheduleProposed AppointmentStatus = "RESCHEDULE_PROPOSED"
	// StatusCancelled is terminal.
	StatusCancelled AppointmentStatus = "CANCELLED"
)

// Valid reports whether s is a known status.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRescheduleProposed, StatusCancelled:
		return true
	}
	return false
}

// Appointment belongs to exactly one salon and one customer. RequestedTime is
// stored as a UTC instant; ProposedTime is non-nil iff the status is
// RESCHEDULE_PROPOSED.
type Appointment struct {
	ID             uuid.UUID         `json:"id" db:"id"`
	SalonID        uuid.UUID         `json:"salonId" db:"salon_id"`
	CustomerID     uuid.UUID         `json:"customerId" db:"customer_id"`
	SubscriptionID *uuid.UUID        `json:"subscriptionId,omitempty" db:"subscription_id"`
	RequestedTime  time.Time         `json:"requestedTime" db:"requested_time"`
	ProposedTime   *time.Time        `json:"proposedTime,omitempty" db:"proposed_time"`
	Status         AppointmentStatus `json:"status" db:"status" example:"PENDING"`
	Notes          *string           `json:"notes,omitempty" db:"notes"`
	ReminderSentAt *time.Time        `json:"-" db:"reminder_sent_at"`
	CreatedAt      time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time         `json:"updatedAt" db:"updated_at"`

	// Joined customer fields, populated on owner-facing listings only.
	CustomerName  string  `json:"customerName,omitempty" db:"-"`
	CustomerEmail string  `json:"customerEmail,omitempty" db:"-"`
	CustomerPhone *string `json:"customerPhone,omitempty" db:"-"`
}

// EffectiveTime is the instant the appointment currently occupies: the
// proposed time while a reschedule is pending, otherwise the requested time.
func (a *Appointment) EffectiveTime() time.Time {
	if a.ProposedTime != nil {
		return *a.ProposedTime
	}
	return a.RequestedTime
}

// CreateAppointmentRequest is a customer's booking request.
type CreateAppointmentRequest struct {
	CustomerID     uuid.UUID  `json:"customerId" binding:"required"`
	SalonID        uuid.UUID  `json:"salonId" binding:"required"`
	SubscriptionID *uuid.UUID `json:"subscriptionId"`
	RequestedTime  time.Time  `json:"requestedTime" binding:"required" example:"2026-09-07T16:00:00Z"`
	Notes          *string    `json:"notes" binding:"omitempty,max=500"`
}

// ProposeTimeRequest carries the owner's counter-offer.
type ProposeTimeRequest struct {
	ProposedTime time.Time `json:"proposedTime" binding:"required" example:"2026-09-07T17:00:00Z"`
}

// Slot is a bookable instant, derived on every query and never persisted.
type Slot struct {
	Time      time.Time `json:"time" example:"2026-09-07T16:00:00Z"`
	Available bool      `json:"available" example:"true"`
}

// SlotsResponse is the available-slots payload. Times are UTC instants; the
// consumer renders them using SalonTimezone.
type SlotsResponse struct {
	Slots         []Slot `json:"slots"`
	SalonTimezone string `json:"salonTimezone" example:"America/Los_Angeles"`
}

// AppointmentResponse wraps a single appointment.
type AppointmentResponse struct {
	Appointment *Appointment `json:"appointment"`
}

// AppointmentsResponse wraps a listing; SalonTimezone is set on owner listings.
type AppointmentsResponse struct {
	Appointments  []Appointment `json:"appointments"`
	SalonTimezone string        `json:"salonTimezone,omitempty" example:"America/Los_Angeles"`
}

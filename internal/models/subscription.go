package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is a visit-package purchased by a customer. Appointments may
// reference one; visit redemption is tracked here, never on the appointment.
type Subscription struct {
	ID          uuid.UUID `json:"id" db:"id"`
	SalonID     uuid.UUID `json:"salonId" db:"salon_id"`
	CustomerID  uuid.UUID `json:"customerId" db:"customer_id"`
	Name        string    `json:"name" db:"name" example:"10-visit pack"`
	VisitsTotal int       `json:"visitsTotal" db:"visits_total"`
	VisitsUsed  int       `json:"visitsUsed" db:"visits_used"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

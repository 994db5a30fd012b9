package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a salon's customer
type Customer struct {
	ID        uuid.UUID `json:"id" db:"id"`
	SalonID   uuid.UUID `json:"salonId" db:"salon_id"`
	Name      string    `json:"name" db:"name" example:"Jane Doe"`
	Email     string    `json:"email" db:"email" example:"jane@example.com"`
	Phone     *string   `json:"phone,omitempty" db:"phone"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateCustomerRequest registers a customer record for the salon.
type CreateCustomerRequest struct {
	Name  string  `json:"name" binding:"required,max=100" example:"Jane Doe"`
	Email string  `json:"email" binding:"required,email" example:"jane@example.com"`
	Phone *string `json:"phone" binding:"omitempty,max=30" example:"+1 555 0100"`
}

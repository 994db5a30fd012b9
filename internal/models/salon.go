package models

import (
	"time"

	"github.com/google/uuid"
)

// Salon represents a salon account. All slot generation and local-time
// rendering for a salon's appointments is relative to its IANA timezone.
type Salon struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" binding:"required" example:"Shear Genius"`
	Email     string    `json:"email" db:"email" binding:"required,email" example:"owner@sheargenius.com"`
	Password  string    `json:"-" db:"password"`
	Timezone  string    `json:"timezone" db:"timezone" example:"America/Los_Angeles"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// RegisterSalonRequest represents a salon signup request
type RegisterSalonRequest struct {
	Name     string `json:"name" binding:"required,max=100" example:"Shear Genius"`
	Email    string `json:"email" binding:"required,email" example:"owner@sheargenius.com"`
	Password string `json:"password" binding:"required,min=8" example:"mypassword123"`
	Timezone string `json:"timezone" binding:"omitempty,timezone" example:"America/Los_Angeles"`
}

// UpdateTimezoneRequest changes the timezone a salon schedules in
type UpdateTimezoneRequest struct {
	Timezone string `json:"timezone" binding:"required,timezone" example:"Europe/Stockholm"`
}

// LoginRequest represents salon owner login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"owner@sheargenius.com"`
	Password string `json:"password" binding:"required" example:"mypassword123"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	Salon *Salon `json:"salon"`
}

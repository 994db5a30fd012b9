package repository

import "errors"

var (
	// Common errors
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidTimezone = errors.New("invalid timezone")

	// Salon errors
	ErrEmailExists = errors.New("email already exists")

	// Appointment errors
	ErrSlotTaken = errors.New("slot is no longer available")
)

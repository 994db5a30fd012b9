// Package booking holds the appointment lifecycle state machine. Every legal
// transition lives in one pure function so the HTTP handlers stay thin and the
// table is testable without a database.
package booking

import (
	"errors"
	"fmt"
	"time"

	"salonbook/internal/models"
)

var (
	// ErrInvalidTransition is returned for any (status, action) pair outside
	// the transition table. It is always reported, never swallowed.
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrProposedTimeRequired is returned when a propose action carries no time.
	ErrProposedTimeRequired = errors.New("proposed time is required")
)

// Action is something an owner or customer does to an appointment.
type Action string

const (
	// ActionConfirm accepts a pending request as-is (owner).
	ActionConfirm Action = "confirm"
	// ActionPropose counters a pending request with a new time (owner).
	ActionPropose Action = "propose"
	// ActionAccept takes the proposed time (customer).
	ActionAccept Action = "accept"
	// ActionCancel ends the appointment from any live state (either party).
	ActionCancel Action = "cancel"
)

// Change is the full post-transition field state to persist. ProposedTime is
// nil whenever the resulting status is not RESCHEDULE_PROPOSED.
type Change struct {
	Status        models.AppointmentStatus
	RequestedTime time.Time
	ProposedTime  *time.Time
}

// Transition applies action to the appointment's current state and returns
// the resulting field values. proposedTime is consulted only by ActionPropose.
func Transition(apt *models.Appointment, action Action, proposedTime *time.Time) (Change, error) {
	invalid := func() (Change, error) {
		return Change{}, fmt.Errorf("%w: cannot %s appointment in status %s", ErrInvalidTransition, action, apt.Status)
	}

	// CANCELLED is terminal regardless of action.
	if apt.Status == models.StatusCancelled {
		return invalid()
	}

	switch action {
	case ActionConfirm:
		if apt.Status != models.StatusPending {
			return invalid()
		}
		return Change{Status: models.StatusConfirmed, RequestedTime: apt.RequestedTime}, nil

	case ActionPropose:
		if apt.Status != models.StatusPending {
			return invalid()
		}
		if proposedTime == nil {
			return Change{}, ErrProposedTimeRequired
		}
		t := proposedTime.UTC()
		return Change{Status: models.StatusRescheduleProposed, RequestedTime: apt.RequestedTime, ProposedTime: &t}, nil

	case ActionAccept:
		if apt.Status != models.StatusRescheduleProposed || apt.ProposedTime == nil {
			return invalid()
		}
		// The accepted proposal becomes the appointment time.
		return Change{Status: models.StatusConfirmed, RequestedTime: *apt.ProposedTime}, nil

	case ActionCancel:
		return Change{Status: models.StatusCancelled, RequestedTime: apt.RequestedTime}, nil
	}

	return invalid()
}

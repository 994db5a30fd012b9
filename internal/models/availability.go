package models

import (
	"time"

	"github.com/google/uuid"
)

// SlotDurations lists the permitted slot lengths in minutes.
var SlotDurations = []int{15, 30, 45, 60, 90, 120}

// DefaultSlotDuration is used when a rule omits the duration.
const DefaultSlotDuration = 30

// Placeholder times stored on non-working days; never used for slot math.
const (
	PlaceholderStartTime = "09:00:00"
	PlaceholderEndTime   = "17:00:00"
)

var dayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// DayName returns the English name for a day-of-week index (Sunday = 0).
func DayName(dayOfWeek int) string {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return ""
	}
	return dayNames[dayOfWeek]
}

// AvailabilityRule is one row of a salon's weekly recurring schedule: exactly
// one per (salon, day-of-week). Start and end are civil times of day,
// interpreted in the salon's timezone.
type AvailabilityRule struct {
	ID           uuid.UUID `json:"id" db:"id"`
	SalonID      uuid.UUID `json:"salonId" db:"salon_id"`
	DayOfWeek    int       `json:"dayOfWeek" db:"day_of_week" example:"1"`
	DayName      string    `json:"dayName,omitempty" db:"-" example:"Monday"`
	IsWorkingDay bool      `json:"isWorkingDay" db:"is_working_day"`
	StartTime    string    `json:"startTime" db:"start_time" example:"09:00:00"`
	EndTime      string    `json:"endTime" db:"end_time" example:"17:00:00"`
	SlotDuration int       `json:"slotDuration" db:"slot_duration" example:"30"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// AvailabilitySetting is one incoming row of a replace-all request.
type AvailabilitySetting struct {
	DayOfWeek    int    `json:"dayOfWeek" binding:"min=0,max=6" example:"1"`
	IsWorkingDay bool   `json:"isWorkingDay"`
	StartTime    string `json:"startTime" binding:"omitempty,timeofday" example:"09:00"`
	EndTime      string `json:"endTime" binding:"omitempty,timeofday" example:"17:00"`
	SlotDuration int    `json:"slotDuration" binding:"omitempty,slotduration" example:"30"`
}

// ReplaceAvailabilityRequest replaces a salon's whole weekly schedule.
type ReplaceAvailabilityRequest struct {
	AvailabilitySettings []AvailabilitySetting `json:"availabilitySettings" binding:"required,dive"`
}

// UpdateAvailabilityRequest patches a single rule; nil fields are left as-is.
type UpdateAvailabilityRequest struct {
	IsWorkingDay *bool   `json:"isWorkingDay"`
	StartTime    *string `json:"startTime" binding:"omitempty,timeofday" example:"10:00"`
	EndTime      *string `json:"endTime" binding:"omitempty,timeofday" example:"16:00"`
	SlotDuration *int    `json:"slotDuration" binding:"omitempty,slotduration" example:"45"`
}

// AvailabilityResponse wraps the 7-row schedule for the wire.
type AvailabilityResponse struct {
	Availability []AvailabilityRule `json:"availability"`
}

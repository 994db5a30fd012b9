package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbook/internal/models"
)

func mondayRule(start, end string, duration int) models.AvailabilityRule {
	return models.AvailabilityRule{
		DayOfWeek:    1,
		IsWorkingDay: true,
		StartTime:    start,
		EndTime:      end,
		SlotDuration: duration,
	}
}

func TestGenerate_BasicMonday(t *testing.T) {
	la := mustLoad(t, "America/Los_Angeles")
	// Tuesday 2026-09-01 on the west coast is still Monday evening, so the
	// walk starts on Monday August 31 and the first bookable Monday window is
	// September 7.
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	slots := Generate([]models.AvailabilityRule{mondayRule("09:00", "11:00", 60)}, 7, nil, la, now)

	require.Len(t, slots, 2)
	assert.Equal(t, time.Date(2026, 9, 7, 16, 0, 0, 0, time.UTC), slots[0]) // 09:00 PDT
	assert.Equal(t, time.Date(2026, 9, 7, 17, 0, 0, 0, time.UTC), slots[1]) // 10:00 PDT
}

func TestGenerate_ExcludesBookedWindow(t *testing.T) {
	la := mustLoad(t, "America/Los_Angeles")
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	booked := []time.Time{time.Date(2026, 9, 7, 16, 0, 0, 0, time.UTC)} // 09:00 PDT Monday

	slots := Generate([]models.AvailabilityRule{mondayRule("09:00", "11:00", 60)}, 7, booked, la, now)

	require.Len(t, slots, 1)
	assert.Equal(t, time.Date(2026, 9, 7, 17, 0, 0, 0, time.UTC), slots[0])
}

func TestGenerate_PartialOverlapExcluded(t *testing.T) {
	la := mustLoad(t, "America/Los_Angeles")
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	// 09:30 PDT sits inside the 09:00 slot window and clips the 10:00 one.
	booked := []time.Time{time.Date(2026, 9, 7, 16, 30, 0, 0, time.UTC)}

	slots := Generate([]models.AvailabilityRule{mondayRule("09:00", "11:00", 60)}, 7, booked, la, now)

	assert.Empty(t, slots)
}

func TestGenerate_DropsTrailingPartialSlot(t *testing.T) {
	la := mustLoad(t, "America/Los_Angeles")
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// 90 minutes of window with 60-minute slots: only 09:00 fits entirely.
	slots := Generate([]models.AvailabilityRule{mondayRule("09:00", "10:30", 60)}, 7, nil, la, now)

	require.Len(t, slots, 1)
	assert.Equal(t, time.Date(2026, 9, 7, 16, 0, 0, 0, time.UTC), slots[0])
}

func TestGenerate_SkipsPastSlots(t *testing.T) {
	la := mustLoad(t, "America/Los_Angeles")
	// Monday 2026-09-07 at 09:30 PDT: the 09:00 slot has already started.
	now := time.Date(2026, 9, 7, 16, 30, 0, 0, time.UTC)

	slots := Generate([]models.AvailabilityRule{mondayRule("09:00", "11:00", 60)}, 0, nil, la, now)

	require.Len(t, slots, 1)
	assert.Equal(t, time.Date(2026, 9, 7, 17, 0, 0, 0, time.UTC), slots[0])
}

func TestGenerate_NonWorkingAndMissingDays(t *testing.T) {
	la := mustLoad(t, "America/Los_Angeles")
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	off := mondayRule("09:00", "11:00", 60)
	off.IsWorkingDay = false
	assert.Empty(t, Generate([]models.AvailabilityRule{off}, 7, nil, la, now))

	// A rule set that covers no day of the horizon.
	saturday := mondayRule("09:00", "11:00", 60)
	saturday.DayOfWeek = 6
	slots := Generate([]models.AvailabilityRule{saturday}, 2, nil, la, now)
	assert.Empty(t, slots)
}

func TestGenerate_MalformedWindow(t *testing.T) {
	la := mustLoad(t, "America/Los_Angeles")
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, Generate([]models.AvailabilityRule{mondayRule("11:00", "09:00", 60)}, 7, nil, la, now))
	assert.Empty(t, Generate([]models.AvailabilityRule{mondayRule("09:00", "09:00", 60)}, 7, nil, la, now))
	assert.Empty(t, Generate([]models.AvailabilityRule{mondayRule("garbage", "11:00", 60)}, 7, nil, la, now))
}

func TestGenerate_SpringForwardDay(t *testing.T) {
	ny := mustLoad(t, "America/New_York")
	now := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)

	rule := models.AvailabilityRule{
		DayOfWeek:    0, // Sunday 2026-03-08, the spring-forward date
		IsWorkingDay: true,
		StartTime:    "01:00",
		EndTime:      "04:00",
		SlotDuration: 60,
	}

	slots := Generate([]models.AvailabilityRule{rule}, 3, nil, ny, now)

	// The 01:00-04:00 wall-clock window spans only two real hours because
	// 02:00-03:00 does not exist.
	require.Len(t, slots, 2)
	assert.Equal(t, time.Date(2026, 3, 8, 6, 0, 0, 0, time.UTC), slots[0]) // 01:00 EST
	assert.Equal(t, time.Date(2026, 3, 8, 7, 0, 0, 0, time.UTC), slots[1]) // 03:00 EDT
}

func TestGenerate_Idempotent(t *testing.T) {
	la := mustLoad(t, "America/Los_Angeles")
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	rules := []models.AvailabilityRule{mondayRule("09:00", "17:00", 30)}

	first := Generate(rules, 30, nil, la, now)
	second := Generate(rules, 30, nil, la, now)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)

	// Ascending order holds across the whole horizon.
	for i := 1; i < len(first); i++ {
		assert.True(t, first[i-1].Before(first[i]))
	}
}

func TestGenerate_DefaultDuration(t *testing.T) {
	la := mustLoad(t, "America/Los_Angeles")
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	slots := Generate([]models.AvailabilityRule{mondayRule("09:00", "10:00", 0)}, 7, nil, la, now)

	// Zero duration falls back to the 30-minute default.
	require.Len(t, slots, 2)
	assert.Equal(t, time.Date(2026, 9, 7, 16, 30, 0, 0, time.UTC), slots[1])
}

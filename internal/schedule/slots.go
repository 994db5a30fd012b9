package schedule

import (
	"time"

	"salonbook/internal/models"
)

// Generate computes the bookable instants for a salon, walking every calendar
// day in [now, now+horizonDays] on the salon's wall clock and stepping each
// working day's window by its slot duration.
//
// booked holds the effective start times of committed appointments; a
// candidate is dropped when its [start, start+duration) window overlaps
// [booked, booked+duration), using the current rule's duration for both
// windows. Slots already in the past are never emitted. The result is ordered,
// side-effect free and recomputed on every call.
func Generate(rules []models.AvailabilityRule, horizonDays int, booked []time.Time, loc *time.Location, now time.Time) []time.Time {
	if horizonDays < 0 || len(rules) == 0 {
		return nil
	}

	byDay := make(map[int]models.AvailabilityRule, len(rules))
	for _, r := range rules {
		byDay[r.DayOfWeek] = r
	}

	var slots []time.Time
	date := ToCivil(now, loc).Date()
	for i := 0; i <= horizonDays; i++ {
		day := date
		date = date.NextDay()

		dayStart := FromCivil(day, loc)
		rule, ok := byDay[DayOfWeek(dayStart, loc)]
		if !ok || !rule.IsWorkingDay {
			continue
		}

		sh, sm, ss, err := ParseTimeOfDay(rule.StartTime)
		if err != nil {
			continue
		}
		eh, em, es, err := ParseTimeOfDay(rule.EndTime)
		if err != nil {
			continue
		}

		start := FromCivil(day.At(sh, sm, ss), loc)
		end := FromCivil(day.At(eh, em, es), loc)
		if !end.After(start) {
			// Malformed window; the day yields no slots rather than an error.
			continue
		}

		duration := time.Duration(rule.SlotDuration) * time.Minute
		if rule.SlotDuration <= 0 {
			duration = models.DefaultSlotDuration * time.Minute
		}

		for s := start; !s.Add(duration).After(end); s = s.Add(duration) {
			if s.Before(now) {
				continue
			}
			if overlapsAny(s, s.Add(duration), booked, duration) {
				continue
			}
			slots = append(slots, s)
		}
	}
	return slots
}

// overlapsAny reports whether the half-open window [start, end) overlaps any
// booked window [b, b+duration).
func overlapsAny(start, end time.Time, booked []time.Time, duration time.Duration) bool {
	for _, b := range booked {
		if start.Before(b.Add(duration)) && b.Before(end) {
			return true
		}
	}
	return false
}

// Package schedule implements the salon-local calendar math behind slot
// generation: projecting instants into civil time in an arbitrary IANA zone,
// the deterministic inverse, and the weekly recurring schedule walk.
package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Civil is a zone-less wall-clock reading: the components a person in some
// timezone would see on their calendar and clock.
type Civil struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// key packs a Civil into a single comparable value.
func (c Civil) key() int64 {
	return int64(c.Year)*1e10 + int64(c.Month)*1e8 + int64(c.Day)*1e6 +
		int64(c.Hour)*1e4 + int64(c.Minute)*1e2 + int64(c.Second)
}

// Date returns c truncated to midnight.
func (c Civil) Date() Civil {
	return Civil{Year: c.Year, Month: c.Month, Day: c.Day}
}

// NextDay returns the civil date one calendar day later, rolling over month
// and year boundaries.
func (c Civil) NextDay() Civil {
	n := time.Date(c.Year, time.Month(c.Month), c.Day+1, 0, 0, 0, 0, time.UTC)
	return Civil{Year: n.Year(), Month: int(n.Month()), Day: n.Day()}
}

// At returns the civil date combined with a time of day.
func (c Civil) At(hour, minute, second int) Civil {
	return Civil{Year: c.Year, Month: c.Month, Day: c.Day, Hour: hour, Minute: minute, Second: second}
}

// ToCivil projects an instant into the wall clock of loc.
func ToCivil(t time.Time, loc *time.Location) Civil {
	lt := t.In(loc)
	return Civil{
		Year:   lt.Year(),
		Month:  int(lt.Month()),
		Day:    lt.Day(),
		Hour:   lt.Hour(),
		Minute: lt.Minute(),
		Second: lt.Second(),
	}
}

// DayOfWeek returns the day of week of t on the wall clock of loc,
// Sunday = 0 through Saturday = 6.
func DayOfWeek(t time.Time, loc *time.Location) int {
	return int(t.In(loc).Weekday())
}

// FromCivil returns the UTC instant whose projection into loc reproduces c.
//
// Civil-to-instant is not a pure formula near DST transitions, so the
// resolution policy is explicit: when a fall-back transition makes c ambiguous
// the earlier instant wins, and when a spring-forward gap makes c nonexistent
// the first instant after the gap is returned.
func FromCivil(c Civil, loc *time.Location) time.Time {
	guess := time.Date(c.Year, time.Month(c.Month), c.Day, c.Hour, c.Minute, c.Second, 0, time.UTC)
	target := c.key()

	// Probe the zone offset on both sides of the widest real-world window.
	// Each distinct offset yields one candidate instant; an ambiguous civil
	// time produces two matching candidates and the earlier one is kept.
	seen := make(map[int]bool)
	var matches []time.Time
	for _, probe := range []time.Duration{-14 * time.Hour, 0, 14 * time.Hour} {
		_, offset := guess.Add(probe).In(loc).Zone()
		if seen[offset] {
			continue
		}
		seen[offset] = true
		cand := guess.Add(-time.Duration(offset) * time.Second)
		if ToCivil(cand, loc).key() == target {
			matches = append(matches, cand)
		}
	}
	if len(matches) > 0 {
		sort.Slice(matches, func(i, j int) bool { return matches[i].Before(matches[j]) })
		return matches[0].UTC()
	}

	// No offset reproduces c: it fell into a spring-forward gap. Around a gap
	// the projection is monotonic, so binary search finds the first instant
	// whose wall clock is past the missing time.
	lo := guess.Add(-14 * time.Hour).Unix()
	hi := guess.Add(14 * time.Hour).Unix()
	for lo <= hi {
		mid := lo + (hi-lo)/2
		if ToCivil(time.Unix(mid, 0), loc).key() < target {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return time.Unix(lo, 0).UTC()
}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS" into its components.
func ParseTimeOfDay(s string) (hour, minute, second int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid time of day %q", s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("invalid time of day %q", s)
		}
		nums[i] = n
	}
	if nums[0] < 0 || nums[0] > 23 || nums[1] < 0 || nums[1] > 59 || nums[2] < 0 || nums[2] > 59 {
		return 0, 0, 0, fmt.Errorf("time of day %q out of range", s)
	}
	return nums[0], nums[1], nums[2], nil
}

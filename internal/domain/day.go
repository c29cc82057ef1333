package domain

import (
	"slices"
	"time"
)

// DayLayout is the wire format of a calendar day.
const DayLayout = "2006-01-02"

// DayOf returns the calendar day containing now in tz, expressed as
// midnight UTC so it can be stored in a DATE column and compared directly.
func DayOf(now time.Time, tz *time.Location) time.Time {
	local := now.In(tz)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into midnight UTC.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayLayout, s, time.UTC)
}

// ParseTimezone parses an IANA timezone name, returning UTC as fallback.
func ParseTimezone(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ComputeStreaks returns the current and the longest run of consecutive
// completed days. days may be unsorted and contain duplicates. The current
// run only counts when it ends on asOf or on the day before; any gap day
// resets it to zero.
func ComputeStreaks(days []time.Time, asOf time.Time) (current, longest int) {
	if len(days) == 0 {
		return 0, 0
	}

	set := make(map[time.Time]struct{}, len(days))
	for _, d := range days {
		set[DayOf(d, time.UTC)] = struct{}{}
	}

	sorted := make([]time.Time, 0, len(set))
	for d := range set {
		sorted = append(sorted, d)
	}
	slices.SortFunc(sorted, func(a, b time.Time) int { return a.Compare(b) })

	run := 0
	var prev time.Time
	for i, d := range sorted {
		if i > 0 && prev.AddDate(0, 0, 1).Equal(d) {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
		prev = d
	}

	cursor := DayOf(asOf, time.UTC)
	if _, ok := set[cursor]; !ok {
		cursor = cursor.AddDate(0, 0, -1)
	}
	for {
		if _, ok := set[cursor]; !ok {
			break
		}
		current++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return current, longest
}

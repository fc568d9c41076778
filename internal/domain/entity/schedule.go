package entity

import (
	"fmt"
	"time"
)

const clockLayout = "15:04"

// ParseClock converts an HH:MM string into minutes after midnight.
func ParseClock(value string) (int, error) {
	t, err := time.Parse(clockLayout, value)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q, expected HH:MM", value)
	}

	return t.Hour()*60 + t.Minute(), nil
}

// Validate checks both bounds parse and describe a non-empty window.
func (q QuietHours) Validate() error {
	start, err := ParseClock(q.Start)
	if err != nil {
		return err
	}
	end, err := ParseClock(q.End)
	if err != nil {
		return err
	}
	if start == end {
		return fmt.Errorf("quiet hours start must precede end")
	}

	return nil
}

// Contains reports whether now's wall-clock minute lies in [Start, End). Windows with
// End before Start wrap past midnight. Malformed windows never match.
func (q QuietHours) Contains(now time.Time) bool {
	start, err := ParseClock(q.Start)
	if err != nil {
		return false
	}
	end, err := ParseClock(q.End)
	if err != nil {
		return false
	}

	minute := now.Hour()*60 + now.Minute()
	switch {
	case start < end:
		return minute >= start && minute < end
	case start > end:
		return minute >= start || minute < end
	default:
		return false
	}
}

// NextEnd returns the first moment after now at which the window closes.
func (q QuietHours) NextEnd(now time.Time) time.Time {
	end, err := ParseClock(q.End)
	if err != nil {
		return now
	}

	y, m, d := now.Date()
	candidate := time.Date(y, m, d, end/60, end%60, 0, 0, now.Location())
	if !candidate.After(now) {
		candidate = candidate.AddDate(0, 0, 1)
	}

	return candidate
}

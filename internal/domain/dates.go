package domain

import "time"

// DateLayout is the calendar-date format used for task start/end dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date. The bool is false for
// malformed input; callers must treat such dates as "no determinable date"
// rather than failing.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

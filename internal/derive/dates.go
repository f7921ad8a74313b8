// Package derive computes all read-side views of a bucket-list
// snapshot: achievement status, aggregate statistics, filtered list
// pages, and upcoming-deadline reminders. Every function is pure over
// the item slice it receives; "now" is always an explicit parameter so
// callers (and tests) control time.
package derive

import (
	"strings"
	"time"

	"github.com/wanderlist/wanderlist/internal/model"
)

// parseDate parses an optional calendar-date string. Malformed values
// report ok=false and the caller excludes the item from the affected
// computation; they never abort anything.
func parseDate(s *string) (time.Time, bool) {
	if s == nil {
		return time.Time{}, false
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(model.DateLayout, trimmed)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// dateOf truncates an instant to its UTC calendar date.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween is the calendar-day difference to - from, ignoring
// time of day.
func daysBetween(from, to time.Time) int {
	return int(dateOf(to).Sub(dateOf(from)).Hours() / 24)
}

package derive

import (
	"fmt"
	"sort"
	"time"

	"github.com/wanderlist/wanderlist/internal/model"
)

// ReminderWindowDays is how far ahead a target date may be and still
// produce a reminder. Overdue items always qualify.
const ReminderWindowDays = 30

// Reminder is a due-date notification derived from one open item.
type Reminder struct {
	ItemID     int64  `json:"itemId"`
	Title      string `json:"title"`
	DueDate    string `json:"dueDate"`
	DaysLeft   int    `json:"daysLeft"`
	Priority   string `json:"priority"`
	Status     string `json:"status"`
	StatusText string `json:"statusText"`
	Dismissed  bool   `json:"dismissed"`
}

// DismissedSet is the caller-held set of dismissed item ids. The
// scheduler only reads it; persistence lives with the caller.
type DismissedSet map[int64]struct{}

func NewDismissedSet(ids []int64) DismissedSet {
	set := make(DismissedSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s DismissedSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// Dismiss returns a copy of the set with id added; the receiver is
// left untouched.
func (s DismissedSet) Dismiss(id int64) DismissedSet {
	out := make(DismissedSet, len(s)+1)
	for k := range s {
		out[k] = struct{}{}
	}
	out[id] = struct{}{}
	return out
}

// Reminders derives due-date reminders for every open item whose
// target date is within the window (or already past), most urgent
// first; ties keep snapshot order. Malformed target dates exclude the
// item. Dismissed reminders are included with the flag set so callers
// can offer a reset.
func Reminders(items []model.BucketItem, dismissed DismissedSet, now time.Time) []Reminder {
	today := dateOf(now)
	reminders := []Reminder{}
	for _, item := range items {
		if item.IsCompleted() {
			continue
		}
		due, ok := parseDate(item.TargetDate)
		if !ok {
			continue
		}
		daysLeft := daysBetween(today, due)
		if daysLeft > ReminderWindowDays {
			continue
		}
		reminders = append(reminders, Reminder{
			ItemID:     item.ID,
			Title:      item.Title,
			DueDate:    due.Format(model.DateLayout),
			DaysLeft:   daysLeft,
			Priority:   item.PriorityOrDefault(),
			Status:     item.Status,
			StatusText: ReminderStatusText(daysLeft),
			Dismissed:  dismissed.Has(item.ID),
		})
	}
	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].DaysLeft < reminders[j].DaysLeft
	})
	return reminders
}

// ActiveReminders filters out dismissed reminders, preserving order.
func ActiveReminders(reminders []Reminder) []Reminder {
	active := []Reminder{}
	for _, r := range reminders {
		if !r.Dismissed {
			active = append(active, r)
		}
	}
	return active
}

func ReminderStatusText(daysLeft int) string {
	switch {
	case daysLeft < 0:
		return "Overdue"
	case daysLeft == 0:
		return "Due today"
	case daysLeft == 1:
		return "Due tomorrow"
	default:
		return fmt.Sprintf("Due in %d days", daysLeft)
	}
}

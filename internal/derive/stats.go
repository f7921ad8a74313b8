package derive

import (
	"math"
	"sort"
	"time"

	"github.com/wanderlist/wanderlist/internal/model"
)

type StatusCounts struct {
	NotStarted int `json:"notStarted"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}

// CategoryStat aggregates one category bucket. InProgress counts every
// non-completed item, not only those with the In Progress status; the
// category chart plots "completed vs. everything else" under that
// label and consumers depend on completed+inProgress == total.
type CategoryStat struct {
	Name       string `json:"name"`
	Total      int    `json:"total"`
	Completed  int    `json:"completed"`
	InProgress int    `json:"inProgress"`
}

type PriorityCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

type TimelinePoint struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Label string     `json:"label"`
	Count int        `json:"count"`
}

type Summary struct {
	Total             int                `json:"total"`
	Status            StatusCounts       `json:"status"`
	CompletionRate    int                `json:"completionRate"`
	Categories        []CategoryStat     `json:"categories"`
	Priorities        PriorityCounts     `json:"priorities"`
	RecentCompletions []model.BucketItem `json:"recentCompletions"`
	UpcomingDeadlines []model.BucketItem `json:"upcomingDeadlines"`
	Timeline          []TimelinePoint    `json:"timeline"`
}

const (
	recentCompletionsLimit = 5
	upcomingDeadlinesLimit = 5
	timelineMonths         = 6
)

// Summarize computes all dashboard aggregates from one snapshot. Each
// output is independent; items with absent or malformed dates are
// simply excluded from the date-dependent ones.
func Summarize(items []model.BucketItem, now time.Time) Summary {
	s := Summary{
		Total:             len(items),
		Status:            statusCounts(items),
		Categories:        categoryBreakdown(items),
		Priorities:        priorityCounts(items),
		RecentCompletions: recentCompletions(items),
		UpcomingDeadlines: upcomingDeadlines(items, now),
		Timeline:          completionTimeline(items, now),
	}
	s.CompletionRate = completionRate(s.Status.Completed, s.Total)
	return s
}

func statusCounts(items []model.BucketItem) StatusCounts {
	var counts StatusCounts
	for _, item := range items {
		switch item.Status {
		case model.StatusCompleted:
			counts.Completed++
		case model.StatusInProgress:
			counts.InProgress++
		default:
			counts.NotStarted++
		}
	}
	return counts
}

func completionRate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

const uncategorized = "Uncategorized"

func categoryBreakdown(items []model.BucketItem) []CategoryStat {
	index := map[string]int{}
	stats := []CategoryStat{}
	for _, item := range items {
		name := item.Category
		if name == "" {
			name = uncategorized
		}
		i, ok := index[name]
		if !ok {
			i = len(stats)
			index[name] = i
			stats = append(stats, CategoryStat{Name: name})
		}
		stats[i].Total++
		if item.IsCompleted() {
			stats[i].Completed++
		}
	}
	for i := range stats {
		stats[i].InProgress = stats[i].Total - stats[i].Completed
	}
	// Largest buckets first; equal sizes keep first-seen order.
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Total > stats[j].Total
	})
	return stats
}

func priorityCounts(items []model.BucketItem) PriorityCounts {
	var counts PriorityCounts
	for _, item := range items {
		switch item.PriorityOrDefault() {
		case model.PriorityHigh:
			counts.High++
		case model.PriorityLow:
			counts.Low++
		default:
			counts.Medium++
		}
	}
	return counts
}

// recentCompletions returns the five most recently completed items by
// completion date, most recent first. Completed items without a
// parseable completion date are excluded; ties keep snapshot order.
func recentCompletions(items []model.BucketItem) []model.BucketItem {
	type dated struct {
		item model.BucketItem
		when time.Time
	}
	var completed []dated
	for _, item := range items {
		if !item.IsCompleted() {
			continue
		}
		when, ok := parseDate(item.CompletionDate)
		if !ok {
			continue
		}
		completed = append(completed, dated{item: item, when: when})
	}
	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].when.After(completed[j].when)
	})
	out := []model.BucketItem{}
	for i := 0; i < len(completed) && i < recentCompletionsLimit; i++ {
		out = append(out, completed[i].item)
	}
	return out
}

// upcomingDeadlines returns the five soonest-due open items with a
// target date on or after today, ascending; ties keep snapshot order.
func upcomingDeadlines(items []model.BucketItem, now time.Time) []model.BucketItem {
	today := dateOf(now)
	type dated struct {
		item model.BucketItem
		when time.Time
	}
	var upcoming []dated
	for _, item := range items {
		if item.IsCompleted() {
			continue
		}
		when, ok := parseDate(item.TargetDate)
		if !ok || when.Before(today) {
			continue
		}
		upcoming = append(upcoming, dated{item: item, when: when})
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].when.Before(upcoming[j].when)
	})
	out := []model.BucketItem{}
	for i := 0; i < len(upcoming) && i < upcomingDeadlinesLimit; i++ {
		out = append(out, upcoming[i].item)
	}
	return out
}

// completionTimeline buckets completions per calendar month over the
// trailing six months ending at the current month. Every month is
// present even when its count is zero.
func completionTimeline(items []model.BucketItem, now time.Time) []TimelinePoint {
	type yearMonth struct {
		year  int
		month time.Month
	}
	counts := map[yearMonth]int{}
	for _, item := range items {
		if !item.IsCompleted() {
			continue
		}
		when, ok := parseDate(item.CompletionDate)
		if !ok {
			continue
		}
		counts[yearMonth{when.Year(), when.Month()}]++
	}

	points := make([]TimelinePoint, 0, timelineMonths)
	for i := timelineMonths - 1; i >= 0; i-- {
		// First-of-month construction normalizes month arithmetic
		// (Aug 31 minus one month is still July).
		m := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		points = append(points, TimelinePoint{
			Year:  m.Year(),
			Month: m.Month(),
			Label: m.Format("Jan 2006"),
			Count: counts[yearMonth{m.Year(), m.Month()}],
		})
	}
	return points
}

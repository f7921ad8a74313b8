package derive

import (
	"errors"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/wanderlist/wanderlist/internal/model"
)

// View restricts the list to a deadline-oriented subset before any
// field filters run.
type View string

const (
	ViewAll       View = "all"
	ViewUpcoming  View = "upcoming"
	ViewCompleted View = "completed"
)

type SortMode string

const (
	SortNameAsc       SortMode = "name_asc"
	SortNameDesc      SortMode = "name_desc"
	SortDateAsc       SortMode = "date_asc"
	SortDateDesc      SortMode = "date_desc"
	SortPriorityFirst SortMode = "priority"
)

// FilterAll is the per-field sentinel that disables an exact-match
// filter; the empty string behaves the same so zero-value queries are
// unfiltered.
const FilterAll = "All"

// DefaultPageSize matches the list grid in the web client.
const DefaultPageSize = 6

// ErrInvalidPageSize reports a structurally nonsensical page size. It
// is never corrected silently.
var ErrInvalidPageSize = errors.New("page size must be greater than zero")

// ListQuery configures the filter/sort/paginate pipeline. Every field
// is optional; the zero value selects everything, unsorted, but a
// usable PageSize must always be supplied.
type ListQuery struct {
	View     View     `json:"view"`
	Status   string   `json:"status"`
	Category string   `json:"category"`
	Priority string   `json:"priority"`
	Tags     []string `json:"tags"`
	Search   string   `json:"search"`
	Sort     SortMode `json:"sort"`
	Page     int      `json:"page"`
	PageSize int      `json:"pageSize"`
}

type ListPage struct {
	Items         []model.BucketItem `json:"items"`
	Page          int                `json:"page"`
	PageSize      int                `json:"pageSize"`
	TotalPages    int                `json:"totalPages"`
	TotalMatching int                `json:"totalMatching"`
}

// ApplyQuery runs the fixed pipeline: view restriction, exact filters,
// tag AND-filter, search, sort, paginate. Sorting always happens after
// every filter and before pagination. A page past the end comes back
// empty; clamping is the caller's job.
func ApplyQuery(items []model.BucketItem, q ListQuery, now time.Time) (ListPage, error) {
	if q.PageSize <= 0 {
		return ListPage{}, ErrInvalidPageSize
	}
	page := q.Page
	if page < 1 {
		page = 1
	}

	matched := applyView(items, q.View, now)
	matched = applyExactFilters(matched, q)
	matched = applyTagFilter(matched, q.Tags)
	matched = applySearch(matched, q.Search)
	sortItems(matched, q.Sort)

	total := len(matched)
	totalPages := (total + q.PageSize - 1) / q.PageSize

	start := (page - 1) * q.PageSize
	end := start + q.PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return ListPage{
		Items:         matched[start:end],
		Page:          page,
		PageSize:      q.PageSize,
		TotalPages:    totalPages,
		TotalMatching: total,
	}, nil
}

func applyView(items []model.BucketItem, view View, now time.Time) []model.BucketItem {
	today := dateOf(now)
	out := make([]model.BucketItem, 0, len(items))
	for _, item := range items {
		switch view {
		case ViewCompleted:
			if !item.IsCompleted() {
				continue
			}
		case ViewUpcoming:
			if item.IsCompleted() {
				continue
			}
			target, ok := parseDate(item.TargetDate)
			if !ok || !target.After(today) {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}

func filterActive(value string) bool {
	return value != "" && value != FilterAll
}

func applyExactFilters(items []model.BucketItem, q ListQuery) []model.BucketItem {
	if !filterActive(q.Status) && !filterActive(q.Category) && !filterActive(q.Priority) {
		return items
	}
	out := items[:0:len(items)]
	for _, item := range items {
		if filterActive(q.Status) && item.Status != q.Status {
			continue
		}
		if filterActive(q.Category) && item.Category != q.Category {
			continue
		}
		if filterActive(q.Priority) && item.Priority != q.Priority {
			continue
		}
		out = append(out, item)
	}
	return out
}

// applyTagFilter keeps items carrying every requested tag.
func applyTagFilter(items []model.BucketItem, tags []string) []model.BucketItem {
	if len(tags) == 0 {
		return items
	}
	out := items[:0:len(items)]
	for _, item := range items {
		all := true
		for _, tag := range tags {
			if !item.Tags.Contains(tag) {
				all = false
				break
			}
		}
		if all {
			out = append(out, item)
		}
	}
	return out
}

// applySearch keeps items where any of title, description, category or
// a tag contains the term, case-insensitively.
func applySearch(items []model.BucketItem, term string) []model.BucketItem {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}
	out := items[:0:len(items)]
	for _, item := range items {
		if itemMatches(item, term) {
			out = append(out, item)
		}
	}
	return out
}

func itemMatches(item model.BucketItem, term string) bool {
	if strings.Contains(strings.ToLower(item.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Description), term) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Category), term) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func sortItems(items []model.BucketItem, mode SortMode) {
	// Collators keep internal scratch buffers, so a shared instance is
	// not safe for concurrent sorts. One per call keeps the pipeline
	// free of shared state.
	switch mode {
	case SortNameAsc:
		collator := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(items, func(i, j int) bool {
			return collator.CompareString(items[i].Title, items[j].Title) < 0
		})
	case SortNameDesc:
		collator := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(items, func(i, j int) bool {
			return collator.CompareString(items[i].Title, items[j].Title) > 0
		})
	case SortDateAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return sortDate(items[i]).Before(sortDate(items[j]))
		})
	case SortDateDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return sortDate(items[i]).After(sortDate(items[j]))
		})
	case SortPriorityFirst:
		sort.SliceStable(items, func(i, j int) bool {
			return priorityRank(items[i].Priority) < priorityRank(items[j].Priority)
		})
	}
}

// sortDate is the date key for date-ordered modes: the target date when
// present and parseable, otherwise the creation timestamp's date.
func sortDate(item model.BucketItem) time.Time {
	target, ok := parseDate(item.TargetDate)
	if ok {
		return target
	}
	return dateOf(item.CreatedAt)
}

func priorityRank(priority string) int {
	switch priority {
	case model.PriorityHigh:
		return 0
	case model.PriorityMedium:
		return 1
	case model.PriorityLow:
		return 2
	default:
		return 3
	}
}

package derive

import (
	"time"

	"github.com/wanderlist/wanderlist/internal/model"
)

// fixedNow anchors every time-relative test: Saturday 2025-06-14.
var fixedNow = time.Date(2025, time.June, 14, 10, 30, 0, 0, time.UTC)

func strptr(s string) *string {
	return &s
}

// day returns a date string offset days from fixedNow.
func day(offset int) string {
	return fixedNow.AddDate(0, 0, offset).Format(model.DateLayout)
}

type itemOpt func(*model.BucketItem)

func withStatus(status string) itemOpt {
	return func(i *model.BucketItem) { i.Status = status }
}

func withCategory(category string) itemOpt {
	return func(i *model.BucketItem) { i.Category = category }
}

func withPriority(priority string) itemOpt {
	return func(i *model.BucketItem) { i.Priority = priority }
}

func withTags(tags ...string) itemOpt {
	return func(i *model.BucketItem) { i.Tags = tags }
}

func withTarget(date string) itemOpt {
	return func(i *model.BucketItem) { i.TargetDate = strptr(date) }
}

func withCompletion(date string) itemOpt {
	return func(i *model.BucketItem) { i.CompletionDate = strptr(date) }
}

func withCreatedAt(t time.Time) itemOpt {
	return func(i *model.BucketItem) { i.CreatedAt = t }
}

func item(id int64, title string, opts ...itemOpt) model.BucketItem {
	it := model.BucketItem{
		ID:        id,
		UserID:    "user-1",
		Title:     title,
		Status:    model.StatusNotStarted,
		CreatedAt: fixedNow.AddDate(0, 0, -int(id)),
		UpdatedAt: fixedNow,
	}
	for _, opt := range opts {
		opt(&it)
	}
	return it
}

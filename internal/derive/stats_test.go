package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlist/wanderlist/internal/model"
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, fixedNow)

	assert.Equal(t, 0, s.Total)
	assert.Equal(t, StatusCounts{}, s.Status)
	assert.Equal(t, 0, s.CompletionRate)
	assert.Empty(t, s.Categories)
	assert.Equal(t, PriorityCounts{}, s.Priorities)
	assert.Empty(t, s.RecentCompletions)
	assert.Empty(t, s.UpcomingDeadlines)
	require.Len(t, s.Timeline, timelineMonths)
	for _, p := range s.Timeline {
		assert.Equal(t, 0, p.Count)
	}
}

func TestSummarizeStatusAndRate(t *testing.T) {
	items := []model.BucketItem{
		item(1, "a", withStatus(model.StatusCompleted), withCompletion(day(-1))),
		item(2, "b", withStatus(model.StatusInProgress)),
		item(3, "c"),
		item(4, "d", withStatus("Garbage")),
	}

	s := Summarize(items, fixedNow)

	assert.Equal(t, StatusCounts{NotStarted: 2, InProgress: 1, Completed: 1}, s.Status)
	assert.Equal(t, 25, s.CompletionRate)
}

func TestCompletionRateRounds(t *testing.T) {
	assert.Equal(t, 33, completionRate(1, 3))
	assert.Equal(t, 67, completionRate(2, 3))
	assert.Equal(t, 0, completionRate(0, 0))
	assert.Equal(t, 100, completionRate(4, 4))
}

func TestCategoryBreakdown(t *testing.T) {
	items := []model.BucketItem{
		item(1, "a", withCategory("Travel")),
		item(2, "b", withCategory("Travel"), withStatus(model.StatusCompleted), withCompletion(day(-1))),
		item(3, "c", withCategory("Health"), withStatus(model.StatusInProgress)),
		item(4, "d"),
	}

	stats := categoryBreakdown(items)

	require.Len(t, stats, 3)
	assert.Equal(t, CategoryStat{Name: "Travel", Total: 2, Completed: 1, InProgress: 1}, stats[0])
	// Equal-sized buckets keep first-seen order.
	assert.Equal(t, CategoryStat{Name: "Health", Total: 1, Completed: 0, InProgress: 1}, stats[1])
	assert.Equal(t, CategoryStat{Name: "Uncategorized", Total: 1, Completed: 0, InProgress: 1}, stats[2])
}

func TestPriorityCountsDefaultsToMedium(t *testing.T) {
	items := []model.BucketItem{
		item(1, "a", withPriority(model.PriorityHigh)),
		item(2, "b", withPriority(model.PriorityLow)),
		item(3, "c"),
		item(4, "d", withPriority("Urgent")),
	}

	assert.Equal(t, PriorityCounts{High: 1, Medium: 2, Low: 1}, priorityCounts(items))
}

func TestRecentCompletions(t *testing.T) {
	items := []model.BucketItem{
		item(1, "oldest", withStatus(model.StatusCompleted), withCompletion(day(-60))),
		item(2, "newest", withStatus(model.StatusCompleted), withCompletion(day(-1))),
		item(3, "no date", withStatus(model.StatusCompleted)),
		item(4, "bad date", withStatus(model.StatusCompleted), withCompletion("soon")),
		item(5, "middle", withStatus(model.StatusCompleted), withCompletion(day(-10))),
		item(6, "open", withTarget(day(3))),
	}

	recent := recentCompletions(items)

	require.Len(t, recent, 3)
	assert.Equal(t, "newest", recent[0].Title)
	assert.Equal(t, "middle", recent[1].Title)
	assert.Equal(t, "oldest", recent[2].Title)
}

func TestRecentCompletionsCapsAtFive(t *testing.T) {
	var items []model.BucketItem
	for i := 1; i <= 8; i++ {
		items = append(items, item(int64(i), "done",
			withStatus(model.StatusCompleted), withCompletion(day(-i))))
	}
	assert.Len(t, recentCompletions(items), recentCompletionsLimit)
}

func TestUpcomingDeadlines(t *testing.T) {
	items := []model.BucketItem{
		item(1, "past due", withTarget(day(-1))),
		item(2, "due today", withTarget(day(0))),
		item(3, "due later", withTarget(day(14))),
		item(4, "due soon", withTarget(day(3))),
		item(5, "completed", withStatus(model.StatusCompleted), withTarget(day(2)), withCompletion(day(-1))),
		item(6, "no target"),
	}

	upcoming := upcomingDeadlines(items, fixedNow)

	require.Len(t, upcoming, 3)
	assert.Equal(t, "due today", upcoming[0].Title)
	assert.Equal(t, "due soon", upcoming[1].Title)
	assert.Equal(t, "due later", upcoming[2].Title)
}

func TestCompletionTimeline(t *testing.T) {
	items := []model.BucketItem{
		item(1, "a", withStatus(model.StatusCompleted), withCompletion("2025-06-01")),
		item(2, "b", withStatus(model.StatusCompleted), withCompletion("2025-06-10")),
		item(3, "c", withStatus(model.StatusCompleted), withCompletion("2025-03-15")),
		item(4, "too old", withStatus(model.StatusCompleted), withCompletion("2024-11-30")),
	}

	points := completionTimeline(items, fixedNow)

	require.Len(t, points, timelineMonths)
	assert.Equal(t, "Jan 2025", points[0].Label)
	assert.Equal(t, "Jun 2025", points[5].Label)
	assert.Equal(t, 2, points[5].Count)
	assert.Equal(t, 1, points[2].Count, "March bucket")
	assert.Equal(t, 0, points[0].Count)
}

func TestCompletionTimelineMonthArithmetic(t *testing.T) {
	// A month-end anchor must not skip short months.
	endOfAugust := time.Date(2025, time.August, 31, 23, 0, 0, 0, time.UTC)
	points := completionTimeline(nil, endOfAugust)

	labels := make([]string, 0, len(points))
	for _, p := range points {
		labels = append(labels, p.Label)
	}
	assert.Equal(t, []string{"Mar 2025", "Apr 2025", "May 2025", "Jun 2025", "Jul 2025", "Aug 2025"}, labels)
}

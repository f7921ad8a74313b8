package derive

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlist/wanderlist/internal/model"
)

func titles(items []model.BucketItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out
}

func TestApplyQueryRejectsBadPageSize(t *testing.T) {
	_, err := ApplyQuery(nil, ListQuery{PageSize: 0}, fixedNow)
	assert.ErrorIs(t, err, ErrInvalidPageSize)

	_, err = ApplyQuery(nil, ListQuery{PageSize: -3}, fixedNow)
	assert.ErrorIs(t, err, ErrInvalidPageSize)
}

func TestApplyQueryDefaults(t *testing.T) {
	items := []model.BucketItem{
		item(1, "a"), item(2, "b"), item(3, "c"),
	}

	page, err := ApplyQuery(items, ListQuery{PageSize: DefaultPageSize}, fixedNow)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page, "page zero normalizes to one")
	assert.Equal(t, 3, page.TotalMatching)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, []string{"a", "b", "c"}, titles(page.Items), "no sort mode keeps snapshot order")
}

func TestApplyQueryViews(t *testing.T) {
	items := []model.BucketItem{
		item(1, "done", withStatus(model.StatusCompleted), withTarget(day(5)), withCompletion(day(-1))),
		item(2, "due tomorrow", withTarget(day(1))),
		item(3, "due today", withTarget(day(0))),
		item(4, "overdue", withTarget(day(-2))),
		item(5, "no target"),
	}

	all, err := ApplyQuery(items, ListQuery{View: ViewAll, PageSize: 10}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 5, all.TotalMatching)

	completed, err := ApplyQuery(items, ListQuery{View: ViewCompleted, PageSize: 10}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"done"}, titles(completed.Items))

	// Upcoming keeps open items with a target strictly after today.
	upcoming, err := ApplyQuery(items, ListQuery{View: ViewUpcoming, PageSize: 10}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"due tomorrow"}, titles(upcoming.Items))
}

func TestApplyQueryExactFilters(t *testing.T) {
	items := []model.BucketItem{
		item(1, "a", withStatus(model.StatusInProgress), withCategory("Travel"), withPriority(model.PriorityHigh)),
		item(2, "b", withStatus(model.StatusInProgress), withCategory("Health"), withPriority(model.PriorityHigh)),
		item(3, "c", withStatus(model.StatusNotStarted), withCategory("Travel"), withPriority(model.PriorityLow)),
	}

	page, err := ApplyQuery(items, ListQuery{
		Status:   model.StatusInProgress,
		Category: "Travel",
		PageSize: 10,
	}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, titles(page.Items))

	// "All" and the empty string both disable a filter.
	page, err = ApplyQuery(items, ListQuery{
		Status:   FilterAll,
		Category: "",
		Priority: model.PriorityHigh,
		PageSize: 10,
	}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, titles(page.Items))
}

func TestApplyQueryTagFilterRequiresEveryTag(t *testing.T) {
	items := []model.BucketItem{
		item(1, "both", withTags("outdoors", "summer")),
		item(2, "one", withTags("outdoors")),
		item(3, "none"),
	}

	page, err := ApplyQuery(items, ListQuery{Tags: []string{"outdoors", "summer"}, PageSize: 10}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"both"}, titles(page.Items))
}

func TestApplyQuerySearch(t *testing.T) {
	items := []model.BucketItem{
		item(1, "Visit Kyoto", withCategory("Travel")),
		item(2, "Marathon", withTags("Running", "fitness")),
		item(3, "Paint"),
	}
	items[2].Description = "Watercolor landscape of Kyoto"

	page, err := ApplyQuery(items, ListQuery{Search: "  KYOTO ", PageSize: 10}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"Visit Kyoto", "Paint"}, titles(page.Items), "matches title and description")

	page, err = ApplyQuery(items, ListQuery{Search: "running", PageSize: 10}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"Marathon"}, titles(page.Items), "matches tags case-insensitively")
}

func TestApplyQuerySortModes(t *testing.T) {
	items := []model.BucketItem{
		item(1, "banana", withTarget(day(10)), withPriority(model.PriorityLow)),
		item(2, "Apple", withPriority(model.PriorityHigh), withCreatedAt(fixedNow.AddDate(0, 0, -3))),
		item(3, "cherry", withTarget(day(2)), withPriority(model.PriorityMedium)),
	}

	byName, err := ApplyQuery(items, ListQuery{Sort: SortNameAsc, PageSize: 10}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "banana", "cherry"}, titles(byName.Items), "case-insensitive name order")

	byNameDesc, err := ApplyQuery(items, ListQuery{Sort: SortNameDesc, PageSize: 10}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"cherry", "banana", "Apple"}, titles(byNameDesc.Items))

	// Date order falls back to creation date when there is no target.
	byDate, err := ApplyQuery(items, ListQuery{Sort: SortDateAsc, PageSize: 10}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "cherry", "banana"}, titles(byDate.Items))

	byPriority, err := ApplyQuery(items, ListQuery{Sort: SortPriorityFirst, PageSize: 10}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "cherry", "banana"}, titles(byPriority.Items))
}

func TestApplyQuerySortIsStable(t *testing.T) {
	items := []model.BucketItem{
		item(1, "first", withPriority(model.PriorityHigh)),
		item(2, "second", withPriority(model.PriorityHigh)),
		item(3, "third", withPriority(model.PriorityHigh)),
	}

	page, err := ApplyQuery(items, ListQuery{Sort: SortPriorityFirst, PageSize: 10}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, titles(page.Items))
}

func TestApplyQueryPagination(t *testing.T) {
	var items []model.BucketItem
	for i := 1; i <= 14; i++ {
		items = append(items, item(int64(i), fmt.Sprintf("item-%02d", i)))
	}

	first, err := ApplyQuery(items, ListQuery{PageSize: DefaultPageSize}, fixedNow)
	require.NoError(t, err)
	assert.Len(t, first.Items, 6)
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, 14, first.TotalMatching)

	last, err := ApplyQuery(items, ListQuery{Page: 3, PageSize: DefaultPageSize}, fixedNow)
	require.NoError(t, err)
	assert.Len(t, last.Items, 2)

	// Past the end is not clamped back to the last page.
	beyond, err := ApplyQuery(items, ListQuery{Page: 9, PageSize: DefaultPageSize}, fixedNow)
	require.NoError(t, err)
	assert.Empty(t, beyond.Items)
	assert.Equal(t, 9, beyond.Page)
	assert.Equal(t, 3, beyond.TotalPages)
}

func TestApplyQueryDoesNotMutateInput(t *testing.T) {
	items := []model.BucketItem{
		item(1, "b"), item(2, "a"), item(3, "c"),
	}

	_, err := ApplyQuery(items, ListQuery{Sort: SortNameAsc, Search: "a", PageSize: 10}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, titles(items))
}

// Parallel invocations over the same snapshot must be safe, name
// sorting included. Run with -race.
func TestApplyQueryConcurrentNameSorts(t *testing.T) {
	items := make([]model.BucketItem, 0, 40)
	for i := 1; i <= 40; i++ {
		items = append(items, item(int64(i), fmt.Sprintf("item-%02d", 40-i)))
	}

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		mode := SortNameAsc
		if g%2 == 1 {
			mode = SortNameDesc
		}
		wg.Add(1)
		go func(mode SortMode) {
			defer wg.Done()
			page, err := ApplyQuery(items, ListQuery{Sort: mode, PageSize: 50}, fixedNow)
			if assert.NoError(t, err) && assert.Len(t, page.Items, 40) {
				first := page.Items[0].Title
				if mode == SortNameAsc {
					assert.Equal(t, "item-00", first)
				} else {
					assert.Equal(t, "item-39", first)
				}
			}
		}(mode)
	}
	wg.Wait()
}

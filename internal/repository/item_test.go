package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanderlist/wanderlist/internal/db"
	"github.com/wanderlist/wanderlist/internal/model"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	database, err := db.Init("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))
	return database
}

func newTestUser(t *testing.T, database *sqlx.DB) *model.User {
	t.Helper()

	user := &model.User{
		ID:        uuid.New().String(),
		Email:     uuid.New().String() + "@example.com",
		CreatedAt: time.Now(),
	}
	require.NoError(t, NewUserRepository(database).Create(user))
	return user
}

func TestItemCreateAssignsID(t *testing.T) {
	database := newTestDB(t)
	user := newTestUser(t, database)
	repo := NewItemRepository(database)

	item := &model.BucketItem{
		UserID:   user.ID,
		Title:    "See the Northern Lights",
		Status:   model.StatusNotStarted,
		Priority: model.PriorityHigh,
		Tags:     model.TagList{"travel", "winter"},
	}
	require.NoError(t, repo.Create(item))
	assert.NotZero(t, item.ID)
	assert.False(t, item.CreatedAt.IsZero())

	second := &model.BucketItem{UserID: user.ID, Title: "Run a marathon", Status: model.StatusInProgress}
	require.NoError(t, repo.Create(second))
	assert.NotEqual(t, item.ID, second.ID)
}

func TestItemByIDRoundTripsTags(t *testing.T) {
	database := newTestDB(t)
	user := newTestUser(t, database)
	repo := NewItemRepository(database)

	target := "2026-09-15"
	item := &model.BucketItem{
		UserID:      user.ID,
		Title:       "Hike the Inca Trail",
		Description: "Four day trek to Machu Picchu",
		Status:      model.StatusInProgress,
		Category:    "Travel",
		Priority:    model.PriorityHigh,
		Tags:        model.TagList{"hiking", "peru"},
		TargetDate:  &target,
	}
	require.NoError(t, repo.Create(item))

	got, err := repo.ByID(user.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hike the Inca Trail", got.Title)
	assert.Equal(t, model.TagList{"hiking", "peru"}, got.Tags)
	require.NotNil(t, got.TargetDate)
	assert.Equal(t, "2026-09-15", *got.TargetDate)
	assert.Nil(t, got.CompletionDate)
}

func TestItemByIDScopedToUser(t *testing.T) {
	database := newTestDB(t)
	owner := newTestUser(t, database)
	other := newTestUser(t, database)
	repo := NewItemRepository(database)

	item := &model.BucketItem{UserID: owner.ID, Title: "Write a book", Status: model.StatusNotStarted}
	require.NoError(t, repo.Create(item))

	_, err := repo.ByID(other.ID, item.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestItemsOrderedNewestFirst(t *testing.T) {
	database := newTestDB(t)
	user := newTestUser(t, database)
	repo := NewItemRepository(database)

	base := time.Now().Add(-48 * time.Hour)
	for i, title := range []string{"oldest", "middle", "newest"} {
		item := &model.BucketItem{
			UserID:    user.ID,
			Title:     title,
			Status:    model.StatusNotStarted,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, repo.Create(item))
	}

	items, err := repo.Items(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "newest", items[0].Title)
	assert.Equal(t, "oldest", items[2].Title)
}

func TestItemUpdate(t *testing.T) {
	database := newTestDB(t)
	user := newTestUser(t, database)
	repo := NewItemRepository(database)

	item := &model.BucketItem{UserID: user.ID, Title: "Learn to dance", Status: model.StatusNotStarted}
	require.NoError(t, repo.Create(item))

	completion := "2026-01-10"
	item.Status = model.StatusCompleted
	item.CompletionDate = &completion
	item.Tags = model.TagList{"creativity"}
	require.NoError(t, repo.Update(item))

	got, err := repo.ByID(user.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, got.Status)
	require.NotNil(t, got.CompletionDate)
	assert.Equal(t, "2026-01-10", *got.CompletionDate)
	assert.Equal(t, model.TagList{"creativity"}, got.Tags)
}

func TestItemUpdateMissingRow(t *testing.T) {
	database := newTestDB(t)
	user := newTestUser(t, database)
	repo := NewItemRepository(database)

	item := &model.BucketItem{ID: 9999, UserID: user.ID, Title: "ghost", Status: model.StatusNotStarted}
	assert.ErrorIs(t, repo.Update(item), ErrItemNotFound)
}

func TestItemDelete(t *testing.T) {
	database := newTestDB(t)
	user := newTestUser(t, database)
	repo := NewItemRepository(database)

	item := &model.BucketItem{UserID: user.ID, Title: "Go skydiving", Status: model.StatusNotStarted}
	require.NoError(t, repo.Create(item))

	require.NoError(t, repo.Delete(user.ID, item.ID))
	_, err := repo.ByID(user.ID, item.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)

	assert.ErrorIs(t, repo.Delete(user.ID, item.ID), ErrItemNotFound)
}

func TestCountUserItems(t *testing.T) {
	database := newTestDB(t)
	user := newTestUser(t, database)
	repo := NewItemRepository(database)

	count, err := repo.CountUserItems(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, repo.Create(&model.BucketItem{UserID: user.ID, Title: "one", Status: model.StatusNotStarted}))
	require.NoError(t, repo.Create(&model.BucketItem{UserID: user.ID, Title: "two", Status: model.StatusNotStarted}))

	count, err = repo.CountUserItems(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestDismissalLifecycle(t *testing.T) {
	database := newTestDB(t)
	user := newTestUser(t, database)
	itemRepo := NewItemRepository(database)
	repo := NewDismissalRepository(database)

	item := &model.BucketItem{UserID: user.ID, Title: "Visit all seven continents", Status: model.StatusNotStarted}
	require.NoError(t, itemRepo.Create(item))

	ids, err := repo.DismissedItemIDs(user.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, repo.Dismiss(user.ID, item.ID))
	// Dismissing twice should not fail or duplicate.
	require.NoError(t, repo.Dismiss(user.ID, item.ID))

	ids, err = repo.DismissedItemIDs(user.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{item.ID}, ids)

	require.NoError(t, repo.Reset(user.ID))
	ids, err = repo.DismissedItemIDs(user.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestDismissalsDeletedWithItem(t *testing.T) {
	database := newTestDB(t)
	user := newTestUser(t, database)
	itemRepo := NewItemRepository(database)
	repo := NewDismissalRepository(database)

	item := &model.BucketItem{UserID: user.ID, Title: "Take a cooking class", Status: model.StatusNotStarted}
	require.NoError(t, itemRepo.Create(item))
	require.NoError(t, repo.Dismiss(user.ID, item.ID))

	require.NoError(t, itemRepo.Delete(user.ID, item.ID))

	ids, err := repo.DismissedItemIDs(user.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

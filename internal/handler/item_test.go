package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanderlist/wanderlist/internal/ctxkeys"
	"github.com/wanderlist/wanderlist/internal/derive"
	"github.com/wanderlist/wanderlist/internal/model"
	"github.com/wanderlist/wanderlist/internal/repository"
	"github.com/wanderlist/wanderlist/internal/service"
)

type stubItemRepo struct {
	items  map[int64]*model.BucketItem
	nextID int64
}

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{items: map[int64]*model.BucketItem{}}
}

func (r *stubItemRepo) Create(item *model.BucketItem) error {
	r.nextID++
	item.ID = r.nextID
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *stubItemRepo) ByID(userID string, itemID int64) (*model.BucketItem, error) {
	item, ok := r.items[itemID]
	if !ok || item.UserID != userID {
		return nil, repository.ErrItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *stubItemRepo) Items(userID string) ([]model.BucketItem, error) {
	var items []model.BucketItem
	for id := r.nextID; id >= 1; id-- {
		item, ok := r.items[id]
		if ok && item.UserID == userID {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (r *stubItemRepo) Update(item *model.BucketItem) error {
	existing, ok := r.items[item.ID]
	if !ok || existing.UserID != item.UserID {
		return repository.ErrItemNotFound
	}
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *stubItemRepo) Delete(userID string, itemID int64) error {
	item, ok := r.items[itemID]
	if !ok || item.UserID != userID {
		return repository.ErrItemNotFound
	}
	delete(r.items, itemID)
	return nil
}

func (r *stubItemRepo) CountUserItems(userID string) (int, error) {
	count := 0
	for _, item := range r.items {
		if item.UserID == userID {
			count++
		}
	}
	return count, nil
}

type stubDismissalRepo struct {
	dismissed map[int64]bool
}

func newStubDismissalRepo() *stubDismissalRepo {
	return &stubDismissalRepo{dismissed: map[int64]bool{}}
}

func (r *stubDismissalRepo) DismissedItemIDs(userID string) ([]int64, error) {
	var ids []int64
	for id := range r.dismissed {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *stubDismissalRepo) Dismiss(userID string, itemID int64) error {
	r.dismissed[itemID] = true
	return nil
}

func (r *stubDismissalRepo) Reset(userID string) error {
	r.dismissed = map[int64]bool{}
	return nil
}

// newTestServer wires the item and dashboard handlers behind a mux
// with a fixed authenticated user, mirroring the real route setup.
func newTestServer(t *testing.T) (*httptest.Server, *stubItemRepo) {
	t.Helper()

	repo := newStubItemRepo()
	svc := service.NewBucketListService(repo, newStubDismissalRepo())
	item := NewItemHandler(svc, nil, nil)
	dashboard := NewDashboardHandler(svc)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/bucket-list", item.List)
	mux.HandleFunc("POST /api/bucket-list", item.Create)
	mux.HandleFunc("GET /api/bucket-list/{id}", item.Get)
	mux.HandleFunc("PATCH /api/bucket-list/{id}", item.Update)
	mux.HandleFunc("DELETE /api/bucket-list/{id}", item.Delete)
	mux.HandleFunc("POST /api/bucket-list/{id}/image", item.UploadImage)
	mux.HandleFunc("GET /api/reminders", dashboard.Reminders)
	mux.HandleFunc("POST /api/reminders/{id}/dismiss", dashboard.DismissReminder)

	user := &model.User{ID: "user-1", Email: "user@example.com"}
	withUser := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(ctxkeys.WithUser(r.Context(), user)))
		})
	}

	srv := httptest.NewServer(withUser(mux))
	t.Cleanup(srv.Close)
	return srv, repo
}

func seedItem(t *testing.T, repo *stubItemRepo, title string, opts func(*model.BucketItem)) *model.BucketItem {
	t.Helper()

	item := &model.BucketItem{
		UserID: "user-1",
		Title:  title,
		Status: model.StatusNotStarted,
	}
	if opts != nil {
		opts(item)
	}
	require.NoError(t, repo.Create(item))
	return item
}

func TestListReturnsPage(t *testing.T) {
	srv, repo := newTestServer(t)
	seedItem(t, repo, "Visit Kyoto", func(i *model.BucketItem) { i.Category = "Travel" })
	seedItem(t, repo, "Run a marathon", nil)

	resp, err := http.Get(srv.URL + "/api/bucket-list?category=Travel")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page derive.ListPage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Visit Kyoto", page.Items[0].Title)
	assert.Equal(t, 1, page.TotalMatching)
}

func TestListRejectsZeroPageSize(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/bucket-list?pageSize=0")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateItem(t *testing.T) {
	srv, _ := newTestServer(t)

	body := `{"title":"See the Northern Lights","category":"Travel","tags":["winter"]}`
	resp, err := http.Post(srv.URL+"/api/bucket-list", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var item model.BucketItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&item))
	assert.NotZero(t, item.ID)
	assert.Equal(t, model.StatusNotStarted, item.Status)
	assert.Equal(t, model.TagList{"winter"}, item.Tags)
}

func TestCreateItemRejectsShortTitle(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/bucket-list", "application/json", strings.NewReader(`{"title":"ab"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateItemRejectsUnknownFields(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/bucket-list", "application/json", strings.NewReader(`{"title":"Visit Kyoto","bogus":true}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetMissingItem(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/bucket-list/42")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetInvalidID(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/bucket-list/abc")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadImageWithoutStorage(t *testing.T) {
	srv, repo := newTestServer(t)
	item := seedItem(t, repo, "Visit Kyoto", nil)

	resp, err := http.Post(srv.URL+"/api/bucket-list/"+itoa(item.ID)+"/image", "multipart/form-data", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestRemindersActiveFilter(t *testing.T) {
	srv, repo := newTestServer(t)
	due := time.Now().AddDate(0, 0, 3).Format(model.DateLayout)
	first := seedItem(t, repo, "Book the flights", func(i *model.BucketItem) { i.TargetDate = &due })
	seedItem(t, repo, "Renew the passport", func(i *model.BucketItem) { i.TargetDate = &due })

	resp, err := http.Post(srv.URL+"/api/reminders/"+itoa(first.ID)+"/dismiss", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/reminders")
	require.NoError(t, err)
	var all []derive.Reminder
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&all))
	resp.Body.Close()
	assert.Len(t, all, 2)

	resp, err = http.Get(srv.URL + "/api/reminders?active=true")
	require.NoError(t, err)
	var active []derive.Reminder
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&active))
	resp.Body.Close()
	require.Len(t, active, 1)
	assert.Equal(t, "Renew the passport", active[0].Title)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

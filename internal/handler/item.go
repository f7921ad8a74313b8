package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/wanderlist/wanderlist/internal/ctxkeys"
	"github.com/wanderlist/wanderlist/internal/derive"
	"github.com/wanderlist/wanderlist/internal/model"
	"github.com/wanderlist/wanderlist/internal/repository"
	"github.com/wanderlist/wanderlist/internal/service"
	"github.com/wanderlist/wanderlist/internal/validation"
)

type itemHandler struct {
	bucketListService *service.BucketListService
	imageService      *service.ImageService
	activityService   *service.ActivityService
}

func NewItemHandler(bucketListService *service.BucketListService, imageService *service.ImageService, activityService *service.ActivityService) *itemHandler {
	return &itemHandler{
		bucketListService: bucketListService,
		imageService:      imageService,
		activityService:   activityService,
	}
}

// track records an item mutation. The tracking middleware leaves these
// to the handler so completing an item gets its own action.
func (h *itemHandler) track(r *http.Request, userID, action string, itemID int64) {
	if h.activityService == nil {
		return
	}
	resourceID := ""
	if itemID != 0 {
		resourceID = strconv.FormatInt(itemID, 10)
	}
	h.activityService.Track(userID, action, "bucket_item", resourceID, clientIP(r), r.UserAgent())
}

// List runs the filtered, sorted, paginated list view.
//
// Query parameters: view, status, category, priority, tags (comma
// separated, all must match), search, sort, page, pageSize.
func (h *itemHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	q := r.URL.Query()

	query := derive.ListQuery{
		View:     derive.View(q.Get("view")),
		Status:   q.Get("status"),
		Category: q.Get("category"),
		Priority: q.Get("priority"),
		Search:   q.Get("search"),
		Sort:     derive.SortMode(q.Get("sort")),
	}

	if tags := q.Get("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			tag = strings.TrimSpace(tag)
			if tag != "" {
				query.Tags = append(query.Tags, tag)
			}
		}
	}

	query.Page = intParam(q.Get("page"), 1)
	query.PageSize = intParam(q.Get("pageSize"), derive.DefaultPageSize)

	page, err := h.bucketListService.ListPage(user.ID, query)
	if err != nil {
		if errors.Is(err, derive.ErrInvalidPageSize) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to list items", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Failed to load bucket list")
		return
	}

	respondJSON(w, http.StatusOK, page)
}

func (h *itemHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	itemID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	item, err := h.bucketListService.ByID(user.ID, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			respondError(w, http.StatusNotFound, "Item not found")
			return
		}
		slog.Error("failed to get item", "error", err, "user_id", user.ID, "item_id", itemID)
		respondError(w, http.StatusInternalServerError, "Failed to load item")
		return
	}

	respondJSON(w, http.StatusOK, item)
}

func (h *itemHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var input service.ItemInput
	err := decodeJSON(r, &input)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.bucketListService.Create(user.ID, input)
	if err != nil {
		if validationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to create item", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Failed to create item")
		return
	}

	h.track(r, user.ID, model.ActionCreateItem, item.ID)
	respondJSON(w, http.StatusCreated, item)
}

func (h *itemHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	itemID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	var patch service.ItemPatch
	err = decodeJSON(r, &patch)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.bucketListService.Update(user.ID, itemID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			respondError(w, http.StatusNotFound, "Item not found")
			return
		}
		if validationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to update item", "error", err, "user_id", user.ID, "item_id", itemID)
		respondError(w, http.StatusInternalServerError, "Failed to update item")
		return
	}

	action := model.ActionUpdateItem
	if patch.Status != nil && *patch.Status == model.StatusCompleted {
		action = model.ActionCompleteItem
	}
	h.track(r, user.ID, action, itemID)

	respondJSON(w, http.StatusOK, item)
}

func (h *itemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	itemID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	err = h.bucketListService.Delete(user.ID, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			respondError(w, http.StatusNotFound, "Item not found")
			return
		}
		slog.Error("failed to delete item", "error", err, "user_id", user.ID, "item_id", itemID)
		respondError(w, http.StatusInternalServerError, "Failed to delete item")
		return
	}

	h.track(r, user.ID, model.ActionDeleteItem, itemID)
	w.WriteHeader(http.StatusNoContent)
}

// UploadImage stores a photo for an item and saves its URL.
func (h *itemHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	if h.imageService == nil {
		respondError(w, http.StatusServiceUnavailable, "Image storage is not configured")
		return
	}

	itemID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	err = r.ParseMultipartForm(validation.ImageConstraints.MaxSize)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid upload")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Missing image file")
		return
	}
	defer file.Close()

	err = validation.ValidateFile(header, validation.ImageConstraints)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.bucketListService.ByID(user.ID, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			respondError(w, http.StatusNotFound, "Item not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to load item")
		return
	}

	imageURL, err := h.imageService.Upload(user.ID, file, header)
	if err != nil {
		slog.Error("failed to upload image", "error", err, "user_id", user.ID, "item_id", itemID)
		respondError(w, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	previousURL := item.ImageURL
	item, err = h.bucketListService.SetImage(user.ID, itemID, imageURL)
	if err != nil {
		h.imageService.Remove(imageURL)
		respondError(w, http.StatusInternalServerError, "Failed to save image")
		return
	}

	if previousURL != "" {
		h.imageService.Remove(previousURL)
	}

	respondJSON(w, http.StatusOK, item)
}

// DeleteImage removes an item's photo; the category placeholder takes
// over in the gallery and the cards.
func (h *itemHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	itemID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	item, err := h.bucketListService.ByID(user.ID, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			respondError(w, http.StatusNotFound, "Item not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to load item")
		return
	}

	previousURL := item.ImageURL
	item, err = h.bucketListService.SetImage(user.ID, itemID, "")
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update item")
		return
	}

	if previousURL != "" && h.imageService != nil {
		h.imageService.Remove(previousURL)
	}

	respondJSON(w, http.StatusOK, item)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	return r.RemoteAddr
}

func intParam(value string, def int) int {
	if value == "" {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return n
}

func validationError(err error) bool {
	return errors.Is(err, validation.ErrTitleTooShort) ||
		errors.Is(err, validation.ErrTitleTooLong) ||
		errors.Is(err, validation.ErrDescriptionTooLong) ||
		errors.Is(err, validation.ErrInvalidStatus) ||
		errors.Is(err, validation.ErrInvalidPriority) ||
		errors.Is(err, validation.ErrInvalidDate)
}

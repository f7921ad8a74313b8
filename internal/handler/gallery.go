package handler

import (
	"log/slog"
	"net/http"

	"github.com/wanderlist/wanderlist/internal/ctxkeys"
	"github.com/wanderlist/wanderlist/internal/derive"
	"github.com/wanderlist/wanderlist/internal/service"
)

type galleryHandler struct {
	bucketListService *service.BucketListService
}

func NewGalleryHandler(bucketListService *service.BucketListService) *galleryHandler {
	return &galleryHandler{bucketListService: bucketListService}
}

type galleryEntry struct {
	ItemID         int64   `json:"itemId"`
	Title          string  `json:"title"`
	Category       string  `json:"category,omitempty"`
	CompletionDate *string `json:"completionDate,omitempty"`
	ImageURL       string  `json:"imageUrl"`
	Placeholder    bool    `json:"placeholder"`
}

// Gallery returns completed items with their display image, falling
// back to the category stock photo when no upload exists.
func (h *galleryHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	items, err := h.bucketListService.Snapshot(user.ID)
	if err != nil {
		slog.Error("failed to load gallery", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Failed to load gallery")
		return
	}

	entries := []galleryEntry{}
	for _, item := range items {
		if !item.IsCompleted() {
			continue
		}
		entries = append(entries, galleryEntry{
			ItemID:         item.ID,
			Title:          item.Title,
			Category:       item.Category,
			CompletionDate: item.CompletionDate,
			ImageURL:       derive.DisplayImage(item.ImageURL, item.Category),
			Placeholder:    item.ImageURL == "",
		})
	}

	respondJSON(w, http.StatusOK, entries)
}

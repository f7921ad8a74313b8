package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/wanderlist/wanderlist/internal/ctxkeys"
	"github.com/wanderlist/wanderlist/internal/derive"
	"github.com/wanderlist/wanderlist/internal/repository"
	"github.com/wanderlist/wanderlist/internal/service"
)

type dashboardHandler struct {
	bucketListService *service.BucketListService
}

func NewDashboardHandler(bucketListService *service.BucketListService) *dashboardHandler {
	return &dashboardHandler{bucketListService: bucketListService}
}

// Achievements returns the earned and locked achievement split.
func (h *dashboardHandler) Achievements(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	earned, locked, err := h.bucketListService.Achievements(user.ID)
	if err != nil {
		slog.Error("failed to evaluate achievements", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Failed to load achievements")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"earned": earned,
		"locked": locked,
	})
}

// Stats returns the dashboard aggregates.
func (h *dashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	summary, err := h.bucketListService.Stats(user.ID)
	if err != nil {
		slog.Error("failed to compute stats", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Failed to load statistics")
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// Reminders returns upcoming-deadline reminders. Dismissed reminders
// are included with their flag set; pass active=true to filter them
// out.
func (h *dashboardHandler) Reminders(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	reminders, err := h.bucketListService.Reminders(user.ID)
	if err != nil {
		slog.Error("failed to compute reminders", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Failed to load reminders")
		return
	}

	if r.URL.Query().Get("active") == "true" {
		reminders = derive.ActiveReminders(reminders)
	}

	respondJSON(w, http.StatusOK, reminders)
}

func (h *dashboardHandler) DismissReminder(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	itemID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	err = h.bucketListService.DismissReminder(user.ID, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			respondError(w, http.StatusNotFound, "Item not found")
			return
		}
		slog.Error("failed to dismiss reminder", "error", err, "user_id", user.ID, "item_id", itemID)
		respondError(w, http.StatusInternalServerError, "Failed to dismiss reminder")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Reminder dismissed"})
}

func (h *dashboardHandler) ResetDismissedReminders(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.bucketListService.ResetDismissedReminders(user.ID)
	if err != nil {
		slog.Error("failed to reset dismissed reminders", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Failed to reset reminders")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Dismissed reminders reset"})
}

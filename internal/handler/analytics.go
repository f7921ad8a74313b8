package handler

import (
	"log/slog"
	"net/http"

	"github.com/wanderlist/wanderlist/internal/ctxkeys"
	"github.com/wanderlist/wanderlist/internal/service"
)

type analyticsHandler struct {
	activityService *service.ActivityService
}

func NewAnalyticsHandler(activityService *service.ActivityService) *analyticsHandler {
	return &analyticsHandler{activityService: activityService}
}

func (h *analyticsHandler) RecentActivity(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	activities, err := h.activityService.RecentActivity(user.ID)
	if err != nil {
		slog.Error("failed to load activity", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Failed to load activity")
		return
	}

	respondJSON(w, http.StatusOK, activities)
}

func (h *analyticsHandler) UsageStats(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	stats, err := h.activityService.UsageStats(user.ID)
	if err != nil {
		slog.Error("failed to load usage stats", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Failed to load usage statistics")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

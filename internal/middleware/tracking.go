package middleware

import (
	"net/http"
	"strings"

	"github.com/wanderlist/wanderlist/internal/ctxkeys"
	"github.com/wanderlist/wanderlist/internal/model"
	"github.com/wanderlist/wanderlist/internal/service"
)

// ActivityTracking records an activity row for every authenticated API
// request, classified by method and path. Recording happens after the
// response is written and never affects the request outcome.
func ActivityTracking(activityService *service.ActivityService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)

			user := ctxkeys.User(r.Context())
			if user == nil {
				return
			}

			action, resourceType, resourceID := classifyRequest(r)
			if action == "" {
				return
			}
			activityService.Track(user.ID, action, resourceType, resourceID, getClientIP(r), r.UserAgent())
		})
	}
}

func classifyRequest(r *http.Request) (action, resourceType, resourceID string) {
	path := r.URL.Path

	switch {
	case strings.HasPrefix(path, "/api/bucket-list"):
		resourceType = "bucket_item"
		resourceID = strings.Trim(strings.TrimPrefix(path, "/api/bucket-list"), "/")
		// Mutations are recorded by the item handler, which sees the
		// status transition and can distinguish completing an item
		// from an ordinary update.
		if r.Method != http.MethodGet {
			return "", "", ""
		}
		if resourceID != "" {
			return model.ActionViewItem, resourceType, resourceID
		}
		return model.ActionAPIRequest, resourceType, ""
	case strings.HasPrefix(path, "/api/stats"),
		strings.HasPrefix(path, "/api/achievements"):
		return model.ActionViewDashboard, "", ""
	case strings.HasPrefix(path, "/api/auth/me"):
		return model.ActionViewProfile, "", ""
	default:
		return model.ActionAPIRequest, "", ""
	}
}

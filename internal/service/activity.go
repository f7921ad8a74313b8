package service

import (
	"log/slog"

	"github.com/wanderlist/wanderlist/internal/model"
	"github.com/wanderlist/wanderlist/internal/repository"
)

const (
	recentActivityLimit = 50
	usageStatDays       = 30
)

// ActivityService records what users do and serves the usage summary.
// Recording is best-effort; a failed insert never fails the request
// that triggered it.
type ActivityService struct {
	repo repository.ActivityRepository
}

func NewActivityService(repo repository.ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

func (s *ActivityService) Track(userID, action, resourceType, resourceID, ipAddress, userAgent string) {
	activity := &model.UserActivity{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		UserAgent:    userAgent,
	}

	err := s.repo.Log(activity)
	if err != nil {
		slog.Warn("failed to record activity", "error", err, "user_id", userID, "action", action)
	}
}

func (s *ActivityService) RecentActivity(userID string) ([]model.UserActivity, error) {
	return s.repo.RecentByUser(userID, recentActivityLimit)
}

func (s *ActivityService) UsageStats(userID string) ([]model.DailyUsageStat, error) {
	return s.repo.DailyStats(userID, usageStatDays)
}

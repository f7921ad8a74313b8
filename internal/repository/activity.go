package repository

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/wanderlist/wanderlist/internal/model"
)

type ActivityRepository interface {
	Log(activity *model.UserActivity) error
	RecentByUser(userID string, limit int) ([]model.UserActivity, error)
	DailyStats(userID string, days int) ([]model.DailyUsageStat, error)
}

type activityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// Log records one activity row and folds it into the per-day rollup in
// the same transaction.
func (r *activityRepository) Log(activity *model.UserActivity) error {
	if activity.Timestamp.IsZero() {
		activity.Timestamp = time.Now()
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO user_activities (user_id, action, resource_type, resource_id, ip_address, user_agent, timestamp)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id`

	err = tx.QueryRow(query,
		activity.UserID,
		activity.Action,
		activity.ResourceType,
		activity.ResourceID,
		activity.IPAddress,
		activity.UserAgent,
		activity.Timestamp,
	).Scan(&activity.ID)
	if err != nil {
		return err
	}

	day := activity.Timestamp.UTC().Format("2006-01-02")
	rollup := `INSERT INTO daily_usage_stats (user_id, date, total_actions, login_count, items_created, items_completed)
	           VALUES ($1, $2, 1, $3, $4, $5)
	           ON CONFLICT (user_id, date) DO UPDATE SET
	               total_actions = total_actions + 1,
	               login_count = login_count + $3,
	               items_created = items_created + $4,
	               items_completed = items_completed + $5`

	_, err = tx.Exec(rollup,
		activity.UserID,
		day,
		boolToInt(activity.Action == model.ActionLogin),
		boolToInt(activity.Action == model.ActionCreateItem),
		boolToInt(activity.Action == model.ActionCompleteItem),
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *activityRepository) RecentByUser(userID string, limit int) ([]model.UserActivity, error) {
	var activities []model.UserActivity
	query := `SELECT * FROM user_activities WHERE user_id = $1 ORDER BY timestamp DESC LIMIT $2`

	err := r.db.Select(&activities, query, userID, limit)
	if err != nil {
		return nil, err
	}

	return activities, nil
}

func (r *activityRepository) DailyStats(userID string, days int) ([]model.DailyUsageStat, error) {
	var stats []model.DailyUsageStat
	since := time.Now().UTC().AddDate(0, 0, -days).Format("2006-01-02")
	query := `SELECT * FROM daily_usage_stats WHERE user_id = $1 AND date >= $2 ORDER BY date DESC`

	err := r.db.Select(&stats, query, userID, since)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

package repository

import (
	"time"

	"github.com/jmoiron/sqlx"
)

// DismissalRepository persists per-user reminder dismissals. The
// reminder computation itself only sees the id set.
type DismissalRepository interface {
	DismissedItemIDs(userID string) ([]int64, error)
	Dismiss(userID string, itemID int64) error
	Reset(userID string) error
}

type dismissalRepository struct {
	db *sqlx.DB
}

func NewDismissalRepository(db *sqlx.DB) DismissalRepository {
	return &dismissalRepository{db: db}
}

func (r *dismissalRepository) DismissedItemIDs(userID string) ([]int64, error) {
	var ids []int64
	query := `SELECT item_id FROM dismissed_reminders WHERE user_id = $1`

	err := r.db.Select(&ids, query, userID)
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *dismissalRepository) Dismiss(userID string, itemID int64) error {
	// Re-dismissing is a no-op, not an error.
	query := `INSERT INTO dismissed_reminders (user_id, item_id, dismissed_at)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (user_id, item_id) DO NOTHING`

	_, err := r.db.Exec(query, userID, itemID, time.Now())
	return err
}

func (r *dismissalRepository) Reset(userID string) error {
	query := `DELETE FROM dismissed_reminders WHERE user_id = $1`
	_, err := r.db.Exec(query, userID)
	return err
}

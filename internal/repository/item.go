package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/wanderlist/wanderlist/internal/model"
)

var (
	ErrItemNotFound = errors.New("bucket list item not found")
)

type ItemRepository interface {
	Create(item *model.BucketItem) error
	ByID(userID string, itemID int64) (*model.BucketItem, error)
	Items(userID string) ([]model.BucketItem, error)
	Update(item *model.BucketItem) error
	Delete(userID string, itemID int64) error
	CountUserItems(userID string) (int, error)
}

type itemRepository struct {
	db *sqlx.DB
}

func NewItemRepository(db *sqlx.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(item *model.BucketItem) error {
	now := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now

	query := `INSERT INTO bucket_items
	          (user_id, title, description, status, category, priority, tags, target_date, completion_date, image_url, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	          RETURNING id`

	return r.db.QueryRow(query,
		item.UserID,
		item.Title,
		item.Description,
		item.Status,
		item.Category,
		item.Priority,
		item.Tags,
		item.TargetDate,
		item.CompletionDate,
		item.ImageURL,
		item.CreatedAt,
		item.UpdatedAt,
	).Scan(&item.ID)
}

func (r *itemRepository) ByID(userID string, itemID int64) (*model.BucketItem, error) {
	item := &model.BucketItem{}
	query := `SELECT * FROM bucket_items WHERE id = $1 AND user_id = $2`

	err := r.db.Get(item, query, itemID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}

	return item, err
}

// Items returns the user's full snapshot in creation order. Filtering,
// sorting and pagination happen in memory downstream, so this is the
// only list query.
func (r *itemRepository) Items(userID string) ([]model.BucketItem, error) {
	var items []model.BucketItem
	query := `SELECT * FROM bucket_items WHERE user_id = $1 ORDER BY created_at DESC, id DESC`

	err := r.db.Select(&items, query, userID)
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *itemRepository) Update(item *model.BucketItem) error {
	item.UpdatedAt = time.Now()

	query := `UPDATE bucket_items
	          SET title = $1, description = $2, status = $3, category = $4, priority = $5,
	              tags = $6, target_date = $7, completion_date = $8, image_url = $9, updated_at = $10
	          WHERE id = $11 AND user_id = $12`

	result, err := r.db.Exec(query,
		item.Title,
		item.Description,
		item.Status,
		item.Category,
		item.Priority,
		item.Tags,
		item.TargetDate,
		item.CompletionDate,
		item.ImageURL,
		item.UpdatedAt,
		item.ID,
		item.UserID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrItemNotFound
	}

	return nil
}

func (r *itemRepository) Delete(userID string, itemID int64) error {
	query := `DELETE FROM bucket_items WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, itemID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrItemNotFound
	}

	return nil
}

func (r *itemRepository) CountUserItems(userID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM bucket_items WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&count)
	return count, err
}

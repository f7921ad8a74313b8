package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	StatusNotStarted = "Not Started"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// DateLayout is the calendar-date format used for target and completion
// dates, both on the wire and in the date columns.
const DateLayout = "2006-01-02"

// Categories is the UI-suggested set. The column itself is free-form.
var Categories = []string{
	"Travel",
	"Adventure",
	"Personal Growth",
	"Career",
	"Education",
	"Relationships",
	"Health",
	"Finance",
	"Creativity",
	"Skill",
	"Other",
}

// BucketItem is a single bucket-list entry. Target and completion dates
// are kept as raw date strings; consumers parse them and treat
// unparseable values as absent.
type BucketItem struct {
	ID             int64     `db:"id" json:"id"`
	UserID         string    `db:"user_id" json:"userId"`
	Title          string    `db:"title" json:"title"`
	Description    string    `db:"description" json:"description,omitempty"`
	Status         string    `db:"status" json:"status"`
	Category       string    `db:"category" json:"category,omitempty"`
	Priority       string    `db:"priority" json:"priority,omitempty"`
	Tags           TagList   `db:"tags" json:"tags"`
	TargetDate     *string   `db:"target_date" json:"targetDate,omitempty"`
	CompletionDate *string   `db:"completion_date" json:"completionDate,omitempty"`
	ImageURL       string    `db:"image_url" json:"imageUrl,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}

func (i *BucketItem) IsCompleted() bool {
	return i.Status == StatusCompleted
}

// PriorityOrDefault returns the item's priority, defaulting to Medium
// when the column is empty.
func (i *BucketItem) PriorityOrDefault() string {
	if i.Priority == "" {
		return PriorityMedium
	}
	return i.Priority
}

func ValidStatus(status string) bool {
	switch status {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func ValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// TagList stores a tag sequence as a JSON text column.
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (t *TagList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = nil
		return nil
	case []byte:
		if len(v) == 0 {
			*t = nil
			return nil
		}
		return json.Unmarshal(v, (*[]string)(t))
	case string:
		if v == "" {
			*t = nil
			return nil
		}
		return json.Unmarshal([]byte(v), (*[]string)(t))
	default:
		return fmt.Errorf("cannot scan %T into TagList", src)
	}
}

func (t TagList) Contains(tag string) bool {
	for _, existing := range t {
		if existing == tag {
			return true
		}
	}
	return false
}

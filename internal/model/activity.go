package model

import (
	"time"
)

// Activity actions recorded by the tracking middleware and the manual
// tracking endpoint.
const (
	ActionLogin         = "login"
	ActionViewProfile   = "view_profile"
	ActionViewDashboard = "view_dashboard"
	ActionViewItem      = "view_item"
	ActionCreateItem    = "create_item"
	ActionUpdateItem    = "update_item"
	ActionCompleteItem  = "complete_item"
	ActionDeleteItem    = "delete_item"
	ActionAPIRequest    = "api_request"
)

type UserActivity struct {
	ID           int64     `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"userId"`
	Action       string    `db:"action" json:"action"`
	ResourceType string    `db:"resource_type" json:"resourceType,omitempty"`
	ResourceID   string    `db:"resource_id" json:"resourceId,omitempty"`
	IPAddress    string    `db:"ip_address" json:"-"`
	UserAgent    string    `db:"user_agent" json:"-"`
	Timestamp    time.Time `db:"timestamp" json:"timestamp"`
}

type DailyUsageStat struct {
	ID             int64  `db:"id" json:"-"`
	UserID         string `db:"user_id" json:"userId"`
	Date           string `db:"date" json:"date"`
	TotalActions   int    `db:"total_actions" json:"totalActions"`
	LoginCount     int    `db:"login_count" json:"loginCount"`
	ItemsCreated   int    `db:"items_created" json:"itemsCreated"`
	ItemsCompleted int    `db:"items_completed" json:"itemsCompleted"`
}

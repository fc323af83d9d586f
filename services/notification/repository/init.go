package repository

import (
	"github.com/jmoiron/sqlx"
)

// NotificationRepo implements the notification persistence lookups over
// PostgreSQL.
type NotificationRepo struct {
	db *sqlx.DB
}

// NewNotificationRepo creates a new notification repository instance
func NewNotificationRepo(db *sqlx.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

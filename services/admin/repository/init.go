package repository

import (
	"github.com/jmoiron/sqlx"
)

// AdminRepo implements gateway, template and company persistence over
// PostgreSQL.
type AdminRepo struct {
	db *sqlx.DB
}

// NewAdminRepo creates a new admin repository instance
func NewAdminRepo(db *sqlx.DB) *AdminRepo {
	return &AdminRepo{db: db}
}

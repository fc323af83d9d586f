package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/altostack/tenantdesk/internal/pkg/database"
)

// AuthRepo implements user persistence over PostgreSQL and the OTP
// store over Redis.
type AuthRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewAuthRepo creates a new auth repository instance
func NewAuthRepo(db *sqlx.DB, redisClient *database.RedisClient) *AuthRepo {
	return &AuthRepo{
		db:          db,
		redisClient: redisClient,
	}
}

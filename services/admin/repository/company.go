package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/altostack/tenantdesk/internal/pkg/models"
)

const userColumns = `
	id, full_name, company_name, email_address, password, phone_no, city,
	role, company_id, package_id, is_active, is_security_code_enabled,
	created_at, updated_at
`

// CreateUser inserts a new account
func (r *AdminRepo) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES (:id, :full_name, :company_name, :email_address, :password,
			:phone_no, :city, :role, :company_id, :package_id, :is_active,
			:is_security_code_enabled, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByID retrieves an account by id
func (r *AdminRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetUserByEmail retrieves an account by email address
func (r *AdminRepo) GetUserByEmail(ctx context.Context, emailAddress string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email_address = $1`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, emailAddress)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// ListUsersByRole retrieves every account with the given role
func (r *AdminRepo) ListUsersByRole(ctx context.Context, role models.Role) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY created_at DESC`

	var users []*models.User
	if err := r.db.SelectContext(ctx, &users, query, role); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// SetUserStatus flips the active flag on the account
func (r *AdminRepo) SetUserStatus(ctx context.Context, id uuid.UUID, active bool) error {
	query := `UPDATE users SET is_active = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, active, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update user status: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return models.ErrUserNotFound
	}

	return nil
}

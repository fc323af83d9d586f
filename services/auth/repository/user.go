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

// GetUserByEmail retrieves a user by email address
func (r *AuthRepo) GetUserByEmail(ctx context.Context, emailAddress string) (*models.User, error) {
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

// GetUserByID retrieves a user by id
func (r *AuthRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
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

// UpdatePassword replaces the stored password hash
func (r *AuthRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, passwordHash, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return models.ErrUserNotFound
	}

	return nil
}

// UpdateSecurityCode flips the OTP requirement flag on the account
func (r *AuthRepo) UpdateSecurityCode(ctx context.Context, id uuid.UUID, enabled bool) error {
	query := `UPDATE users SET is_security_code_enabled = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, enabled, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update security code flag: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return models.ErrUserNotFound
	}

	return nil
}

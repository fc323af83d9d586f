package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/altostack/tenantdesk/internal/pkg/models"
)

const userColumns = `
	id, full_name, company_name, email_address, password, phone_no, city,
	role, company_id, package_id, is_active, is_security_code_enabled,
	created_at, updated_at
`

// GetSuperAdmin retrieves the platform super admin account
func (r *NotificationRepo) GetSuperAdmin(ctx context.Context) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 LIMIT 1`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, models.RoleSuperAdmin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get super admin: %w", err)
	}

	return &user, nil
}

// GetUserByID retrieves a user by id
func (r *NotificationRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
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

// GetPackageName retrieves a subscription package name by id
func (r *NotificationRepo) GetPackageName(ctx context.Context, id uuid.UUID) (string, error) {
	query := `SELECT package_name FROM subscription_packages WHERE id = $1`

	var name string
	err := r.db.GetContext(ctx, &name, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("subscription package not found")
		}
		return "", fmt.Errorf("failed to get subscription package: %w", err)
	}

	return name, nil
}

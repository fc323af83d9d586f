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

const gatewayColumns = `
	id, from_name, reply_to_email_address, smtp_server_host,
	smtp_server_port, smtp_security, smtp_username, smtp_password,
	user_id, is_active, created_by_super_admin, created_at, updated_at
`

// CreateGateway inserts a new email gateway
func (r *AdminRepo) CreateGateway(ctx context.Context, gw *models.EmailGateway) error {
	query := `
		INSERT INTO email_gateways (` + gatewayColumns + `)
		VALUES (:id, :from_name, :reply_to_email_address, :smtp_server_host,
			:smtp_server_port, :smtp_security, :smtp_username, :smtp_password,
			:user_id, :is_active, :created_by_super_admin, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, gw)
	if err != nil {
		return fmt.Errorf("failed to insert email gateway: %w", err)
	}

	return nil
}

// GetGatewayByID retrieves an email gateway by id
func (r *AdminRepo) GetGatewayByID(ctx context.Context, id uuid.UUID) (*models.EmailGateway, error) {
	query := `SELECT ` + gatewayColumns + ` FROM email_gateways WHERE id = $1`

	var gw models.EmailGateway
	err := r.db.GetContext(ctx, &gw, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrGatewayNotFound
		}
		return nil, fmt.Errorf("failed to get email gateway: %w", err)
	}

	return &gw, nil
}

// GetGatewayByOwner retrieves the email gateway in the owner's scope
func (r *AdminRepo) GetGatewayByOwner(ctx context.Context, ownerID uuid.UUID, createdBySuperAdmin bool) (*models.EmailGateway, error) {
	query := `
		SELECT ` + gatewayColumns + `
		FROM email_gateways
		WHERE user_id = $1 AND created_by_super_admin = $2
	`

	var gw models.EmailGateway
	err := r.db.GetContext(ctx, &gw, query, ownerID, createdBySuperAdmin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrGatewayNotFound
		}
		return nil, fmt.Errorf("failed to get email gateway: %w", err)
	}

	return &gw, nil
}

// UpdateGateway replaces the gateway configuration
func (r *AdminRepo) UpdateGateway(ctx context.Context, gw *models.EmailGateway) error {
	query := `
		UPDATE email_gateways SET
			from_name = :from_name,
			reply_to_email_address = :reply_to_email_address,
			smtp_server_host = :smtp_server_host,
			smtp_server_port = :smtp_server_port,
			smtp_security = :smtp_security,
			smtp_username = :smtp_username,
			smtp_password = :smtp_password,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, gw)
	if err != nil {
		return fmt.Errorf("failed to update email gateway: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return models.ErrGatewayNotFound
	}

	return nil
}

// SetGatewayStatus flips the active flag on the gateway
func (r *AdminRepo) SetGatewayStatus(ctx context.Context, id uuid.UUID, active bool) error {
	query := `UPDATE email_gateways SET is_active = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, active, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update gateway status: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return models.ErrGatewayNotFound
	}

	return nil
}

// DeleteGateway removes the gateway
func (r *AdminRepo) DeleteGateway(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM email_gateways WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete email gateway: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return models.ErrGatewayNotFound
	}

	return nil
}

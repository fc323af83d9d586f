package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/altostack/tenantdesk/internal/pkg/models"
)

const gatewayColumns = `
	id, from_name, reply_to_email_address, smtp_server_host,
	smtp_server_port, smtp_security, smtp_username, smtp_password,
	user_id, is_active, created_by_super_admin, created_at, updated_at
`

// GetGatewayByOwner retrieves the email gateway owned by the given
// user. Super-admin level gateways are keyed by the flag rather than
// the owner id alone.
func (r *NotificationRepo) GetGatewayByOwner(ctx context.Context, ownerID uuid.UUID, createdBySuperAdmin bool) (*models.EmailGateway, error) {
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

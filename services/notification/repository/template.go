package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/altostack/tenantdesk/internal/pkg/models"
)

const templateColumns = `
	id, subject, content, type, user_id, created_by_super_admin,
	is_active, is_shared, created_at, updated_at
`

// GetTemplateByOwnerAndType retrieves the email template of the given
// type within the owner's scope.
func (r *NotificationRepo) GetTemplateByOwnerAndType(ctx context.Context, ownerID uuid.UUID, templateType models.TemplateType) (*models.EmailTemplate, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM email_templates
		WHERE user_id = $1 AND type = $2
	`

	var tmpl models.EmailTemplate
	err := r.db.GetContext(ctx, &tmpl, query, ownerID, templateType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get email template: %w", err)
	}

	return &tmpl, nil
}

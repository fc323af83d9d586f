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

// CreateTemplate inserts a new email template
func (r *AdminRepo) CreateTemplate(ctx context.Context, tpl *models.EmailTemplate) error {
	query := `
		INSERT INTO email_templates (` + templateColumns + `)
		VALUES (:id, :subject, :content, :type, :user_id, :created_by_super_admin,
			:is_active, :is_shared, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, tpl)
	if err != nil {
		return fmt.Errorf("failed to insert email template: %w", err)
	}

	return nil
}

// GetTemplateByID retrieves an email template by id
func (r *AdminRepo) GetTemplateByID(ctx context.Context, id uuid.UUID) (*models.EmailTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM email_templates WHERE id = $1`

	var tpl models.EmailTemplate
	err := r.db.GetContext(ctx, &tpl, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get email template: %w", err)
	}

	return &tpl, nil
}

// GetTemplateByOwnerAndType retrieves the owner's template of the given type
func (r *AdminRepo) GetTemplateByOwnerAndType(ctx context.Context, ownerID uuid.UUID, templateType models.TemplateType) (*models.EmailTemplate, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM email_templates
		WHERE user_id = $1 AND type = $2
	`

	var tpl models.EmailTemplate
	err := r.db.GetContext(ctx, &tpl, query, ownerID, templateType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get email template: %w", err)
	}

	return &tpl, nil
}

// ListTemplatesByOwner retrieves every template in the owner's scope
func (r *AdminRepo) ListTemplatesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.EmailTemplate, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM email_templates
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var templates []*models.EmailTemplate
	if err := r.db.SelectContext(ctx, &templates, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list email templates: %w", err)
	}

	return templates, nil
}

// UpdateTemplate replaces the template content
func (r *AdminRepo) UpdateTemplate(ctx context.Context, tpl *models.EmailTemplate) error {
	query := `
		UPDATE email_templates SET
			subject = :subject,
			content = :content,
			is_shared = :is_shared,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, tpl)
	if err != nil {
		return fmt.Errorf("failed to update email template: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return models.ErrTemplateNotFound
	}

	return nil
}

// DeleteTemplate removes the template
func (r *AdminRepo) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM email_templates WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete email template: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return models.ErrTemplateNotFound
	}

	return nil
}

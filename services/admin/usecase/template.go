package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/altostack/tenantdesk/internal/pkg/models"
)

// CreateEmailTemplate stores a notification template for the caller's
// scope. Each scope holds at most one template per type.
func (u *AdminUC) CreateEmailTemplate(ctx context.Context, actorID uuid.UUID, actorRole models.Role, req *models.EmailTemplateRequest) (*models.EmailTemplate, error) {
	if err := validateTemplateRequest(req); err != nil {
		return nil, err
	}

	existing, err := u.repo.GetTemplateByOwnerAndType(ctx, actorID, req.Type)
	if err != nil && !errors.Is(err, models.ErrTemplateNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrTemplateAlreadyExists
	}

	now := time.Now()
	tpl := &models.EmailTemplate{
		ID:                  uuid.New(),
		Subject:             req.Subject,
		Content:             req.Content,
		Type:                req.Type,
		UserID:              &actorID,
		CreatedBySuperAdmin: actorRole == models.RoleSuperAdmin,
		IsActive:            true,
		IsShared:            req.IsShared,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := u.repo.CreateTemplate(ctx, tpl); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	return tpl, nil
}

// ListEmailTemplates returns every template in the caller's scope.
func (u *AdminUC) ListEmailTemplates(ctx context.Context, actorID uuid.UUID, actorRole models.Role) ([]*models.EmailTemplate, error) {
	return u.repo.ListTemplatesByOwner(ctx, actorID)
}

// GetEmailTemplateByType returns the caller's template of the given type.
func (u *AdminUC) GetEmailTemplateByType(ctx context.Context, actorID uuid.UUID, actorRole models.Role, templateType models.TemplateType) (*models.EmailTemplate, error) {
	if !models.ValidTemplateType(templateType) {
		return nil, models.ErrInvalidTemplateType
	}
	return u.repo.GetTemplateByOwnerAndType(ctx, actorID, templateType)
}

// UpdateEmailTemplate replaces the subject and content of the template.
// The type is fixed at creation.
func (u *AdminUC) UpdateEmailTemplate(ctx context.Context, actorID uuid.UUID, actorRole models.Role, id uuid.UUID, req *models.EmailTemplateRequest) (*models.EmailTemplate, error) {
	if req.Subject == "" || req.Content == "" {
		return nil, models.ErrEmptyRequiredFields
	}

	tpl, err := u.ownedTemplate(ctx, actorID, id)
	if err != nil {
		return nil, err
	}

	tpl.Subject = req.Subject
	tpl.Content = req.Content
	tpl.IsShared = req.IsShared
	tpl.UpdatedAt = time.Now()

	if err := u.repo.UpdateTemplate(ctx, tpl); err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}

	return tpl, nil
}

// DeleteEmailTemplate removes the template.
func (u *AdminUC) DeleteEmailTemplate(ctx context.Context, actorID uuid.UUID, actorRole models.Role, id uuid.UUID) error {
	if _, err := u.ownedTemplate(ctx, actorID, id); err != nil {
		return err
	}
	return u.repo.DeleteTemplate(ctx, id)
}

func (u *AdminUC) ownedTemplate(ctx context.Context, actorID, id uuid.UUID) (*models.EmailTemplate, error) {
	tpl, err := u.repo.GetTemplateByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tpl.UserID == nil || *tpl.UserID != actorID {
		return nil, models.ErrForbidden
	}
	return tpl, nil
}

func validateTemplateRequest(req *models.EmailTemplateRequest) error {
	if req.Subject == "" || req.Content == "" || req.Type == "" {
		return models.ErrEmptyRequiredFields
	}
	if !models.ValidTemplateType(req.Type) {
		return models.ErrInvalidTemplateType
	}
	return nil
}

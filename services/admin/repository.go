package admin

import (
	"context"

	"github.com/google/uuid"

	"github.com/altostack/tenantdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/altostack/tenantdesk/services/admin AdminRepo

// AdminRepo provides persistence for gateways, templates and company
// accounts.
type AdminRepo interface {
	// Gateways
	CreateGateway(ctx context.Context, gw *models.EmailGateway) error
	GetGatewayByID(ctx context.Context, id uuid.UUID) (*models.EmailGateway, error)
	GetGatewayByOwner(ctx context.Context, ownerID uuid.UUID, createdBySuperAdmin bool) (*models.EmailGateway, error)
	UpdateGateway(ctx context.Context, gw *models.EmailGateway) error
	SetGatewayStatus(ctx context.Context, id uuid.UUID, active bool) error
	DeleteGateway(ctx context.Context, id uuid.UUID) error

	// Templates
	CreateTemplate(ctx context.Context, tpl *models.EmailTemplate) error
	GetTemplateByID(ctx context.Context, id uuid.UUID) (*models.EmailTemplate, error)
	GetTemplateByOwnerAndType(ctx context.Context, ownerID uuid.UUID, templateType models.TemplateType) (*models.EmailTemplate, error)
	ListTemplatesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.EmailTemplate, error)
	UpdateTemplate(ctx context.Context, tpl *models.EmailTemplate) error
	DeleteTemplate(ctx context.Context, id uuid.UUID) error

	// Company accounts
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, emailAddress string) (*models.User, error)
	ListUsersByRole(ctx context.Context, role models.Role) ([]*models.User, error)
	SetUserStatus(ctx context.Context, id uuid.UUID, active bool) error
}

package admin

import (
	"context"

	"github.com/google/uuid"

	"github.com/altostack/tenantdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/altostack/tenantdesk/services/admin AdminUC

// AdminUC represents the administration usecase interface. Gateway and
// template operations are scoped to the calling user: super admins
// manage the platform-level records, everyone else their own.
type AdminUC interface {
	// Email gateway management
	CreateEmailGateway(ctx context.Context, actorID uuid.UUID, actorRole models.Role, req *models.EmailGatewayRequest) (*models.EmailGateway, error)
	GetEmailGateway(ctx context.Context, actorID uuid.UUID, actorRole models.Role) (*models.EmailGateway, error)
	UpdateEmailGateway(ctx context.Context, actorID uuid.UUID, actorRole models.Role, id uuid.UUID, req *models.EmailGatewayRequest) (*models.EmailGateway, error)
	SetGatewayStatus(ctx context.Context, actorID uuid.UUID, actorRole models.Role, id uuid.UUID, active bool) error
	DeleteEmailGateway(ctx context.Context, actorID uuid.UUID, actorRole models.Role, id uuid.UUID) error

	// Email template management
	CreateEmailTemplate(ctx context.Context, actorID uuid.UUID, actorRole models.Role, req *models.EmailTemplateRequest) (*models.EmailTemplate, error)
	ListEmailTemplates(ctx context.Context, actorID uuid.UUID, actorRole models.Role) ([]*models.EmailTemplate, error)
	GetEmailTemplateByType(ctx context.Context, actorID uuid.UUID, actorRole models.Role, templateType models.TemplateType) (*models.EmailTemplate, error)
	UpdateEmailTemplate(ctx context.Context, actorID uuid.UUID, actorRole models.Role, id uuid.UUID, req *models.EmailTemplateRequest) (*models.EmailTemplate, error)
	DeleteEmailTemplate(ctx context.Context, actorID uuid.UUID, actorRole models.Role, id uuid.UUID) error

	// Company provisioning (super admin only; enforced by routing)
	CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (*models.User, error)
	ListCompanies(ctx context.Context) ([]*models.User, error)
	GetCompany(ctx context.Context, id uuid.UUID) (*models.User, error)
	SetCompanyStatus(ctx context.Context, id uuid.UUID, active bool) error
}

package notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/altostack/tenantdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/altostack/tenantdesk/services/notification NotificationRepo

// NotificationRepo provides the persistence lookups the notification
// pipeline depends on.
type NotificationRepo interface {
	GetSuperAdmin(ctx context.Context) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetGatewayByOwner(ctx context.Context, ownerID uuid.UUID, createdBySuperAdmin bool) (*models.EmailGateway, error)
	GetTemplateByOwnerAndType(ctx context.Context, ownerID uuid.UUID, templateType models.TemplateType) (*models.EmailTemplate, error)
	GetPackageName(ctx context.Context, id uuid.UUID) (string, error)
}

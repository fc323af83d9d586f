package notification

import (
	"context"

	"github.com/altostack/tenantdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/altostack/tenantdesk/services/notification NotificationUC

// NotificationUC represents the notification usecase interface
type NotificationUC interface {
	// ResolveNotifyingIdentity determines which user's gateway and
	// templates are used to notify the target, based on role hierarchy.
	ResolveNotifyingIdentity(ctx context.Context, target *models.User) (*models.User, error)

	// Notify runs the full pipeline: resolve identity, fetch the active
	// gateway, compile the template and dispatch the email. All failures
	// come back as a tagged result, never as a panic.
	Notify(ctx context.Context, target *models.User, templateType models.TemplateType, extraData map[string]string) models.NotifyResult
}

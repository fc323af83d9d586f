package auth

import (
	"context"

	"github.com/altostack/tenantdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/altostack/tenantdesk/services/auth AuthGW

// AuthGW publishes authentication domain events to the message bus.
type AuthGW interface {
	PublishLoginEvent(ctx context.Context, event *models.AuthEvent) error
	PublishOTPIssued(ctx context.Context, event *models.AuthEvent) error
}

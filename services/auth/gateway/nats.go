package gateway

import (
	"context"

	"github.com/altostack/tenantdesk/internal/pkg/constants"
	natspkg "github.com/altostack/tenantdesk/internal/pkg/nats"
	"github.com/altostack/tenantdesk/internal/pkg/models"
)

// AuthGW publishes authentication domain events to NATS
type AuthGW struct {
	client *natspkg.Client
}

// NewAuthGW creates a new auth events gateway
func NewAuthGW(client *natspkg.Client) *AuthGW {
	return &AuthGW{client: client}
}

// PublishLoginEvent publishes an auth.login event
func (g *AuthGW) PublishLoginEvent(ctx context.Context, event *models.AuthEvent) error {
	return g.client.PublishJSON(constants.SubjectUserLogin, event)
}

// PublishOTPIssued publishes an auth.otp.issued event
func (g *AuthGW) PublishOTPIssued(ctx context.Context, event *models.AuthEvent) error {
	return g.client.PublishJSON(constants.SubjectOTPIssued, event)
}

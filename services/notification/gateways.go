package notification

import (
	"context"

	"github.com/altostack/tenantdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/altostack/tenantdesk/services/notification EmailGW,EventsGW

// EmailGW is the outbound email transport. Send dials the gateway's
// SMTP configuration when one is supplied and active, otherwise the
// injected process-wide default, and returns the message identifier of
// the delivered mail.
type EmailGW interface {
	Send(ctx context.Context, gw *models.EmailGateway, subject, htmlBody, recipient string) (string, error)
	VerifyCredentials(ctx context.Context, cfg models.SMTPConfig) error
}

// EventsGW publishes notification domain events to the message bus.
type EventsGW interface {
	PublishNotificationSent(ctx context.Context, event *models.NotificationEvent) error
}

package gateway

import (
	"context"

	"github.com/altostack/tenantdesk/internal/pkg/constants"
	natspkg "github.com/altostack/tenantdesk/internal/pkg/nats"
	"github.com/altostack/tenantdesk/internal/pkg/models"
)

// EventsGW publishes notification domain events to NATS
type EventsGW struct {
	client *natspkg.Client
}

// NewEventsGW creates a new notification events gateway
func NewEventsGW(client *natspkg.Client) *EventsGW {
	return &EventsGW{client: client}
}

// PublishNotificationSent publishes a notification.sent event
func (g *EventsGW) PublishNotificationSent(ctx context.Context, event *models.NotificationEvent) error {
	return g.client.PublishJSON(constants.SubjectNotificationSent, event)
}

package usecase

import (
	"github.com/altostack/tenantdesk/services/notification"
)

// NotificationUC implements the notification pipeline
type NotificationUC struct {
	repo    notification.NotificationRepo
	emailGW notification.EmailGW
	events  notification.EventsGW
}

// NewNotificationUC creates a new notification usecase instance
func NewNotificationUC(
	repo notification.NotificationRepo,
	emailGW notification.EmailGW,
	events notification.EventsGW,
) *NotificationUC {
	return &NotificationUC{
		repo:    repo,
		emailGW: emailGW,
		events:  events,
	}
}

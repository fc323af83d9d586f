package usecase

import (
	"github.com/altostack/tenantdesk/services/admin"
	"github.com/altostack/tenantdesk/services/notification"
)

// AdminUC implements gateway, template and company administration
type AdminUC struct {
	repo     admin.AdminRepo
	emailGW  notification.EmailGW
	notifyUC notification.NotificationUC
}

// NewAdminUC creates a new admin usecase instance
func NewAdminUC(
	repo admin.AdminRepo,
	emailGW notification.EmailGW,
	notifyUC notification.NotificationUC,
) *AdminUC {
	return &AdminUC{
		repo:     repo,
		emailGW:  emailGW,
		notifyUC: notifyUC,
	}
}

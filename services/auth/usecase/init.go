package usecase

import (
	"github.com/altostack/tenantdesk/internal/pkg/models"
	"github.com/altostack/tenantdesk/services/auth"
	"github.com/altostack/tenantdesk/services/notification"
)

// AuthUC implements the login, OTP and password-reset flows
type AuthUC struct {
	authRepo auth.AuthRepo
	notifyUC notification.NotificationUC
	authGW   auth.AuthGW
	cfg      *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	authRepo auth.AuthRepo,
	notifyUC notification.NotificationUC,
	authGW auth.AuthGW,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		authRepo: authRepo,
		notifyUC: notifyUC,
		authGW:   authGW,
		cfg:      cfg,
	}
}

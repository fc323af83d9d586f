package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/altostack/tenantdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/altostack/tenantdesk/services/auth AuthUC

// AuthUC represents the authentication usecase interface
type AuthUC interface {
	// Login checks credentials and either issues a session token
	// directly or sends an OTP challenge when the account requires one.
	Login(ctx context.Context, emailAddress, password string) (*models.LoginResult, error)

	// VerifyLoginOTP completes a pending OTP challenge and issues the
	// session token.
	VerifyLoginOTP(ctx context.Context, emailAddress, code string) (*models.AuthResponse, error)

	// Password reset flow
	SendResetOTP(ctx context.Context, emailAddress string) error
	VerifyResetOTP(ctx context.Context, emailAddress, code string) error
	ResetPassword(ctx context.Context, emailAddress, newPassword string) error

	// ToggleSecurityCode flips the OTP requirement on the target
	// account, subject to role rules.
	ToggleSecurityCode(ctx context.Context, actorID uuid.UUID, actorRole models.Role, targetID uuid.UUID, enabled bool) (bool, error)
}

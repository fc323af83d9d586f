package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/altostack/tenantdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/altostack/tenantdesk/services/auth AuthRepo

// AuthRepo provides user persistence and the one-time passcode store.
type AuthRepo interface {
	GetUserByEmail(ctx context.Context, emailAddress string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateSecurityCode(ctx context.Context, id uuid.UUID, enabled bool) error

	// IssueOTP stores a fresh passcode for the email, superseding any
	// prior one, and returns the issued record.
	IssueOTP(ctx context.Context, emailAddress string, purpose models.OTPPurpose) (*models.OTP, error)

	// VerifyOTP consumes the passcode. VALID and EXPIRED both delete
	// the stored record; a passcode never validates twice.
	VerifyOTP(ctx context.Context, emailAddress, code string) (models.OTPVerifyResult, error)
}

package usecase

import (
	"context"
	"fmt"
	"strconv"

	jwtpkg "github.com/altostack/tenantdesk/internal/pkg/jwt"
	"github.com/altostack/tenantdesk/internal/pkg/logger"
	"github.com/altostack/tenantdesk/internal/pkg/models"
	"github.com/altostack/tenantdesk/internal/utils"
)

// Login validates credentials and either issues a session token or
// starts an OTP challenge, depending on the account's security-code
// setting.
func (u *AuthUC) Login(ctx context.Context, emailAddress, password string) (*models.LoginResult, error) {
	user, err := u.authRepo.GetUserByEmail(ctx, emailAddress)
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, models.ErrAccountInactive
	}

	if !utils.ComparePassword(user.Password, password) {
		return nil, models.ErrIncorrectPassword
	}

	// The notifying identity must resolve before the account can be
	// challenged; a broken hierarchy is a configuration fault.
	if _, err := u.notifyUC.ResolveNotifyingIdentity(ctx, user); err != nil {
		return nil, err
	}

	if user.IsSecurityCodeEnabled {
		if err := u.issueLoginChallenge(ctx, user); err != nil {
			return nil, err
		}
		return &models.LoginResult{ChallengeRequired: true}, nil
	}

	authResp, err := u.issueToken(user)
	if err != nil {
		return nil, err
	}

	u.publishLogin(ctx, user.EmailAddress, "login")

	return &models.LoginResult{Auth: authResp}, nil
}

// issueLoginChallenge stores a login OTP and dispatches it through the
// notification pipeline.
func (u *AuthUC) issueLoginChallenge(ctx context.Context, user *models.User) error {
	otp, err := u.authRepo.IssueOTP(ctx, user.EmailAddress, models.OTPPurposeLogin)
	if err != nil {
		return fmt.Errorf("failed to issue OTP: %w", err)
	}

	result := u.notifyUC.Notify(ctx, user, models.TemplateLoginAuthorization, map[string]string{
		"otp":        otp.Code,
		"expireTime": strconv.Itoa(int(models.OTPTTL.Minutes())),
	})
	if !result.Delivered() {
		// The challenge stands; the caller can ask for a resend. Only
		// the delivery attempt is logged here.
		logger.Warn("Login OTP notification not delivered",
			logger.String("email", user.EmailAddress),
			logger.String("status", string(result.Status)),
			logger.Err(result.Err))
	}

	if err := u.authGW.PublishOTPIssued(ctx, &models.AuthEvent{
		EmailAddress: user.EmailAddress,
		Kind:         string(models.OTPPurposeLogin),
	}); err != nil {
		logger.Warn("Failed to publish OTP event", logger.Err(err))
	}

	return nil
}

// VerifyLoginOTP completes a pending challenge and issues the token.
func (u *AuthUC) VerifyLoginOTP(ctx context.Context, emailAddress, code string) (*models.AuthResponse, error) {
	result, err := u.authRepo.VerifyOTP(ctx, emailAddress, code)
	if err != nil {
		return nil, err
	}

	switch result {
	case models.OTPExpired:
		return nil, models.ErrOTPExpired
	case models.OTPNotFound:
		return nil, models.ErrOTPInvalid
	}

	user, err := u.authRepo.GetUserByEmail(ctx, emailAddress)
	if err != nil {
		return nil, err
	}

	authResp, err := u.issueToken(user)
	if err != nil {
		return nil, err
	}

	u.publishLogin(ctx, user.EmailAddress, "login_otp")

	return authResp, nil
}

func (u *AuthUC) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(user, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:        token,
		UserID:       user.ID.String(),
		FullName:     user.DisplayName(),
		EmailAddress: user.EmailAddress,
		Role:         string(user.Role),
		ExpiresAt:    expiresAt,
	}, nil
}

func (u *AuthUC) publishLogin(ctx context.Context, email, kind string) {
	if err := u.authGW.PublishLoginEvent(ctx, &models.AuthEvent{
		EmailAddress: email,
		Kind:         kind,
	}); err != nil {
		logger.Warn("Failed to publish login event", logger.Err(err))
	}
}

package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/altostack/tenantdesk/internal/pkg/logger"
	"github.com/altostack/tenantdesk/internal/pkg/models"
	"github.com/altostack/tenantdesk/internal/utils"
)

// SendResetOTP issues a password-reset passcode and mails it to the
// account's address.
func (u *AuthUC) SendResetOTP(ctx context.Context, emailAddress string) error {
	user, err := u.authRepo.GetUserByEmail(ctx, emailAddress)
	if err != nil {
		return err
	}

	if _, err := u.notifyUC.ResolveNotifyingIdentity(ctx, user); err != nil {
		return err
	}

	otp, err := u.authRepo.IssueOTP(ctx, user.EmailAddress, models.OTPPurposePasswordReset)
	if err != nil {
		return fmt.Errorf("failed to issue OTP: %w", err)
	}

	result := u.notifyUC.Notify(ctx, user, models.TemplatePasswordReset, map[string]string{
		"otp":        otp.Code,
		"expireTime": strconv.Itoa(int(models.OTPTTL.Minutes())),
	})
	if !result.Delivered() {
		logger.Warn("Reset OTP notification not delivered",
			logger.String("email", user.EmailAddress),
			logger.String("status", string(result.Status)),
			logger.Err(result.Err))
	}

	if err := u.authGW.PublishOTPIssued(ctx, &models.AuthEvent{
		EmailAddress: user.EmailAddress,
		Kind:         string(models.OTPPurposePasswordReset),
	}); err != nil {
		logger.Warn("Failed to publish OTP event", logger.Err(err))
	}

	return nil
}

// VerifyResetOTP consumes the reset passcode. On success the caller is
// cleared to submit a new password.
func (u *AuthUC) VerifyResetOTP(ctx context.Context, emailAddress, code string) error {
	result, err := u.authRepo.VerifyOTP(ctx, emailAddress, code)
	if err != nil {
		return err
	}

	switch result {
	case models.OTPExpired:
		return models.ErrOTPExpired
	case models.OTPNotFound:
		return models.ErrOTPInvalid
	}

	return nil
}

// ResetPassword replaces the account password with a freshly hashed one.
func (u *AuthUC) ResetPassword(ctx context.Context, emailAddress, newPassword string) error {
	if !utils.ValidatePasswordStrength(newPassword) {
		return models.ErrWeakPassword
	}

	user, err := u.authRepo.GetUserByEmail(ctx, emailAddress)
	if err != nil {
		return err
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := u.authRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	logger.Info("Password reset completed",
		logger.String("email", user.EmailAddress))

	return nil
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/altostack/tenantdesk/internal/pkg/constants"
	"github.com/altostack/tenantdesk/internal/pkg/models"
	"github.com/altostack/tenantdesk/internal/utils"
)

// The OTP store keeps one record per email address under user:otp:{email}.
// SET with a TTL is an atomic upsert: a second issuance replaces the
// first, so concurrent issuance cannot leave two live codes. The key TTL
// is the best-effort purge; Verify re-checks the creation timestamp
// explicitly and does not depend on the purge having run.

// IssueOTP generates and stores a fresh passcode for the email address,
// superseding any existing one.
func (r *AuthRepo) IssueOTP(ctx context.Context, emailAddress string, purpose models.OTPPurpose) (*models.OTP, error) {
	code, err := utils.GenerateOTPCode()
	if err != nil {
		return nil, err
	}

	otp := &models.OTP{
		EmailAddress: emailAddress,
		Purpose:      purpose,
		Code:         code,
		CreatedAt:    time.Now(),
	}

	payload, err := json.Marshal(otp)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal OTP: %w", err)
	}

	key := fmt.Sprintf(constants.KeyUserOTP, emailAddress)
	if err := r.redisClient.Set(ctx, key, payload, models.OTPTTL); err != nil {
		return nil, fmt.Errorf("failed to store OTP: %w", err)
	}

	return otp, nil
}

// VerifyOTP looks up the stored passcode for the email and consumes it.
func (r *AuthRepo) VerifyOTP(ctx context.Context, emailAddress, code string) (models.OTPVerifyResult, error) {
	key := fmt.Sprintf(constants.KeyUserOTP, emailAddress)

	val, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.OTPNotFound, nil
		}
		return models.OTPNotFound, fmt.Errorf("failed to get OTP: %w", err)
	}

	var otp models.OTP
	if err := json.Unmarshal([]byte(val), &otp); err != nil {
		return models.OTPNotFound, fmt.Errorf("failed to unmarshal OTP: %w", err)
	}

	if otp.Code != code {
		return models.OTPNotFound, nil
	}

	// Single use: the record goes away whether the window held or not.
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return models.OTPNotFound, fmt.Errorf("failed to delete OTP: %w", err)
	}

	if otp.Expired(time.Now()) {
		return models.OTPExpired, nil
	}

	return models.OTPValid, nil
}

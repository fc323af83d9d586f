package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altostack/tenantdesk/internal/pkg/constants"
	"github.com/altostack/tenantdesk/internal/pkg/database"
	"github.com/altostack/tenantdesk/internal/pkg/models"
)

func setupOTPRepo(t *testing.T) (*AuthRepo, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := NewAuthRepo(nil, &database.RedisClient{Client: client})
	return repo, mr
}

func TestIssueOTP_StoresCodeWithTTL(t *testing.T) {
	repo, mr := setupOTPRepo(t)
	ctx := context.Background()

	otp, err := repo.IssueOTP(ctx, "jane@example.com", models.OTPPurposeLogin)

	assert.NoError(t, err)
	assert.Len(t, otp.Code, 4)

	key := fmt.Sprintf(constants.KeyUserOTP, "jane@example.com")
	assert.True(t, mr.Exists(key))
	assert.Equal(t, models.OTPTTL, mr.TTL(key))
}

func TestIssueOTP_SupersedesExistingCode(t *testing.T) {
	repo, mr := setupOTPRepo(t)
	ctx := context.Background()

	first, err := repo.IssueOTP(ctx, "jane@example.com", models.OTPPurposeLogin)
	require.NoError(t, err)

	second, err := repo.IssueOTP(ctx, "jane@example.com", models.OTPPurposeLogin)
	require.NoError(t, err)

	// Exactly one record lives under the key and it carries the new code
	key := fmt.Sprintf(constants.KeyUserOTP, "jane@example.com")
	val, err := mr.Get(key)
	require.NoError(t, err)

	var stored models.OTP
	require.NoError(t, json.Unmarshal([]byte(val), &stored))
	assert.Equal(t, second.Code, stored.Code)

	// The superseded code no longer validates
	result, err := repo.VerifyOTP(ctx, "jane@example.com", first.Code)
	assert.NoError(t, err)
	if first.Code != second.Code {
		assert.Equal(t, models.OTPNotFound, result)
	}
}

func TestVerifyOTP_SingleUse(t *testing.T) {
	repo, _ := setupOTPRepo(t)
	ctx := context.Background()

	otp, err := repo.IssueOTP(ctx, "jane@example.com", models.OTPPurposeLogin)
	require.NoError(t, err)

	result, err := repo.VerifyOTP(ctx, "jane@example.com", otp.Code)
	assert.NoError(t, err)
	assert.Equal(t, models.OTPValid, result)

	// A passcode never validates twice
	result, err = repo.VerifyOTP(ctx, "jane@example.com", otp.Code)
	assert.NoError(t, err)
	assert.Equal(t, models.OTPNotFound, result)
}

func TestVerifyOTP_WrongCodeLeavesRecord(t *testing.T) {
	repo, mr := setupOTPRepo(t)
	ctx := context.Background()

	otp, err := repo.IssueOTP(ctx, "jane@example.com", models.OTPPurposeLogin)
	require.NoError(t, err)

	wrong := "0000"
	if otp.Code == wrong {
		wrong = "0001"
	}

	result, err := repo.VerifyOTP(ctx, "jane@example.com", wrong)
	assert.NoError(t, err)
	assert.Equal(t, models.OTPNotFound, result)

	// A wrong guess must not consume the real code
	key := fmt.Sprintf(constants.KeyUserOTP, "jane@example.com")
	assert.True(t, mr.Exists(key))
}

func TestVerifyOTP_ExpiredByTimestamp(t *testing.T) {
	repo, mr := setupOTPRepo(t)
	ctx := context.Background()

	// Store a record whose creation timestamp is outside the window even
	// though the key itself still exists.
	stale := models.OTP{
		EmailAddress: "jane@example.com",
		Purpose:      models.OTPPurposeLogin,
		Code:         "5042",
		CreatedAt:    time.Now().Add(-models.OTPTTL - time.Second),
	}
	payload, err := json.Marshal(stale)
	require.NoError(t, err)

	key := fmt.Sprintf(constants.KeyUserOTP, "jane@example.com")
	require.NoError(t, mr.Set(key, string(payload)))

	result, err := repo.VerifyOTP(ctx, "jane@example.com", "5042")
	assert.NoError(t, err)
	assert.Equal(t, models.OTPExpired, result)

	// Expired verification still consumes the record
	assert.False(t, mr.Exists(key))
}

func TestVerifyOTP_MissingKey(t *testing.T) {
	repo, _ := setupOTPRepo(t)

	result, err := repo.VerifyOTP(context.Background(), "nobody@example.com", "5042")

	assert.NoError(t, err)
	assert.Equal(t, models.OTPNotFound, result)
}

package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/altostack/tenantdesk/internal/pkg/models"
	"github.com/altostack/tenantdesk/internal/utils"
	authmocks "github.com/altostack/tenantdesk/services/auth/mocks"
	notifmocks "github.com/altostack/tenantdesk/services/notification/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "tenantdesk-test",
		},
	}
}

func testUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	assert.NoError(t, err)
	return &models.User{
		ID:           uuid.New(),
		FullName:     "Jane Operator",
		EmailAddress: "jane@example.com",
		Password:     hash,
		Role:         models.RoleSuperAdmin,
		IsActive:     true,
	}
}

func TestLogin_DirectToken(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authmocks.NewMockAuthRepo(ctrl)
	mockNotify := notifmocks.NewMockNotificationUC(ctrl)
	mockGW := authmocks.NewMockAuthGW(ctrl)

	user := testUser(t, "Sup3r$ecret")

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), user.EmailAddress).
		Return(user, nil)
	mockNotify.EXPECT().
		ResolveNotifyingIdentity(gomock.Any(), user).
		Return(user, nil)
	mockGW.EXPECT().
		PublishLoginEvent(gomock.Any(), gomock.Any()).
		Return(nil)

	uc := NewAuthUC(mockRepo, mockNotify, mockGW, testConfig())

	// Act
	result, err := uc.Login(context.Background(), user.EmailAddress, "Sup3r$ecret")

	// Assert
	assert.NoError(t, err)
	assert.False(t, result.ChallengeRequired)
	assert.NotNil(t, result.Auth)
	assert.NotEmpty(t, result.Auth.Token)
	assert.Equal(t, user.EmailAddress, result.Auth.EmailAddress)
}

func TestLogin_ChallengeWhenSecurityCodeEnabled(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authmocks.NewMockAuthRepo(ctrl)
	mockNotify := notifmocks.NewMockNotificationUC(ctrl)
	mockGW := authmocks.NewMockAuthGW(ctrl)

	user := testUser(t, "Sup3r$ecret")
	user.IsSecurityCodeEnabled = true

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), user.EmailAddress).
		Return(user, nil)
	mockNotify.EXPECT().
		ResolveNotifyingIdentity(gomock.Any(), user).
		Return(user, nil)
	mockRepo.EXPECT().
		IssueOTP(gomock.Any(), user.EmailAddress, models.OTPPurposeLogin).
		Return(&models.OTP{EmailAddress: user.EmailAddress, Code: "5042"}, nil)
	mockNotify.EXPECT().
		Notify(gomock.Any(), user, models.TemplateLoginAuthorization, gomock.Any()).
		DoAndReturn(func(ctx context.Context, target *models.User, tt models.TemplateType, extra map[string]string) models.NotifyResult {
			assert.Equal(t, "5042", extra["otp"])
			assert.Equal(t, "2", extra["expireTime"])
			return models.NotifyResult{Status: models.NotifyDelivered, MessageID: "msg-1"}
		})
	mockGW.EXPECT().
		PublishOTPIssued(gomock.Any(), gomock.Any()).
		Return(nil)

	uc := NewAuthUC(mockRepo, mockNotify, mockGW, testConfig())

	// Act
	result, err := uc.Login(context.Background(), user.EmailAddress, "Sup3r$ecret")

	// Assert: challenge stands, no token issued yet
	assert.NoError(t, err)
	assert.True(t, result.ChallengeRequired)
	assert.Nil(t, result.Auth)
}

func TestLogin_UserNotFound(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authmocks.NewMockAuthRepo(ctrl)
	mockNotify := notifmocks.NewMockNotificationUC(ctrl)
	mockGW := authmocks.NewMockAuthGW(ctrl)

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "nobody@example.com").
		Return(nil, models.ErrUserNotFound)

	uc := NewAuthUC(mockRepo, mockNotify, mockGW, testConfig())

	// Act
	result, err := uc.Login(context.Background(), "nobody@example.com", "whatever")

	// Assert
	assert.ErrorIs(t, err, models.ErrUserNotFound)
	assert.Nil(t, result)
}

func TestLogin_IncorrectPassword(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authmocks.NewMockAuthRepo(ctrl)
	mockNotify := notifmocks.NewMockNotificationUC(ctrl)
	mockGW := authmocks.NewMockAuthGW(ctrl)

	user := testUser(t, "Sup3r$ecret")

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), user.EmailAddress).
		Return(user, nil)

	uc := NewAuthUC(mockRepo, mockNotify, mockGW, testConfig())

	// Act
	result, err := uc.Login(context.Background(), user.EmailAddress, "wrong-password")

	// Assert
	assert.ErrorIs(t, err, models.ErrIncorrectPassword)
	assert.Nil(t, result)
}

func TestLogin_InactiveAccount(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authmocks.NewMockAuthRepo(ctrl)
	mockNotify := notifmocks.NewMockNotificationUC(ctrl)
	mockGW := authmocks.NewMockAuthGW(ctrl)

	user := testUser(t, "Sup3r$ecret")
	user.IsActive = false

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), user.EmailAddress).
		Return(user, nil)

	uc := NewAuthUC(mockRepo, mockNotify, mockGW, testConfig())

	// Act
	result, err := uc.Login(context.Background(), user.EmailAddress, "Sup3r$ecret")

	// Assert
	assert.ErrorIs(t, err, models.ErrAccountInactive)
	assert.Nil(t, result)
}

func TestLogin_UnresolvableIdentity(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authmocks.NewMockAuthRepo(ctrl)
	mockNotify := notifmocks.NewMockNotificationUC(ctrl)
	mockGW := authmocks.NewMockAuthGW(ctrl)

	user := testUser(t, "Sup3r$ecret")

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), user.EmailAddress).
		Return(user, nil)
	mockNotify.EXPECT().
		ResolveNotifyingIdentity(gomock.Any(), user).
		Return(nil, models.ErrNoGatewayUser)

	uc := NewAuthUC(mockRepo, mockNotify, mockGW, testConfig())

	// Act
	result, err := uc.Login(context.Background(), user.EmailAddress, "Sup3r$ecret")

	// Assert
	assert.ErrorIs(t, err, models.ErrNoGatewayUser)
	assert.Nil(t, result)
}

func TestVerifyLoginOTP_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authmocks.NewMockAuthRepo(ctrl)
	mockNotify := notifmocks.NewMockNotificationUC(ctrl)
	mockGW := authmocks.NewMockAuthGW(ctrl)

	user := testUser(t, "Sup3r$ecret")

	mockRepo.EXPECT().
		VerifyOTP(gomock.Any(), user.EmailAddress, "5042").
		Return(models.OTPValid, nil)
	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), user.EmailAddress).
		Return(user, nil)
	mockGW.EXPECT().
		PublishLoginEvent(gomock.Any(), gomock.Any()).
		Return(nil)

	uc := NewAuthUC(mockRepo, mockNotify, mockGW, testConfig())

	// Act
	authResp, err := uc.VerifyLoginOTP(context.Background(), user.EmailAddress, "5042")

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, authResp.Token)
	assert.Equal(t, user.ID.String(), authResp.UserID)
}

func TestVerifyLoginOTP_Expired(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authmocks.NewMockAuthRepo(ctrl)
	mockNotify := notifmocks.NewMockNotificationUC(ctrl)
	mockGW := authmocks.NewMockAuthGW(ctrl)

	mockRepo.EXPECT().
		VerifyOTP(gomock.Any(), "jane@example.com", "5042").
		Return(models.OTPExpired, nil)

	uc := NewAuthUC(mockRepo, mockNotify, mockGW, testConfig())

	// Act
	authResp, err := uc.VerifyLoginOTP(context.Background(), "jane@example.com", "5042")

	// Assert
	assert.ErrorIs(t, err, models.ErrOTPExpired)
	assert.Nil(t, authResp)
}

func TestVerifyLoginOTP_Invalid(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authmocks.NewMockAuthRepo(ctrl)
	mockNotify := notifmocks.NewMockNotificationUC(ctrl)
	mockGW := authmocks.NewMockAuthGW(ctrl)

	mockRepo.EXPECT().
		VerifyOTP(gomock.Any(), "jane@example.com", "0000").
		Return(models.OTPNotFound, nil)

	uc := NewAuthUC(mockRepo, mockNotify, mockGW, testConfig())

	// Act
	authResp, err := uc.VerifyLoginOTP(context.Background(), "jane@example.com", "0000")

	// Assert
	assert.ErrorIs(t, err, models.ErrOTPInvalid)
	assert.Nil(t, authResp)
}

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/altostack/tenantdesk/internal/pkg/constants"
	"github.com/altostack/tenantdesk/internal/pkg/models"
	"github.com/altostack/tenantdesk/services/auth/mocks"
)

func newAuthContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	return response
}

func TestLogin_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newAuthContext(http.MethodPost, "/auth/login", `{"email_address": "jane@example.com", "password": "Sup3r$ecret"}`)

	userID := uuid.New().String()
	mockAuthUC.EXPECT().
		Login(gomock.Any(), "jane@example.com", "Sup3r$ecret").
		Return(&models.LoginResult{
			Auth: &models.AuthResponse{
				Token:        "jwt-token",
				UserID:       userID,
				EmailAddress: "jane@example.com",
				Role:         "COMPANY",
				ExpiresAt:    1677729600,
			},
		}, nil)

	// Act
	err := authHandler.Login(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, constants.MsgLoggedIn, response["message"])

	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "jwt-token", data["auth_token"])
	assert.Equal(t, userID, data["user_id"])
	assert.Equal(t, "COMPANY", data["role"])
}

func TestLogin_ChallengeRequired(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newAuthContext(http.MethodPost, "/auth/login", `{"email_address": "jane@example.com", "password": "Sup3r$ecret"}`)

	mockAuthUC.EXPECT().
		Login(gomock.Any(), "jane@example.com", "Sup3r$ecret").
		Return(&models.LoginResult{ChallengeRequired: true}, nil)

	// Act
	err := authHandler.Login(c)

	// Assert: no token yet, the caller must verify the OTP
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, constants.MsgOTPSent, response["message"])

	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, true, data["challenge_required"])
	assert.Nil(t, data["auth"])
}

func TestLogin_ValidationErrors(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	testCases := []struct {
		name        string
		requestBody string
		wantError   string
	}{
		{
			name:        "Invalid JSON",
			requestBody: `{invalid_json}`,
			wantError:   constants.MsgInvalidInput,
		},
		{
			name:        "Empty email",
			requestBody: `{"email_address": "", "password": "Sup3r$ecret"}`,
			wantError:   constants.MsgEmptyRequiredFields,
		},
		{
			name:        "Empty password",
			requestBody: `{"email_address": "jane@example.com", "password": ""}`,
			wantError:   constants.MsgEmptyRequiredFields,
		},
		{
			name:        "Malformed email",
			requestBody: `{"email_address": "jane-example.com", "password": "Sup3r$ecret"}`,
			wantError:   constants.MsgInvalidEmail,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newAuthContext(http.MethodPost, "/auth/login", tc.requestBody)

			// Act
			err := authHandler.Login(c)

			// Assert
			assert.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			response := decodeBody(t, rec)
			assert.Equal(t, false, response["success"])
			assert.Equal(t, tc.wantError, response["error"])
		})
	}
}

func TestLogin_ErrorMapping(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	testCases := []struct {
		name      string
		ucErr     error
		wantCode  int
		wantError string
	}{
		{
			name:      "Unknown user",
			ucErr:     models.ErrUserNotFound,
			wantCode:  http.StatusNotFound,
			wantError: constants.MsgUserNotFound,
		},
		{
			name:      "Deactivated account",
			ucErr:     models.ErrAccountInactive,
			wantCode:  http.StatusUnauthorized,
			wantError: constants.MsgInactiveAccount,
		},
		{
			name:      "Wrong password",
			ucErr:     models.ErrIncorrectPassword,
			wantCode:  http.StatusUnauthorized,
			wantError: constants.MsgIncorrectPassword,
		},
		{
			name:      "No notifying identity",
			ucErr:     fmt.Errorf("resolve identity: %w", models.ErrNoGatewayUser),
			wantCode:  http.StatusInternalServerError,
			wantError: constants.MsgGatewayError,
		},
		{
			name:      "Unmapped error",
			ucErr:     assert.AnError,
			wantCode:  http.StatusInternalServerError,
			wantError: constants.MsgServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newAuthContext(http.MethodPost, "/auth/login", `{"email_address": "jane@example.com", "password": "Sup3r$ecret"}`)

			mockAuthUC.EXPECT().
				Login(gomock.Any(), "jane@example.com", "Sup3r$ecret").
				Return(nil, tc.ucErr)

			// Act
			err := authHandler.Login(c)

			// Assert
			assert.NoError(t, err)
			assert.Equal(t, tc.wantCode, rec.Code)

			response := decodeBody(t, rec)
			assert.Equal(t, false, response["success"])
			assert.Equal(t, tc.wantError, response["error"])
			assert.Equal(t, float64(tc.wantCode), response["code"])
		})
	}
}

func TestVerifyLoginOTP_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newAuthContext(http.MethodPost, "/auth/verify-login-otp", `{"email_address": "jane@example.com", "otp": "5042"}`)

	mockAuthUC.EXPECT().
		VerifyLoginOTP(gomock.Any(), "jane@example.com", "5042").
		Return(&models.AuthResponse{Token: "jwt-token"}, nil)

	// Act
	err := authHandler.VerifyLoginOTP(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, constants.MsgLoggedIn, response["message"])

	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "jwt-token", data["auth_token"])
}

func TestVerifyLoginOTP_Expired(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newAuthContext(http.MethodPost, "/auth/verify-login-otp", `{"email_address": "jane@example.com", "otp": "5042"}`)

	mockAuthUC.EXPECT().
		VerifyLoginOTP(gomock.Any(), "jane@example.com", "5042").
		Return(nil, models.ErrOTPExpired)

	// Act
	err := authHandler.VerifyLoginOTP(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, constants.MsgOTPExpired, response["error"])
}

func TestSendResetOTP_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newAuthContext(http.MethodPost, "/auth/send-reset-otp", `{"email_address": "jane@example.com"}`)

	mockAuthUC.EXPECT().
		SendResetOTP(gomock.Any(), "jane@example.com").
		Return(nil)

	// Act
	err := authHandler.SendResetOTP(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, constants.MsgOTPSent, response["message"])
}

func TestResetPassword_WeakPasswordRejected(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newAuthContext(http.MethodPost, "/auth/reset-password", `{"email_address": "jane@example.com", "new_password": "short"}`)

	mockAuthUC.EXPECT().
		ResetPassword(gomock.Any(), "jane@example.com", "short").
		Return(models.ErrWeakPassword)

	// Act
	err := authHandler.ResetPassword(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, constants.MsgInvalidPassword, response["error"])
}

func TestToggleSecurityCode_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	actorID := uuid.New()
	targetID := uuid.New()

	c, rec := newAuthContext(http.MethodPatch, "/auth/security-code/"+targetID.String(), `{"is_security_code_enabled": true}`)
	c.SetParamNames("id")
	c.SetParamValues(targetID.String())
	c.Set("user_id", actorID.String())
	c.Set("role", string(models.RoleSuperAdmin))

	mockAuthUC.EXPECT().
		ToggleSecurityCode(gomock.Any(), actorID, models.RoleSuperAdmin, targetID, true).
		Return(true, nil)

	// Act
	err := authHandler.ToggleSecurityCode(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, constants.MsgUpdated, response["message"])

	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, true, data["is_security_code_enabled"])
}

func TestToggleSecurityCode_MissingFlag(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	targetID := uuid.New()

	c, rec := newAuthContext(http.MethodPatch, "/auth/security-code/"+targetID.String(), `{}`)
	c.SetParamNames("id")
	c.SetParamValues(targetID.String())

	// Act
	err := authHandler.ToggleSecurityCode(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, constants.MsgEmptyRequiredFields, response["error"])
}

func TestToggleSecurityCode_NotCompanyMember(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	actorID := uuid.New()
	targetID := uuid.New()

	c, rec := newAuthContext(http.MethodPatch, "/auth/security-code/"+targetID.String(), `{"is_security_code_enabled": false}`)
	c.SetParamNames("id")
	c.SetParamValues(targetID.String())
	c.Set("user_id", actorID.String())
	c.Set("role", string(models.RoleCompany))

	mockAuthUC.EXPECT().
		ToggleSecurityCode(gomock.Any(), actorID, models.RoleCompany, targetID, false).
		Return(false, models.ErrNotCompanyMember)

	// Act
	err := authHandler.ToggleSecurityCode(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, constants.MsgNotCompanyMember, response["error"])
}

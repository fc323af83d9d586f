package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/altostack/tenantdesk/internal/pkg/constants"
	"github.com/altostack/tenantdesk/internal/pkg/logger"
	"github.com/altostack/tenantdesk/internal/pkg/middleware"
	"github.com/altostack/tenantdesk/internal/pkg/models"
	"github.com/altostack/tenantdesk/internal/utils"
	"github.com/altostack/tenantdesk/services/auth"
)

// AuthHandler handles HTTP requests for authentication operations
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	authUC auth.AuthUC,
) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// Login handles credential checks. Accounts with the security code
// enabled get an OTP challenge instead of a token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, constants.MsgInvalidInput)
	}
	if req.EmailAddress == "" || req.Password == "" {
		return utils.BadRequestResponse(c, constants.MsgEmptyRequiredFields)
	}
	if !utils.ValidEmail(req.EmailAddress) {
		return utils.BadRequestResponse(c, constants.MsgInvalidEmail)
	}

	result, err := h.authUC.Login(c.Request().Context(), req.EmailAddress, req.Password)
	if err != nil {
		return h.respondAuthError(c, "Login", req.EmailAddress, err)
	}

	if result.ChallengeRequired {
		return utils.SuccessResponse(c, http.StatusOK, constants.MsgOTPSent, result)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.MsgLoggedIn, result.Auth)
}

// VerifyLoginOTP completes a pending login challenge
func (h *AuthHandler) VerifyLoginOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, constants.MsgInvalidInput)
	}
	if req.EmailAddress == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, constants.MsgEmptyRequiredFields)
	}

	authResp, err := h.authUC.VerifyLoginOTP(c.Request().Context(), req.EmailAddress, req.OTP)
	if err != nil {
		return h.respondAuthError(c, "VerifyLoginOTP", req.EmailAddress, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.MsgLoggedIn, authResp)
}

// SendResetOTP starts the password-reset flow
func (h *AuthHandler) SendResetOTP(c echo.Context) error {
	var req models.SendResetOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, constants.MsgInvalidInput)
	}
	if req.EmailAddress == "" {
		return utils.BadRequestResponse(c, constants.MsgEmptyRequiredFields)
	}
	if !utils.ValidEmail(req.EmailAddress) {
		return utils.BadRequestResponse(c, constants.MsgInvalidEmail)
	}

	if err := h.authUC.SendResetOTP(c.Request().Context(), req.EmailAddress); err != nil {
		return h.respondAuthError(c, "SendResetOTP", req.EmailAddress, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.MsgOTPSent, nil)
}

// VerifyResetOTP validates the reset passcode
func (h *AuthHandler) VerifyResetOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, constants.MsgInvalidInput)
	}
	if req.EmailAddress == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, constants.MsgEmptyRequiredFields)
	}

	if err := h.authUC.VerifyResetOTP(c.Request().Context(), req.EmailAddress, req.OTP); err != nil {
		return h.respondAuthError(c, "VerifyResetOTP", req.EmailAddress, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.MsgOTPVerified, nil)
}

// ResetPassword stores the new password
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, constants.MsgInvalidInput)
	}
	if req.EmailAddress == "" || req.NewPassword == "" {
		return utils.BadRequestResponse(c, constants.MsgEmptyRequiredFields)
	}

	if err := h.authUC.ResetPassword(c.Request().Context(), req.EmailAddress, req.NewPassword); err != nil {
		return h.respondAuthError(c, "ResetPassword", req.EmailAddress, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.MsgPasswordReset, nil)
}

// ToggleSecurityCode flips the OTP requirement on the target account
func (h *AuthHandler) ToggleSecurityCode(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, constants.MsgInvalidInput)
	}

	var req models.ToggleSecurityCodeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, constants.MsgInvalidInput)
	}
	if req.IsSecurityCodeEnabled == nil {
		return utils.BadRequestResponse(c, constants.MsgEmptyRequiredFields)
	}

	actorID, err := uuid.Parse(middleware.CurrentUserID(c))
	if err != nil {
		return utils.UnauthorizedResponse(c, constants.MsgUnauthorized)
	}

	enabled, err := h.authUC.ToggleSecurityCode(
		c.Request().Context(),
		actorID,
		middleware.CurrentRole(c),
		targetID,
		*req.IsSecurityCodeEnabled,
	)
	if err != nil {
		return h.respondAuthError(c, "ToggleSecurityCode", targetID.String(), err)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.MsgUpdated, map[string]bool{
		"is_security_code_enabled": enabled,
	})
}

// respondAuthError maps domain errors onto HTTP statuses with stable
// user-facing messages. Anything unmapped is logged and returned as a
// generic server error.
func (h *AuthHandler) respondAuthError(c echo.Context, endpoint, subject string, err error) error {
	switch {
	case errors.Is(err, models.ErrUserNotFound):
		return utils.NotFoundResponse(c, constants.MsgUserNotFound)
	case errors.Is(err, models.ErrAccountInactive):
		return utils.UnauthorizedResponse(c, constants.MsgInactiveAccount)
	case errors.Is(err, models.ErrIncorrectPassword):
		return utils.UnauthorizedResponse(c, constants.MsgIncorrectPassword)
	case errors.Is(err, models.ErrOTPInvalid):
		return utils.UnauthorizedResponse(c, constants.MsgOTPInvalid)
	case errors.Is(err, models.ErrOTPExpired):
		return utils.UnauthorizedResponse(c, constants.MsgOTPExpired)
	case errors.Is(err, models.ErrWeakPassword):
		return utils.BadRequestResponse(c, constants.MsgInvalidPassword)
	case errors.Is(err, models.ErrForbidden):
		return utils.ForbiddenResponse(c, constants.MsgUnauthorized)
	case errors.Is(err, models.ErrNotCompanyMember):
		return utils.ForbiddenResponse(c, constants.MsgNotCompanyMember)
	case errors.Is(err, models.ErrNoGatewayUser),
		errors.Is(err, models.ErrGatewayNotFound),
		errors.Is(err, models.ErrGatewayDeactivated):
		logger.Error("Notification gateway unavailable",
			logger.ErrorField(err),
			logger.String("endpoint", endpoint),
			logger.String("subject", subject),
		)
		return utils.InternalServerErrorResponse(c, constants.MsgGatewayError)
	default:
		logger.Error("Unhandled auth error",
			logger.ErrorField(err),
			logger.String("endpoint", endpoint),
			logger.String("subject", subject),
		)
		return utils.InternalServerErrorResponse(c, constants.MsgServerError)
	}
}

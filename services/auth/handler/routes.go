package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/altostack/tenantdesk/internal/pkg/middleware"
	"github.com/altostack/tenantdesk/internal/pkg/models"
	"github.com/altostack/tenantdesk/services/auth/handler/http"
)

// Handler coordinates the HTTP handlers for the auth service
type Handler struct {
	authHandler *http.AuthHandler
	cfg         *models.Config
}

// NewHandler creates and initializes the auth handler
func NewHandler(
	authHandler *http.AuthHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler: authHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the authentication routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes (no authentication required)
	authGroup := e.Group("/auth")
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.POST("/verify-login-otp", h.authHandler.VerifyLoginOTP)
	authGroup.POST("/send-reset-otp", h.authHandler.SendResetOTP)
	authGroup.POST("/verify-reset-otp", h.authHandler.VerifyResetOTP)
	authGroup.POST("/reset-password", h.authHandler.ResetPassword)

	// Toggling the security code requires an authenticated caller
	protected := e.Group("/auth", middleware.JWTMiddleware(h.cfg))
	protected.PATCH("/security-code/:id", h.authHandler.ToggleSecurityCode)
}

package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/altostack/tenantdesk/internal/pkg/middleware"
	"github.com/altostack/tenantdesk/internal/pkg/models"
	"github.com/altostack/tenantdesk/services/admin/handler/http"
)

// Handler coordinates the HTTP handlers for the admin service
type Handler struct {
	adminHandler *http.AdminHandler
	cfg          *models.Config
}

// NewHandler creates and initializes the admin handler
func NewHandler(
	adminHandler *http.AdminHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		adminHandler: adminHandler,
		cfg:          cfg,
	}
}

// RegisterRoutes registers the administration routes. Everything here
// requires an authenticated caller; company provisioning additionally
// requires the super admin role.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("/admin", middleware.JWTMiddleware(h.cfg))

	gatewayGroup := protected.Group("/email-gateways")
	gatewayGroup.POST("", h.adminHandler.CreateEmailGateway)
	gatewayGroup.GET("", h.adminHandler.GetEmailGateway)
	gatewayGroup.PUT("/:id", h.adminHandler.UpdateEmailGateway)
	gatewayGroup.PATCH("/:id/status", h.adminHandler.SetGatewayStatus)
	gatewayGroup.DELETE("/:id", h.adminHandler.DeleteEmailGateway)

	templateGroup := protected.Group("/email-templates")
	templateGroup.POST("", h.adminHandler.CreateEmailTemplate)
	templateGroup.GET("", h.adminHandler.ListEmailTemplates)
	templateGroup.GET("/:type", h.adminHandler.GetEmailTemplateByType)
	templateGroup.PUT("/:id", h.adminHandler.UpdateEmailTemplate)
	templateGroup.DELETE("/:id", h.adminHandler.DeleteEmailTemplate)

	companyGroup := protected.Group("/companies", middleware.RequireRoles(models.RoleSuperAdmin))
	companyGroup.POST("", h.adminHandler.CreateCompany)
	companyGroup.GET("", h.adminHandler.ListCompanies)
	companyGroup.GET("/:id", h.adminHandler.GetCompany)
	companyGroup.PATCH("/:id/status", h.adminHandler.SetCompanyStatus)
}

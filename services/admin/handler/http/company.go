package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/altostack/tenantdesk/internal/pkg/constants"
	"github.com/altostack/tenantdesk/internal/pkg/models"
	"github.com/altostack/tenantdesk/internal/utils"
)

// CreateCompany handles company provisioning requests
func (h *AdminHandler) CreateCompany(c echo.Context) error {
	var req models.CreateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, constants.MsgInvalidInput)
	}

	company, err := h.adminUC.CreateCompany(c.Request().Context(), &req)
	if err != nil {
		return h.respondAdminError(c, "CreateCompany", err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, constants.MsgCreated, company)
}

// ListCompanies returns every company account
func (h *AdminHandler) ListCompanies(c echo.Context) error {
	companies, err := h.adminUC.ListCompanies(c.Request().Context())
	if err != nil {
		return h.respondAdminError(c, "ListCompanies", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.MsgRetrieved, companies)
}

// GetCompany returns a single company account
func (h *AdminHandler) GetCompany(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, constants.MsgInvalidInput)
	}

	company, err := h.adminUC.GetCompany(c.Request().Context(), id)
	if err != nil {
		return h.respondAdminError(c, "GetCompany", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.MsgRetrieved, company)
}

// SetCompanyStatus activates or deactivates a company account
func (h *AdminHandler) SetCompanyStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, constants.MsgInvalidInput)
	}

	var req models.SetStatusRequest
	if err := c.Bind(&req); err != nil || req.IsActive == nil {
		return utils.BadRequestResponse(c, constants.MsgInvalidInput)
	}

	if err := h.adminUC.SetCompanyStatus(c.Request().Context(), id, *req.IsActive); err != nil {
		return h.respondAdminError(c, "SetCompanyStatus", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.MsgUpdated, map[string]bool{
		"is_active": *req.IsActive,
	})
}

package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/altostack/tenantdesk/internal/pkg/constants"
	"github.com/altostack/tenantdesk/internal/pkg/models"
	"github.com/altostack/tenantdesk/internal/utils"
)

// CreateEmailGateway handles gateway provisioning requests
func (h *AdminHandler) CreateEmailGateway(c echo.Context) error {
	actorID, actorRole, err := actor(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, constants.MsgUnauthorized)
	}

	var req models.EmailGatewayRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, constants.MsgInvalidInput)
	}

	gw, err := h.adminUC.CreateEmailGateway(c.Request().Context(), actorID, actorRole, &req)
	if err != nil {
		return h.respondAdminError(c, "CreateEmailGateway", err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, constants.MsgCreated, gw)
}

// GetEmailGateway returns the caller's gateway
func (h *AdminHandler) GetEmailGateway(c echo.Context) error {
	actorID, actorRole, err := actor(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, constants.MsgUnauthorized)
	}

	gw, err := h.adminUC.GetEmailGateway(c.Request().Context(), actorID, actorRole)
	if err != nil {
		return h.respondAdminError(c, "GetEmailGateway", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.MsgRetrieved, gw)
}

// UpdateEmailGateway handles gateway reconfiguration requests
func (h *AdminHandler) UpdateEmailGateway(c echo.Context) error {
	actorID, actorRole, err := actor(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, constants.MsgUnauthorized)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, constants.MsgInvalidInput)
	}

	var req models.EmailGatewayRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, constants.MsgInvalidInput)
	}

	gw, err := h.adminUC.UpdateEmailGateway(c.Request().Context(), actorID, actorRole, id, &req)
	if err != nil {
		return h.respondAdminError(c, "UpdateEmailGateway", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.MsgUpdated, gw)
}

// SetGatewayStatus activates or deactivates the gateway
func (h *AdminHandler) SetGatewayStatus(c echo.Context) error {
	actorID, actorRole, err := actor(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, constants.MsgUnauthorized)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, constants.MsgInvalidInput)
	}

	var req models.SetStatusRequest
	if err := c.Bind(&req); err != nil || req.IsActive == nil {
		return utils.BadRequestResponse(c, constants.MsgInvalidInput)
	}

	if err := h.adminUC.SetGatewayStatus(c.Request().Context(), actorID, actorRole, id, *req.IsActive); err != nil {
		return h.respondAdminError(c, "SetGatewayStatus", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.MsgUpdated, map[string]bool{
		"is_active": *req.IsActive,
	})
}

// DeleteEmailGateway removes the gateway
func (h *AdminHandler) DeleteEmailGateway(c echo.Context) error {
	actorID, actorRole, err := actor(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, constants.MsgUnauthorized)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, constants.MsgInvalidInput)
	}

	if err := h.adminUC.DeleteEmailGateway(c.Request().Context(), actorID, actorRole, id); err != nil {
		return h.respondAdminError(c, "DeleteEmailGateway", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.MsgDeleted, nil)
}

package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/altostack/tenantdesk/internal/pkg/constants"
	"github.com/altostack/tenantdesk/internal/pkg/models"
	"github.com/altostack/tenantdesk/internal/utils"
)

// CreateEmailTemplate handles template creation requests
func (h *AdminHandler) CreateEmailTemplate(c echo.Context) error {
	actorID, actorRole, err := actor(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, constants.MsgUnauthorized)
	}

	var req models.EmailTemplateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, constants.MsgInvalidInput)
	}

	tpl, err := h.adminUC.CreateEmailTemplate(c.Request().Context(), actorID, actorRole, &req)
	if err != nil {
		return h.respondAdminError(c, "CreateEmailTemplate", err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, constants.MsgCreated, tpl)
}

// ListEmailTemplates returns every template in the caller's scope
func (h *AdminHandler) ListEmailTemplates(c echo.Context) error {
	actorID, actorRole, err := actor(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, constants.MsgUnauthorized)
	}

	templates, err := h.adminUC.ListEmailTemplates(c.Request().Context(), actorID, actorRole)
	if err != nil {
		return h.respondAdminError(c, "ListEmailTemplates", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.MsgRetrieved, templates)
}

// GetEmailTemplateByType returns the caller's template of the given type
func (h *AdminHandler) GetEmailTemplateByType(c echo.Context) error {
	actorID, actorRole, err := actor(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, constants.MsgUnauthorized)
	}

	templateType := models.TemplateType(c.Param("type"))

	tpl, err := h.adminUC.GetEmailTemplateByType(c.Request().Context(), actorID, actorRole, templateType)
	if err != nil {
		return h.respondAdminError(c, "GetEmailTemplateByType", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.MsgRetrieved, tpl)
}

// UpdateEmailTemplate handles template update requests
func (h *AdminHandler) UpdateEmailTemplate(c echo.Context) error {
	actorID, actorRole, err := actor(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, constants.MsgUnauthorized)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, constants.MsgInvalidInput)
	}

	var req models.EmailTemplateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, constants.MsgInvalidInput)
	}

	tpl, err := h.adminUC.UpdateEmailTemplate(c.Request().Context(), actorID, actorRole, id, &req)
	if err != nil {
		return h.respondAdminError(c, "UpdateEmailTemplate", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.MsgUpdated, tpl)
}

// DeleteEmailTemplate removes the template
func (h *AdminHandler) DeleteEmailTemplate(c echo.Context) error {
	actorID, actorRole, err := actor(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, constants.MsgUnauthorized)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, constants.MsgInvalidInput)
	}

	if err := h.adminUC.DeleteEmailTemplate(c.Request().Context(), actorID, actorRole, id); err != nil {
		return h.respondAdminError(c, "DeleteEmailTemplate", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.MsgDeleted, nil)
}

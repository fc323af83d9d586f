package http

import (
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/altostack/tenantdesk/internal/pkg/constants"
	"github.com/altostack/tenantdesk/internal/pkg/logger"
	"github.com/altostack/tenantdesk/internal/pkg/middleware"
	"github.com/altostack/tenantdesk/internal/pkg/models"
	"github.com/altostack/tenantdesk/internal/utils"
	"github.com/altostack/tenantdesk/services/admin"
)

// AdminHandler handles HTTP requests for administration operations
type AdminHandler struct {
	adminUC admin.AdminUC
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	adminUC admin.AdminUC,
) *AdminHandler {
	return &AdminHandler{
		adminUC: adminUC,
	}
}

// actor extracts the authenticated caller's identity from the context.
func actor(c echo.Context) (uuid.UUID, models.Role, error) {
	id, err := uuid.Parse(middleware.CurrentUserID(c))
	if err != nil {
		return uuid.Nil, "", err
	}
	return id, middleware.CurrentRole(c), nil
}

// respondAdminError maps domain errors onto HTTP statuses with stable
// user-facing messages.
func (h *AdminHandler) respondAdminError(c echo.Context, endpoint string, err error) error {
	switch {
	case errors.Is(err, models.ErrEmptyRequiredFields):
		return utils.BadRequestResponse(c, constants.MsgEmptyRequiredFields)
	case errors.Is(err, models.ErrInvalidEmail):
		return utils.BadRequestResponse(c, constants.MsgInvalidEmail)
	case errors.Is(err, models.ErrInvalidTemplateType):
		return utils.BadRequestResponse(c, constants.MsgInvalidTemplateType)
	case errors.Is(err, models.ErrSMTPCredentials):
		return utils.BadRequestResponse(c, constants.MsgInvalidSMTP)
	case errors.Is(err, models.ErrForbidden):
		return utils.ForbiddenResponse(c, constants.MsgUnauthorized)
	case errors.Is(err, models.ErrGatewayNotFound):
		return utils.NotFoundResponse(c, constants.MsgGatewayNotFound)
	case errors.Is(err, models.ErrTemplateNotFound):
		return utils.NotFoundResponse(c, constants.MsgTemplateNotFound)
	case errors.Is(err, models.ErrUserNotFound):
		return utils.NotFoundResponse(c, constants.MsgCompanyNotFound)
	case errors.Is(err, models.ErrGatewayAlreadyExists):
		return utils.ConflictResponse(c, constants.MsgGatewayAlreadyExists)
	case errors.Is(err, models.ErrTemplateAlreadyExists):
		return utils.ConflictResponse(c, constants.MsgTemplateAlreadyExists)
	case errors.Is(err, models.ErrUserAlreadyExists):
		return utils.ConflictResponse(c, constants.MsgDuplicateCompany)
	default:
		logger.Error("Unhandled admin error",
			logger.ErrorField(err),
			logger.String("endpoint", endpoint),
		)
		return utils.InternalServerErrorResponse(c, constants.MsgServerError)
	}
}

package usecase

import (
	"context"
	"errors"

	"github.com/altostack/tenantdesk/internal/pkg/logger"
	"github.com/altostack/tenantdesk/internal/pkg/models"
)

// Notify runs one orchestration pass for the target user. Each stage
// short-circuits into a tagged result; the caller decides user-facing
// behaviour from the status, so no raw error ever crosses this boundary
// as a panic.
func (u *NotificationUC) Notify(
	ctx context.Context,
	target *models.User,
	templateType models.TemplateType,
	extraData map[string]string,
) models.NotifyResult {
	identity, err := u.ResolveNotifyingIdentity(ctx, target)
	if err != nil {
		logger.Error("Failed to resolve notifying identity",
			logger.String("recipient", target.EmailAddress),
			logger.Err(err))
		return models.NotifyResult{Status: models.NotifyConfigurationError, Err: err}
	}

	gw, err := u.activeGateway(ctx, identity)
	if err != nil {
		logger.Warn("No usable email gateway for notifying identity",
			logger.String("identity", identity.EmailAddress),
			logger.Err(err))
		return models.NotifyResult{Status: models.NotifyGatewayUnavailable, Err: err}
	}

	subject, body, err := u.compileTemplate(ctx, identity, templateType, target, extraData)
	if err != nil {
		logger.Warn("Failed to compile email template",
			logger.String("template_type", string(templateType)),
			logger.String("identity", identity.EmailAddress),
			logger.Err(err))
		return models.NotifyResult{Status: models.NotifyTemplateError, Err: err}
	}
	if subject == "" || body == "" {
		return models.NotifyResult{Status: models.NotifyTemplateError, Err: models.ErrTemplateNotFound}
	}

	messageID, err := u.emailGW.Send(ctx, gw, subject, body, target.EmailAddress)
	if err != nil {
		if errors.Is(err, models.ErrSMTPCredentials) {
			logger.Error("SMTP rejected gateway credentials",
				logger.String("identity", identity.EmailAddress),
				logger.Err(err))
		} else {
			logger.Error("Failed to send notification email",
				logger.String("recipient", target.EmailAddress),
				logger.Err(err))
		}
		return models.NotifyResult{Status: models.NotifyTransportError, Err: err}
	}

	if pubErr := u.events.PublishNotificationSent(ctx, &models.NotificationEvent{
		TemplateType: templateType,
		Recipient:    target.EmailAddress,
		MessageID:    messageID,
	}); pubErr != nil {
		// Event publication is best effort; delivery already happened.
		logger.Warn("Failed to publish notification event", logger.Err(pubErr))
	}

	logger.Info("Notification delivered",
		logger.String("template_type", string(templateType)),
		logger.String("recipient", target.EmailAddress),
		logger.String("message_id", messageID))

	return models.NotifyResult{Status: models.NotifyDelivered, MessageID: messageID}
}

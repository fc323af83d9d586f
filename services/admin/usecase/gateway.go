package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/altostack/tenantdesk/internal/pkg/models"
	"github.com/altostack/tenantdesk/internal/utils"
)

// CreateEmailGateway provisions an outbound SMTP gateway for the caller's
// scope. The credentials are verified against the server before anything
// is stored; the scope holds at most one gateway.
func (u *AdminUC) CreateEmailGateway(ctx context.Context, actorID uuid.UUID, actorRole models.Role, req *models.EmailGatewayRequest) (*models.EmailGateway, error) {
	if err := validateGatewayRequest(req); err != nil {
		return nil, err
	}

	createdBySuperAdmin := actorRole == models.RoleSuperAdmin

	existing, err := u.repo.GetGatewayByOwner(ctx, actorID, createdBySuperAdmin)
	if err != nil && !errors.Is(err, models.ErrGatewayNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrGatewayAlreadyExists
	}

	if err := u.emailGW.VerifyCredentials(ctx, smtpConfigFromRequest(req)); err != nil {
		return nil, err
	}

	now := time.Now()
	gw := &models.EmailGateway{
		ID:                  uuid.New(),
		FromName:            req.FromName,
		ReplyToEmailAddress: req.ReplyToEmailAddress,
		SMTPServerHost:      req.SMTPServerHost,
		SMTPServerPort:      req.SMTPServerPort,
		SMTPSecurity:        req.SMTPSecurity,
		SMTPUsername:        req.SMTPUsername,
		SMTPPassword:        req.SMTPPassword,
		UserID:              &actorID,
		IsActive:            true,
		CreatedBySuperAdmin: createdBySuperAdmin,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := u.repo.CreateGateway(ctx, gw); err != nil {
		return nil, fmt.Errorf("failed to create gateway: %w", err)
	}

	return gw, nil
}

// GetEmailGateway returns the gateway for the caller's scope.
func (u *AdminUC) GetEmailGateway(ctx context.Context, actorID uuid.UUID, actorRole models.Role) (*models.EmailGateway, error) {
	return u.repo.GetGatewayByOwner(ctx, actorID, actorRole == models.RoleSuperAdmin)
}

// UpdateEmailGateway replaces the gateway configuration. New credentials
// are verified before the record changes.
func (u *AdminUC) UpdateEmailGateway(ctx context.Context, actorID uuid.UUID, actorRole models.Role, id uuid.UUID, req *models.EmailGatewayRequest) (*models.EmailGateway, error) {
	if err := validateGatewayRequest(req); err != nil {
		return nil, err
	}

	gw, err := u.ownedGateway(ctx, actorID, id)
	if err != nil {
		return nil, err
	}

	if err := u.emailGW.VerifyCredentials(ctx, smtpConfigFromRequest(req)); err != nil {
		return nil, err
	}

	gw.FromName = req.FromName
	gw.ReplyToEmailAddress = req.ReplyToEmailAddress
	gw.SMTPServerHost = req.SMTPServerHost
	gw.SMTPServerPort = req.SMTPServerPort
	gw.SMTPSecurity = req.SMTPSecurity
	gw.SMTPUsername = req.SMTPUsername
	gw.SMTPPassword = req.SMTPPassword
	gw.UpdatedAt = time.Now()

	if err := u.repo.UpdateGateway(ctx, gw); err != nil {
		return nil, fmt.Errorf("failed to update gateway: %w", err)
	}

	return gw, nil
}

// SetGatewayStatus activates or deactivates the gateway.
func (u *AdminUC) SetGatewayStatus(ctx context.Context, actorID uuid.UUID, actorRole models.Role, id uuid.UUID, active bool) error {
	if _, err := u.ownedGateway(ctx, actorID, id); err != nil {
		return err
	}
	return u.repo.SetGatewayStatus(ctx, id, active)
}

// DeleteEmailGateway removes the gateway.
func (u *AdminUC) DeleteEmailGateway(ctx context.Context, actorID uuid.UUID, actorRole models.Role, id uuid.UUID) error {
	if _, err := u.ownedGateway(ctx, actorID, id); err != nil {
		return err
	}
	return u.repo.DeleteGateway(ctx, id)
}

func (u *AdminUC) ownedGateway(ctx context.Context, actorID, id uuid.UUID) (*models.EmailGateway, error) {
	gw, err := u.repo.GetGatewayByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if gw.UserID == nil || *gw.UserID != actorID {
		return nil, models.ErrForbidden
	}
	return gw, nil
}

func validateGatewayRequest(req *models.EmailGatewayRequest) error {
	if req.FromName == "" || req.ReplyToEmailAddress == "" ||
		req.SMTPServerHost == "" || req.SMTPUsername == "" || req.SMTPPassword == "" {
		return models.ErrEmptyRequiredFields
	}
	if !utils.ValidEmail(req.ReplyToEmailAddress) {
		return models.ErrInvalidEmail
	}
	return nil
}

func smtpConfigFromRequest(req *models.EmailGatewayRequest) models.SMTPConfig {
	port := req.SMTPServerPort
	if port == 0 {
		port = 465
	}
	return models.SMTPConfig{
		Host:     req.SMTPServerHost,
		Port:     port,
		Security: req.SMTPSecurity,
		Username: req.SMTPUsername,
		Password: req.SMTPPassword,
		FromName: req.FromName,
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/altostack/tenantdesk/internal/pkg/logger"
	"github.com/altostack/tenantdesk/internal/pkg/models"
	"github.com/altostack/tenantdesk/internal/utils"
)

// CreateCompany provisions a company account with a generated initial
// password and mails it via the account-creation template. The raw
// password exists only for the duration of this call.
func (u *AdminUC) CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (*models.User, error) {
	if req.CompanyName == "" || req.EmailAddress == "" {
		return nil, models.ErrEmptyRequiredFields
	}
	if !utils.ValidEmail(req.EmailAddress) {
		return nil, models.ErrInvalidEmail
	}

	existing, err := u.repo.GetUserByEmail(ctx, req.EmailAddress)
	if err != nil && !errors.Is(err, models.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrUserAlreadyExists
	}

	rawPassword, err := utils.GenerateInitialPassword()
	if err != nil {
		return nil, fmt.Errorf("failed to generate password: %w", err)
	}

	hash, err := utils.HashPassword(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New(),
		FullName:     req.FullName,
		CompanyName:  req.CompanyName,
		EmailAddress: req.EmailAddress,
		Password:     hash,
		PhoneNo:      req.PhoneNo,
		City:         req.City,
		Role:         models.RoleCompany,
		PackageID:    req.PackageID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	// The account exists either way; a failed welcome mail is recoverable
	// through the password-reset flow.
	result := u.notifyUC.Notify(ctx, user, models.TemplateAccountCreation, map[string]string{
		"password": rawPassword,
	})
	if !result.Delivered() {
		logger.Warn("Account creation notification not delivered",
			logger.String("email", user.EmailAddress),
			logger.String("status", string(result.Status)),
			logger.Err(result.Err))
	}

	return user, nil
}

// ListCompanies returns every company account.
func (u *AdminUC) ListCompanies(ctx context.Context) ([]*models.User, error) {
	return u.repo.ListUsersByRole(ctx, models.RoleCompany)
}

// GetCompany returns a single company account.
func (u *AdminUC) GetCompany(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := u.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleCompany {
		return nil, models.ErrUserNotFound
	}
	return user, nil
}

// SetCompanyStatus activates or deactivates a company account.
func (u *AdminUC) SetCompanyStatus(ctx context.Context, id uuid.UUID, active bool) error {
	user, err := u.repo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Role != models.RoleCompany {
		return models.ErrUserNotFound
	}
	return u.repo.SetUserStatus(ctx, id, active)
}

package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/altostack/tenantdesk/internal/pkg/models"
	authmocks "github.com/altostack/tenantdesk/services/auth/mocks"
	notifmocks "github.com/altostack/tenantdesk/services/notification/mocks"
)

func TestToggleSecurityCode_SuperAdminTogglesCompany(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authmocks.NewMockAuthRepo(ctrl)
	mockNotify := notifmocks.NewMockNotificationUC(ctrl)
	mockGW := authmocks.NewMockAuthGW(ctrl)

	adminID := uuid.New()
	company := &models.User{ID: uuid.New(), Role: models.RoleCompany}

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), company.ID).
		Return(company, nil)
	mockRepo.EXPECT().
		UpdateSecurityCode(gomock.Any(), company.ID, true).
		Return(nil)

	uc := NewAuthUC(mockRepo, mockNotify, mockGW, testConfig())

	// Act
	enabled, err := uc.ToggleSecurityCode(context.Background(), adminID, models.RoleSuperAdmin, company.ID, true)

	// Assert
	assert.NoError(t, err)
	assert.True(t, enabled)
}

func TestToggleSecurityCode_CompanyCannotToggleCompany(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authmocks.NewMockAuthRepo(ctrl)
	mockNotify := notifmocks.NewMockNotificationUC(ctrl)
	mockGW := authmocks.NewMockAuthGW(ctrl)

	actorID := uuid.New()
	target := &models.User{ID: uuid.New(), Role: models.RoleCompany}

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), target.ID).
		Return(target, nil)

	uc := NewAuthUC(mockRepo, mockNotify, mockGW, testConfig())

	// Act
	_, err := uc.ToggleSecurityCode(context.Background(), actorID, models.RoleCompany, target.ID, false)

	// Assert
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestToggleSecurityCode_CompanyTogglesOwnEmployee(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authmocks.NewMockAuthRepo(ctrl)
	mockNotify := notifmocks.NewMockNotificationUC(ctrl)
	mockGW := authmocks.NewMockAuthGW(ctrl)

	companyID := uuid.New()
	employee := &models.User{ID: uuid.New(), Role: models.RoleEmployee, CompanyID: &companyID}

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), employee.ID).
		Return(employee, nil)
	mockRepo.EXPECT().
		UpdateSecurityCode(gomock.Any(), employee.ID, false).
		Return(nil)

	uc := NewAuthUC(mockRepo, mockNotify, mockGW, testConfig())

	// Act
	enabled, err := uc.ToggleSecurityCode(context.Background(), companyID, models.RoleCompany, employee.ID, false)

	// Assert
	assert.NoError(t, err)
	assert.False(t, enabled)
}

func TestToggleSecurityCode_ForeignEmployeeRejected(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authmocks.NewMockAuthRepo(ctrl)
	mockNotify := notifmocks.NewMockNotificationUC(ctrl)
	mockGW := authmocks.NewMockAuthGW(ctrl)

	actorID := uuid.New()
	otherCompanyID := uuid.New()
	employee := &models.User{ID: uuid.New(), Role: models.RoleEmployee, CompanyID: &otherCompanyID}

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), employee.ID).
		Return(employee, nil)

	uc := NewAuthUC(mockRepo, mockNotify, mockGW, testConfig())

	// Act
	_, err := uc.ToggleSecurityCode(context.Background(), actorID, models.RoleCompany, employee.ID, true)

	// Assert
	assert.ErrorIs(t, err, models.ErrNotCompanyMember)
}

func TestToggleSecurityCode_EmployeeCannotToggleEmployee(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authmocks.NewMockAuthRepo(ctrl)
	mockNotify := notifmocks.NewMockNotificationUC(ctrl)
	mockGW := authmocks.NewMockAuthGW(ctrl)

	companyID := uuid.New()
	employee := &models.User{ID: uuid.New(), Role: models.RoleEmployee, CompanyID: &companyID}

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), employee.ID).
		Return(employee, nil)

	uc := NewAuthUC(mockRepo, mockNotify, mockGW, testConfig())

	// Act
	_, err := uc.ToggleSecurityCode(context.Background(), uuid.New(), models.RoleEmployee, employee.ID, true)

	// Assert
	assert.ErrorIs(t, err, models.ErrForbidden)
}

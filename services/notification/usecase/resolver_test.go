package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/altostack/tenantdesk/internal/pkg/models"
	"github.com/altostack/tenantdesk/services/notification/mocks"
)

func TestResolveNotifyingIdentity_SuperAdminIsSelf(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotificationRepo(ctrl)
	mockEmail := mocks.NewMockEmailGW(ctrl)
	mockEvents := mocks.NewMockEventsGW(ctrl)

	admin := &models.User{ID: uuid.New(), Role: models.RoleSuperAdmin}

	uc := NewNotificationUC(mockRepo, mockEmail, mockEvents)

	// Act
	identity, err := uc.ResolveNotifyingIdentity(context.Background(), admin)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, admin, identity)
}

func TestResolveNotifyingIdentity_CompanyGoesThroughSuperAdmin(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotificationRepo(ctrl)
	mockEmail := mocks.NewMockEmailGW(ctrl)
	mockEvents := mocks.NewMockEventsGW(ctrl)

	admin := &models.User{ID: uuid.New(), Role: models.RoleSuperAdmin}
	company := &models.User{ID: uuid.New(), Role: models.RoleCompany}

	mockRepo.EXPECT().
		GetSuperAdmin(gomock.Any()).
		Return(admin, nil)

	uc := NewNotificationUC(mockRepo, mockEmail, mockEvents)

	// Act
	identity, err := uc.ResolveNotifyingIdentity(context.Background(), company)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, admin, identity)
}

func TestResolveNotifyingIdentity_EmployeeGoesThroughCompany(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotificationRepo(ctrl)
	mockEmail := mocks.NewMockEmailGW(ctrl)
	mockEvents := mocks.NewMockEventsGW(ctrl)

	companyID := uuid.New()
	company := &models.User{ID: companyID, Role: models.RoleCompany}
	employee := &models.User{ID: uuid.New(), Role: models.RoleEmployee, CompanyID: &companyID}

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), companyID).
		Return(company, nil)

	uc := NewNotificationUC(mockRepo, mockEmail, mockEvents)

	// Act
	identity, err := uc.ResolveNotifyingIdentity(context.Background(), employee)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, company, identity)
}

func TestResolveNotifyingIdentity_OrphanedEmployee(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotificationRepo(ctrl)
	mockEmail := mocks.NewMockEmailGW(ctrl)
	mockEvents := mocks.NewMockEventsGW(ctrl)

	employee := &models.User{ID: uuid.New(), Role: models.RoleEmployee}

	uc := NewNotificationUC(mockRepo, mockEmail, mockEvents)

	// Act
	identity, err := uc.ResolveNotifyingIdentity(context.Background(), employee)

	// Assert
	assert.ErrorIs(t, err, models.ErrNoGatewayUser)
	assert.Nil(t, identity)
}

func TestResolveNotifyingIdentity_NoSuperAdmin(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotificationRepo(ctrl)
	mockEmail := mocks.NewMockEmailGW(ctrl)
	mockEvents := mocks.NewMockEventsGW(ctrl)

	company := &models.User{ID: uuid.New(), Role: models.RoleCompany}

	mockRepo.EXPECT().
		GetSuperAdmin(gomock.Any()).
		Return(nil, models.ErrUserNotFound)

	uc := NewNotificationUC(mockRepo, mockEmail, mockEvents)

	// Act
	identity, err := uc.ResolveNotifyingIdentity(context.Background(), company)

	// Assert
	assert.ErrorIs(t, err, models.ErrNoGatewayUser)
	assert.Nil(t, identity)
}

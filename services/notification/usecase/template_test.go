package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/altostack/tenantdesk/internal/pkg/models"
	"github.com/altostack/tenantdesk/services/notification/mocks"
)

func TestCompileTemplate_ProfileSubstitution(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotificationRepo(ctrl)
	uc := NewNotificationUC(mockRepo, mocks.NewMockEmailGW(ctrl), mocks.NewMockEventsGW(ctrl))

	identity := &models.User{ID: uuid.New(), Role: models.RoleSuperAdmin}
	recipient := &models.User{
		ID:           uuid.New(),
		FullName:     "Jane Operator",
		EmailAddress: "jane@example.com",
		PhoneNo:      "555-0100",
		City:         "Jakarta",
		Role:         models.RoleSuperAdmin,
	}

	mockRepo.EXPECT().
		GetTemplateByOwnerAndType(gomock.Any(), identity.ID, models.TemplateAccountCreation).
		Return(&models.EmailTemplate{
			Subject: "Welcome",
			Content: "Hi {{fullName}} ({{email}}), phone {{phoneNo}}, city {{city}}.",
		}, nil)

	// Act
	subject, body, err := uc.compileTemplate(context.Background(), identity, models.TemplateAccountCreation, recipient, nil)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "Welcome", subject)
	assert.Equal(t, "Hi Jane Operator (jane@example.com), phone 555-0100, city Jakarta.", body)
}

func TestCompileTemplate_UnknownPlaceholderRendersEmpty(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotificationRepo(ctrl)
	uc := NewNotificationUC(mockRepo, mocks.NewMockEmailGW(ctrl), mocks.NewMockEventsGW(ctrl))

	identity := &models.User{ID: uuid.New(), Role: models.RoleSuperAdmin}
	recipient := &models.User{ID: uuid.New(), FullName: "Jane", Role: models.RoleSuperAdmin}

	mockRepo.EXPECT().
		GetTemplateByOwnerAndType(gomock.Any(), identity.ID, models.TemplateAccountCreation).
		Return(&models.EmailTemplate{
			Subject: "Welcome",
			Content: "Hello {{fullName}}{{doesNotExist}}!",
		}, nil)

	// Act
	_, body, err := uc.compileTemplate(context.Background(), identity, models.TemplateAccountCreation, recipient, nil)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "Hello Jane!", body)
}

func TestCompileTemplate_ExtraDataWinsOverProfile(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotificationRepo(ctrl)
	uc := NewNotificationUC(mockRepo, mocks.NewMockEmailGW(ctrl), mocks.NewMockEventsGW(ctrl))

	identity := &models.User{ID: uuid.New(), Role: models.RoleSuperAdmin}
	recipient := &models.User{ID: uuid.New(), FullName: "Jane", Role: models.RoleSuperAdmin}

	mockRepo.EXPECT().
		GetTemplateByOwnerAndType(gomock.Any(), identity.ID, models.TemplateLoginAuthorization).
		Return(&models.EmailTemplate{
			Subject: "Code",
			Content: "{{fullName}}: {{otp}}",
		}, nil)

	// Act
	_, body, err := uc.compileTemplate(context.Background(), identity, models.TemplateLoginAuthorization, recipient, map[string]string{
		"fullName": "Overridden",
		"otp":      "5042",
	})

	// Assert: caller-supplied keys are merged last
	assert.NoError(t, err)
	assert.Equal(t, "Overridden: 5042", body)
}

func TestBuildTemplateData_EmployeeCompanyAndPackage(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotificationRepo(ctrl)
	uc := NewNotificationUC(mockRepo, mocks.NewMockEmailGW(ctrl), mocks.NewMockEventsGW(ctrl))

	companyID := uuid.New()
	packageID := uuid.New()
	recipient := &models.User{
		ID:        uuid.New(),
		FullName:  "Worker",
		Role:      models.RoleEmployee,
		CompanyID: &companyID,
		PackageID: &packageID,
	}

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), companyID).
		Return(&models.User{ID: companyID, CompanyName: "Acme Corp", Role: models.RoleCompany}, nil)
	mockRepo.EXPECT().
		GetPackageName(gomock.Any(), packageID).
		Return("Gold", nil)

	// Act
	data := uc.buildTemplateData(context.Background(), recipient, nil)

	// Assert
	assert.Equal(t, "Acme Corp", data["companyName"])
	assert.Equal(t, "Gold", data["package"])
	assert.Equal(t, time.Now().Format("1/2/2006"), data["currentDate"])
}

func TestBuildTemplateData_PackageLookupFailureIsSoft(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotificationRepo(ctrl)
	uc := NewNotificationUC(mockRepo, mocks.NewMockEmailGW(ctrl), mocks.NewMockEventsGW(ctrl))

	packageID := uuid.New()
	recipient := &models.User{
		ID:          uuid.New(),
		CompanyName: "Acme Corp",
		Role:        models.RoleCompany,
		PackageID:   &packageID,
	}

	mockRepo.EXPECT().
		GetPackageName(gomock.Any(), packageID).
		Return("", assert.AnError)

	// Act
	data := uc.buildTemplateData(context.Background(), recipient, nil)

	// Assert: render proceeds with an empty package name
	assert.Equal(t, "", data["package"])
	// Companies with no contact name fall back to the company name
	assert.Equal(t, "Acme Corp", data["fullName"])
}

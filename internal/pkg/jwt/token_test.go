package jwt

import (
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altostack/tenantdesk/internal/pkg/models"
)

func tokenConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key",
			Expiration: 60,
			Issuer:     "tenantdesk-test",
		},
	}
}

func tokenUser() *models.User {
	return &models.User{
		ID:           uuid.New(),
		FullName:     "Jane Operator",
		EmailAddress: "jane@example.com",
		PhoneNo:      "555-0100",
		Role:         models.RoleCompany,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	// Arrange
	cfg := tokenConfig()
	user := tokenUser()

	// Act
	tokenString, expiresAt, err := GenerateToken(user, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	claims, err := ValidateToken(tokenString, cfg.JWT.Secret)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), (*claims)["user_id"])
	assert.Equal(t, "Jane Operator", (*claims)["full_name"])
	assert.Equal(t, "jane@example.com", (*claims)["email_address"])
	assert.Equal(t, string(models.RoleCompany), (*claims)["role"])
	assert.Equal(t, "tenantdesk-test", (*claims)["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	// Arrange
	cfg := tokenConfig()

	tokenString, _, err := GenerateToken(tokenUser(), cfg)
	require.NoError(t, err)

	// Act
	claims, err := ValidateToken(tokenString, "a-different-secret")

	// Assert
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Malformed(t *testing.T) {
	claims, err := ValidateToken("not.a.token", "test-secret-key")

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestUserIDFromClaims(t *testing.T) {
	id := uuid.New()

	got, ok := UserIDFromClaims(jwtlib.MapClaims{"user_id": id.String()})

	assert.True(t, ok)
	assert.Equal(t, id, got)
}

func TestUserIDFromClaims_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		claims jwtlib.MapClaims
	}{
		{"missing claim", jwtlib.MapClaims{}},
		{"wrong type", jwtlib.MapClaims{"user_id": 42}},
		{"not a uuid", jwtlib.MapClaims{"user_id": "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := UserIDFromClaims(tt.claims)

			assert.False(t, ok)
			assert.Equal(t, uuid.Nil, got)
		})
	}
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	// Arrange
	password := "Sup3r$ecret"

	// Act
	hash, err := HashPassword(password)

	// Assert
	require.NoError(t, err)
	assert.NotEqual(t, password, hash)
	assert.True(t, ComparePassword(hash, password))
	assert.False(t, ComparePassword(hash, "Sup3r$ecret2"))
}

func TestComparePassword_GarbageHash(t *testing.T) {
	assert.False(t, ComparePassword("not-a-bcrypt-hash", "anything"))
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"meets all rules", "Abcdef1!", true},
		{"too short", "Ab1!xyz", false},
		{"no uppercase", "abcdef1!", false},
		{"no lowercase", "ABCDEF1!", false},
		{"no digit", "Abcdefg!", false},
		{"no special character", "Abcdefg1", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePasswordStrength(tt.password))
		})
	}
}

func TestGenerateInitialPassword(t *testing.T) {
	// Act
	password, err := GenerateInitialPassword()

	// Assert: provisioned passwords always satisfy the policy users
	// are held to on reset
	require.NoError(t, err)
	assert.Len(t, password, 12)
	assert.True(t, ValidatePasswordStrength(password))
}

func TestGenerateInitialPassword_Unique(t *testing.T) {
	first, err := GenerateInitialPassword()
	require.NoError(t, err)

	second, err := GenerateInitialPassword()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

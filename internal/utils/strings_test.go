package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"plain address", "ops@acme.example.com", true},
		{"plus tag", "jane+tenantdesk@example.co.id", true},
		{"missing at", "ops.acme.example.com", false},
		{"missing domain", "ops@", false},
		{"missing tld", "ops@acme", false},
		{"embedded space", "ops @acme.example.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidEmail(tt.email))
		})
	}
}

func TestGenerateOTPCode_Format(t *testing.T) {
	// The code format is load-bearing: verification compares the stored
	// string byte for byte.
	for i := 0; i < 100; i++ {
		code, err := GenerateOTPCode()
		require.NoError(t, err)

		assert.Len(t, code, 4)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "unexpected rune %q in %q", r, code)
		}
	}
}

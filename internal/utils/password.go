package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// ComparePassword checks a plaintext password against a bcrypt hash.
// bcrypt's comparison is constant time over the hash.
func ComparePassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength enforces the registration password policy:
// at least 8 characters including uppercase, lowercase, digit and
// special character.
func ValidatePasswordStrength(password string) bool {
	if len(password) < 8 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	return upper && lower && digit && special
}

const passwordCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%&*"

// GenerateInitialPassword produces a random password for provisioned
// accounts. Regenerated until it passes the strength policy so the
// account holder can keep it.
func GenerateInitialPassword() (string, error) {
	for {
		buf := make([]byte, 12)
		for i := range buf {
			n, err := rand.Int(rand.Reader, big.NewInt(int64(len(passwordCharset))))
			if err != nil {
				return "", fmt.Errorf("failed to generate password: %w", err)
			}
			buf[i] = passwordCharset[n.Int64()]
		}
		if ValidatePasswordStrength(string(buf)) {
			return string(buf), nil
		}
	}
}

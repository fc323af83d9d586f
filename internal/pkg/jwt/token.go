package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/altostack/tenantdesk/internal/pkg/models"
)

// GenerateToken generates a signed session token for the given user.
// The claims carry the profile fields the original login contract
// exposes: user id, full name, email, phone and role.
func GenerateToken(user *models.User, cfg *models.Config) (string, int64, error) {
	// Set token expiration time
	expirationTime := time.Now().Add(time.Duration(cfg.JWT.Expiration) * time.Minute)
	expiresAt := expirationTime.Unix()

	// Create claims
	claims := jwt.MapClaims{
		"user_id":       user.ID,
		"full_name":     user.DisplayName(),
		"email_address": user.EmailAddress,
		"phone_no":      user.PhoneNo,
		"role":          string(user.Role),
		"exp":           expiresAt,
		"iss":           cfg.JWT.Issuer,
	}

	// Create token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// Sign token with configured secret
	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a session token and returns the claims
func ValidateToken(tokenString string, secret string) (*jwt.MapClaims, error) {
	// Parse token
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, err
}

// UserIDFromClaims extracts the user id claim, if present and valid.
func UserIDFromClaims(claims jwt.MapClaims) (uuid.UUID, bool) {
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

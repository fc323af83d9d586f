package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/altostack/tenantdesk/internal/pkg/models"
)

// JWTMiddleware validates bearer tokens and copies the identity claims
// into the echo context for handlers.
func JWTMiddleware(cfg *models.Config) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			authHeader := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return
			}
			tokenString := authHeader[len("Bearer "):]
			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				return []byte(cfg.JWT.Secret), nil
			})
			if err != nil || !token.Valid {
				return
			}
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if userID, exists := claims["user_id"]; exists {
					c.Set("user_id", userID)
				}
				if role, exists := claims["role"]; exists {
					c.Set("role", role)
				}
			}
		},
	})
}

// RequireRoles rejects requests whose token role is not in the allowed
// set. Must run after JWTMiddleware.
func RequireRoles(roles ...models.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[string(r)] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to perform this action.")
			}
			return next(c)
		}
	}
}

// CurrentRole returns the role claim stored by JWTMiddleware.
func CurrentRole(c echo.Context) models.Role {
	role, _ := c.Get("role").(string)
	return models.Role(role)
}

// CurrentUserID returns the user id claim stored by JWTMiddleware.
func CurrentUserID(c echo.Context) string {
	id, _ := c.Get("user_id").(string)
	return id
}

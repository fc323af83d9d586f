package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/altostack/tenantdesk/internal/pkg/logger"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack
// trace and returns a generic 500 instead of dropping the connection.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}

					zapLogger.Error("Recovered from panic",
						logger.Err(err),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("stack", string(debug.Stack())),
					)

					if !c.Response().Committed {
						_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
							"success": false,
							"error":   "Internal server error",
							"code":    http.StatusInternalServerError,
						})
					}
				}
			}()

			return next(c)
		}
	}
}

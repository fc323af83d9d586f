package health

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// RegisterHealthEndpoints mounts liveness and readiness endpoints.
func RegisterHealthEndpoints(e *echo.Echo, serviceName string) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	version := os.Getenv("APP_VERSION")
	if version == "" {
		version = "development"
	}

	handler := func(c echo.Context) error {
		return c.JSON(http.StatusOK, BuildInfo{
			Version:     version,
			ServiceName: serviceName,
			GoVersion:   runtime.Version(),
			Hostname:    hostname,
			ServerTime:  time.Now(),
		})
	}

	e.GET("/health", handler)
	e.GET("/health/live", handler)
	e.GET("/health/ready", handler)
}

package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/altostack/tenantdesk/internal/pkg/config"
	"github.com/altostack/tenantdesk/internal/pkg/database"
	"github.com/altostack/tenantdesk/internal/pkg/health"
	"github.com/altostack/tenantdesk/internal/pkg/logger"
	"github.com/altostack/tenantdesk/internal/pkg/middleware"
	natspkg "github.com/altostack/tenantdesk/internal/pkg/nats"
	"github.com/altostack/tenantdesk/internal/pkg/server"
	adminHandler "github.com/altostack/tenantdesk/services/admin/handler"
	adminHTTP "github.com/altostack/tenantdesk/services/admin/handler/http"
	adminRepository "github.com/altostack/tenantdesk/services/admin/repository"
	adminUsecase "github.com/altostack/tenantdesk/services/admin/usecase"
	authGateway "github.com/altostack/tenantdesk/services/auth/gateway"
	authHandler "github.com/altostack/tenantdesk/services/auth/handler"
	authHTTP "github.com/altostack/tenantdesk/services/auth/handler/http"
	authRepository "github.com/altostack/tenantdesk/services/auth/repository"
	authUsecase "github.com/altostack/tenantdesk/services/auth/usecase"
	notifGateway "github.com/altostack/tenantdesk/services/notification/gateway"
	notifRepository "github.com/altostack/tenantdesk/services/notification/repository"
	notifUsecase "github.com/altostack/tenantdesk/services/notification/usecase"
)

func main() {
	appName := "tenantdesk"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/tenantdesk.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Notification pipeline
	notifRepo := notifRepository.NewNotificationRepo(postgresClient.GetDB())
	smtpGW := notifGateway.NewSMTPGateway(configs.SMTP)
	eventsGW := notifGateway.NewEventsGW(natsClient)
	notifUC := notifUsecase.NewNotificationUC(notifRepo, smtpGW, eventsGW)

	// Auth service
	authRepo := authRepository.NewAuthRepo(postgresClient.GetDB(), redisClient)
	authGW := authGateway.NewAuthGW(natsClient)
	authUC := authUsecase.NewAuthUC(authRepo, notifUC, authGW, configs)

	// Admin service
	adminRepo := adminRepository.NewAdminRepo(postgresClient.GetDB())
	adminUC := adminUsecase.NewAdminUC(adminRepo, smtpGW, notifUC)

	// HTTP handlers
	authH := authHandler.NewHandler(authHTTP.NewAuthHandler(authUC), configs)
	adminH := adminHandler.NewHandler(adminHTTP.NewAdminHandler(adminUC), configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	authH.RegisterRoutes(e)
	adminH.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}

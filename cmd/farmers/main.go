package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/agrosmart/agrofarm/internal/pkg/config"
	"github.com/agrosmart/agrofarm/internal/pkg/database"
	"github.com/agrosmart/agrofarm/internal/pkg/health"
	"github.com/agrosmart/agrofarm/internal/pkg/logger"
	"github.com/agrosmart/agrofarm/internal/pkg/middleware"
	"github.com/agrosmart/agrofarm/internal/pkg/server"
	"github.com/agrosmart/agrofarm/services/farmers/gateway"
	"github.com/agrosmart/agrofarm/services/farmers/handler"
	httpHandler "github.com/agrosmart/agrofarm/services/farmers/handler/http"
	"github.com/agrosmart/agrofarm/services/farmers/repository"
	"github.com/agrosmart/agrofarm/services/farmers/usecase"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func main() {
	appName := "farmers-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/farmers.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Fail fast on missing required configuration
	if configs.JWT.Secret == "" {
		zapLogger.Error("Missing environment variable: JWT_SECRET")
		os.Exit(1)
	}
	if configs.Weather.APIKey == "" {
		zapLogger.Error("Missing environment variable: OPENWEATHER_API_KEY")
		os.Exit(1)
	}
	if configs.Database.Host == "" {
		zapLogger.Error("Missing environment variable: DB_HOST")
		os.Exit(1)
	}

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

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize repository
	farmerRepo := repository.NewFarmerRepo(configs, postgresClient.GetDB(), redisClient)

	// Initialize weather gateway
	weatherGW := gateway.NewWeatherGW(configs.Weather)

	// Initialize usecase
	farmerUC := usecase.NewFarmerUC(farmerRepo, farmerRepo, weatherGW, configs)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(farmerUC)
	farmerHandler := httpHandler.NewFarmerHandler(farmerUC)
	recommendationHandler := httpHandler.NewRecommendationHandler(farmerUC)

	Handler := handler.NewHandler(authHandler, farmerHandler, recommendationHandler, configs)

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	Handler.RegisterRoutes(e)

	// Register component cleanup
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown failed", zap.Error(err))
	}
}

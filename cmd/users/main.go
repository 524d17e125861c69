package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/piresc/bloodlink/internal/pkg/config"
	"github.com/piresc/bloodlink/internal/pkg/database"
	"github.com/piresc/bloodlink/internal/pkg/health"
	"github.com/piresc/bloodlink/internal/pkg/logger"
	"github.com/piresc/bloodlink/internal/pkg/metrics"
	"github.com/piresc/bloodlink/internal/pkg/middleware"
	nrpkg "github.com/piresc/bloodlink/internal/pkg/newrelic"
	"github.com/piresc/bloodlink/internal/pkg/retry"
	"github.com/piresc/bloodlink/internal/pkg/server"
	"github.com/piresc/bloodlink/services/users/handler"
	"github.com/piresc/bloodlink/services/users/repository"
	"github.com/piresc/bloodlink/services/users/usecase"
)

func main() {
	appName := "users-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/users.env")
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	ctx := context.Background()
	startup := retry.New(retry.StartupConfig(), zapLogger)

	// Initialize PostgreSQL and apply the schema
	var postgresClient *database.PostgresClient
	err = startup.Execute(ctx, func(ctx context.Context) error {
		client, err := database.NewPostgresClient(configs.Database)
		if err != nil {
			return err
		}
		if err := client.Migrate(ctx); err != nil {
			client.Close()
			return err
		}
		postgresClient = client
		return nil
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client
	var redisClient *database.RedisClient
	err = startup.Execute(ctx, func(ctx context.Context) error {
		redisClient, err = database.NewRedisClient(configs.Redis)
		return err
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	collector, err := metrics.NewCollector(nil)
	if err != nil {
		zapLogger.Fatal("Failed to register metrics", logger.Err(err))
	}

	userRepo := repository.NewUserRepository(configs, postgresClient.GetDB(), redisClient)
	userUC := usecase.NewUserUC(configs, userRepo)
	userHandler := handler.NewHandler(userUC, redisClient, configs)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(nrpkg.EchoMiddleware(nrApp))
	e.Use(collector.EchoMiddleware())

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	health.RegisterHealthEndpoints(e, appName, healthService)

	if configs.Metrics.Enabled {
		e.GET(configs.Metrics.Path, echo.WrapHandler(collector.Handler()))
	}

	userHandler.RegisterRoutes(e)

	components := server.NewShutdownManager(zapLogger)
	components.Register("logger", func(context.Context) error { return zapLogger.Close() })
	components.Register("postgres", func(context.Context) error { return postgresClient.Close() })
	components.Register("redis", func(context.Context) error { return redisClient.Close() })

	if err := server.NewGracefulServer(e, zapLogger, configs.Server, components).Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}

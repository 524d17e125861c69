package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/piresc/bloodlink/internal/pkg/config"
	"github.com/piresc/bloodlink/internal/pkg/database"
	"github.com/piresc/bloodlink/internal/pkg/events"
	"github.com/piresc/bloodlink/internal/pkg/health"
	"github.com/piresc/bloodlink/internal/pkg/logger"
	"github.com/piresc/bloodlink/internal/pkg/metrics"
	"github.com/piresc/bloodlink/internal/pkg/middleware"
	nrpkg "github.com/piresc/bloodlink/internal/pkg/newrelic"
	"github.com/piresc/bloodlink/internal/pkg/retry"
	"github.com/piresc/bloodlink/internal/pkg/server"
	"github.com/piresc/bloodlink/services/requests/gateway"
	"github.com/piresc/bloodlink/services/requests/handler"
	"github.com/piresc/bloodlink/services/requests/repository"
	"github.com/piresc/bloodlink/services/requests/usecase"
)

func main() {
	appName := "requests-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/requests.env")
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

	// Initialize event bus
	var bus events.Bus
	err = startup.Execute(ctx, func(ctx context.Context) error {
		bus, err = events.NewBus(configs)
		return err
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to event broker",
			logger.String("broker", configs.Events.Broker), logger.Err(err))
	}

	collector, err := metrics.NewCollector(nil)
	if err != nil {
		zapLogger.Fatal("Failed to register metrics", logger.Err(err))
	}

	requestRepo := repository.NewRequestRepository(configs, postgresClient.GetDB(), redisClient)
	requestGW := gateway.NewRequestGW(bus)
	requestUC := usecase.NewRequestUC(configs, requestRepo, requestGW, collector)
	requestHandler := handler.NewHandler(requestUC, configs)

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
	healthService.AddChecker("nats", health.NewNATSHealthChecker(events.NATSClient(bus)))
	health.RegisterHealthEndpoints(e, appName, healthService)

	if configs.Metrics.Enabled {
		e.GET(configs.Metrics.Path, echo.WrapHandler(collector.Handler()))
	}

	requestHandler.RegisterRoutes(e)

	components := server.NewShutdownManager(zapLogger)
	components.Register("logger", func(context.Context) error { return zapLogger.Close() })
	components.Register("postgres", func(context.Context) error { return postgresClient.Close() })
	components.Register("redis", func(context.Context) error { return redisClient.Close() })
	components.Register("events", func(context.Context) error {
		bus.Close()
		return nil
	})

	if err := server.NewGracefulServer(e, zapLogger, configs.Server, components).Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}

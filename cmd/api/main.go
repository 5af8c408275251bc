package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirhossein-jamali/timespan-processor/internal/domain/entity"
	durationUseCase "github.com/amirhossein-jamali/timespan-processor/internal/domain/usecase/duration"
	spanUseCase "github.com/amirhossein-jamali/timespan-processor/internal/domain/usecase/span"

	"github.com/amirhossein-jamali/timespan-processor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/timespan-processor/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/timespan-processor/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/timespan-processor/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/timespan-processor/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/timespan-processor/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/timespan-processor/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() {
		_ = appLogger.Flush()
	}()

	// Setup database configuration
	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	spanRepo := repository.NewSpanRepository(dbManager.DB(), tp, appLogger)

	// Initialize use cases
	method, _ := entity.ResolveNormalizationMethod(cfg.Arithmetic.NormalizationMethod)
	durationUseCaseImpl := durationUseCase.NewDurationUseCase(method, tp, appLogger)
	spanUseCaseImpl := spanUseCase.NewSpanUseCase(spanRepo, tp, appLogger)

	// Initialize API handlers
	durationHandler := handler.NewDurationHandler(durationUseCaseImpl, cfg.Arithmetic.DefaultFormat, cfg.Arithmetic.RoundingPlaces, appLogger)
	spanHandler := handler.NewSpanHandler(spanUseCaseImpl, cfg.Arithmetic.DefaultFormat, cfg.Arithmetic.RoundingPlaces, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, durationHandler, spanHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		if cfg.Environment == config.Production && os.Getenv("TS_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or TS_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.host")
		}
	}
	if cfg.Database.Username == "" {
		if cfg.Environment == config.Production && os.Getenv("TS_DB_USERNAME") == "" {
			missingConfigs = append(missingConfigs, "database.username (or TS_DB_USERNAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.username")
		}
	}
	if cfg.Database.Database == "" {
		if cfg.Environment == config.Production && os.Getenv("TS_DB_NAME") == "" {
			missingConfigs = append(missingConfigs, "database.database (or TS_DB_NAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.database")
		}
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if _, err := entity.ResolveNormalizationMethod(cfg.Arithmetic.NormalizationMethod); err != nil {
		return fmt.Errorf("invalid arithmetic.normalizationMethod: %s, must be one of: standard, minimum, maximum",
			cfg.Arithmetic.NormalizationMethod)
	}
	if _, err := entity.ResolveFormat(cfg.Arithmetic.DefaultFormat); err != nil {
		return fmt.Errorf("invalid arithmetic.defaultFormat: %s", cfg.Arithmetic.DefaultFormat)
	}
	if cfg.Arithmetic.RoundingPlaces < 0 {
		return fmt.Errorf("invalid arithmetic.roundingPlaces: %d, must be non-negative",
			cfg.Arithmetic.RoundingPlaces)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/cmd"
	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres/deliveryaddressrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("Storefront stopped: %v", err)
	}
}

// run owns every resource it opens, so its deferred cleanups run on both
// startup failures and shutdown.
func run() error {
	configs, err := getConfigs()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))

	gormDB, err := openDatabase(configs)
	if err != nil {
		return err
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		defer sqlDB.Close()
	}

	store, closeStore, err := cmd.NewSelectionStore(configs, logger)
	if err != nil {
		return fmt.Errorf("failed to create delivery form store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error("Failed to close delivery form store", "error", err)
		}
	}()

	app, err := cmd.NewCompositionRoot(configs, gormDB, store, logger)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := jobManager.StartAll(); err != nil {
		return fmt.Errorf("failed to start jobs: %w", err)
	}
	defer jobManager.StopAll()

	return serve(&app, configs.Port(), logger)
}

func getConfigs() (cmd.Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cmd.Config{}, fmt.Errorf("error loading .env file: %w", err)
	}

	config := cmd.Config{
		HTTPPort:           os.Getenv("HTTP_PORT"),
		LogLevel:           os.Getenv("LOG_LEVEL"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		DBHost:             os.Getenv("DB_HOST"),
		DBPort:             os.Getenv("DB_PORT"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		DBSslMode:          os.Getenv("DB_SSLMODE"),
		GeoAPIBaseURL:      os.Getenv("GEO_API_BASE_URL"),
		GeoAPITimeout:      os.Getenv("GEO_API_TIMEOUT"),
		ProvinceCacheTTL:   os.Getenv("PROVINCE_CACHE_TTL"),
		SelectionStore:     os.Getenv("SELECTION_STORE"),
		SelectionTTL:       os.Getenv("SELECTION_TTL"),
		FormSweepSchedule:  os.Getenv("FORM_SWEEP_SCHEDULE"),
		RedisURL:           os.Getenv("REDIS_URL"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		RedisKeyPrefix:     os.Getenv("REDIS_KEY_PREFIX"),
		DefaultLocaleValue: os.Getenv("DEFAULT_LOCALE"),
	}
	return config, nil
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn, err := configs.DSN()
	if err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := gormDB.AutoMigrate(&deliveryaddressrepo.DeliveryAddressDTO{}); err != nil {
		if sqlDB, dbErr := gormDB.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return gormDB, nil
}

// serve blocks until SIGINT or SIGTERM, or until the listener fails.
func serve(app *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e, err := httpin.NewRouter(app.CreateServer(), logger)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("HTTP server stopped: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	logger.Info("HTTP server stopped")
	return nil
}

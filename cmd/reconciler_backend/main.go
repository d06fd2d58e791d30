package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/ledger_reconciler/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_reconciler/internal/core/services"
	"github.com/SscSPs/ledger_reconciler/internal/handlers"
	"github.com/SscSPs/ledger_reconciler/internal/middleware"
	"github.com/SscSPs/ledger_reconciler/internal/platform/config"
	"github.com/SscSPs/ledger_reconciler/internal/repositories/database/pgsql"
	"github.com/SscSPs/ledger_reconciler/internal/repositories/database/sqlite"
	"github.com/SscSPs/ledger_reconciler/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Ledger Reconciler API
// @version 1.0
// @description Records transactions and payments and allocates payments to pending transactions, oldest first.

// @host localhost:8080
// @BasePath /api
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: middleware.ParseLogLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	repos, closeStore, err := openStore(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize ledger store", slog.String("driver", cfg.StoreDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	serviceContainer := services.NewServiceContainer(repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store", cfg.StoreDriver))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		closeStore()
		os.Exit(1)
	}
}

// openStore connects the configured store, applies its migrations and returns
// the repositories with a close function.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repositories.RepositoryProvider, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverSQLite:
		db, err := database.NewSQLiteDB(cfg.SQLitePath)
		if err != nil {
			return repositories.RepositoryProvider{}, nil, err
		}
		logger.Info("SQLite database opened.", slog.String("path", cfg.SQLitePath))

		logger.Info("Running database migrations...")
		if err := database.MigrateSQLite(db, logger); err != nil {
			db.Close()
			return repositories.RepositoryProvider{}, nil, err
		}
		closeFn := func() {
			if err := db.Close(); err != nil {
				logger.Error("Error closing SQLite database", slog.String("error", err.Error()))
			}
		}
		return sqlite.NewRepositoryProvider(db), closeFn, nil

	default:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return repositories.RepositoryProvider{}, nil, err
		}
		logger.Info("Database connection pool established.")

		logger.Info("Running database migrations...")
		if err := database.MigratePostgres(cfg.DatabaseURL, logger); err != nil {
			database.ClosePgxPool(dbPool)
			return repositories.RepositoryProvider{}, nil, err
		}
		return pgsql.NewRepositoryProvider(dbPool, cfg.LedgerLockKey), func() { database.ClosePgxPool(dbPool) }, nil
	}
}

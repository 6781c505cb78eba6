package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	coreport "github.com/kondo-pos/pos-backend/internal/domain/port/core"
	"github.com/kondo-pos/pos-backend/internal/domain/usecase/catalog"
	"github.com/kondo-pos/pos-backend/internal/domain/usecase/register"
	"github.com/kondo-pos/pos-backend/internal/domain/usecase/sales"
	"github.com/kondo-pos/pos-backend/internal/infrastructure/adapter/api/handler"
	"github.com/kondo-pos/pos-backend/internal/infrastructure/adapter/api/routes"
	"github.com/kondo-pos/pos-backend/internal/infrastructure/adapter/database"
	"github.com/kondo-pos/pos-backend/internal/infrastructure/adapter/database/migration"
	"github.com/kondo-pos/pos-backend/internal/infrastructure/adapter/logger"
	timeProvider "github.com/kondo-pos/pos-backend/internal/infrastructure/adapter/time"
	"github.com/kondo-pos/pos-backend/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "1.0.0"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Failed to load timezone: %v", err)
	}
	tp := timeProvider.NewRealTimeProvider(loc)

	if err := run(cfg, appLogger, tp); err != nil {
		appLogger.Error("Server stopped with error", map[string]any{
			"error": err.Error(),
		})
		_ = appLogger.Flush()
		os.Exit(1)
	}
	_ = appLogger.Flush()
}

func run(cfg *config.Config, appLogger coreport.Logger, tp coreport.TimeProvider) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbManager := database.NewManager(database.FromAppConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Warn("Failed to close database", map[string]any{"error": err.Error()})
		}
	}()

	if err := dbManager.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	catalogUseCase := catalog.NewCatalogUseCase(dbManager.CreateUnitOfWork(), dbManager.ProductRepository(), tp, appLogger)
	registerUseCase := register.NewRegisterUseCase(
		dbManager.CreateUnitOfWork(),
		dbManager.TransactionRepository(),
		tp,
		appLogger,
		register.Defaults{
			OperatorCode: cfg.POS.DefaultOperatorCode,
			StoreCode:    cfg.POS.DefaultStoreCode,
			TerminalCode: cfg.POS.DefaultTerminalCode,
		},
	)
	salesUseCase := sales.NewSalesUseCase(dbManager.SalesRepository(), tp, appLogger)

	if cfg.Seed.SampleProducts {
		created, err := migration.SeedSampleProducts(ctx, catalogUseCase)
		if err != nil {
			appLogger.Error("Failed to seed sample products", map[string]any{
				"error": err.Error(),
			})
		} else {
			appLogger.Info("Sample products seeded", map[string]any{"created": created})
		}
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, cfg.Server.AllowedOrigins, cfg.POS.RequestTimeout)
	routes.SetupRoutes(router, routes.Handlers{
		Health:      handler.NewHealthHandler(dbManager, tp, appLogger, version),
		Product:     handler.NewProductHandler(catalogUseCase, appLogger),
		Transaction: handler.NewTransactionHandler(registerUseCase, tp, appLogger),
		Statistics:  handler.NewStatisticsHandler(salesUseCase, tp, appLogger),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":     server.Addr,
			"env":      cfg.Environment,
			"timezone": tp.Location().String(),
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}

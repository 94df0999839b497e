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
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/storefront/backend/config"
	httpDelivery "github.com/storefront/backend/internal/delivery/http"
	"github.com/storefront/backend/internal/domain"
	"github.com/storefront/backend/internal/infrastructure/cache"
	"github.com/storefront/backend/internal/infrastructure/feed"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/metrics"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"github.com/storefront/backend/internal/usecase"
)

func main() {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	defer zl.Sync()

	if err := run(cfg, zl); err != nil {
		zl.Fatal("Server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zl.Info("Starting storefront backend",
		zap.String("version", httpDelivery.Version),
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("cache", cfg.Cache.Type),
	)

	db, err := persistence.NewDatabase(persistence.DatabaseConfig{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		AutoMigrate:     cfg.Database.AutoMigrate,
	}, zl)
	if err != nil {
		return err
	}
	defer db.Close()

	feedCache, err := cache.New(ctx, cfg.Cache.Type, cfg.Cache.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}
	if feedCache != nil {
		defer feedCache.Close()
	}

	m := metrics.New()

	vendorClient := feed.NewClient(feed.ClientConfig{
		BrazilianURL:      cfg.Vendors.BrazilianURL,
		EuropeanURL:       cfg.Vendors.EuropeanURL,
		MaxAttempts:       cfg.Vendors.MaxAttempts,
		RequestsPerSecond: cfg.Vendors.RequestsPerSecond,
	}, zl)

	// keep the interface nil when caching is off
	var cacheRepo domain.CacheRepository
	if feedCache != nil {
		cacheRepo = feedCache
	}

	catalogService := usecase.NewCatalogService(
		vendorClient,
		cacheRepo,
		usecase.NewStandardizationService(zl, m),
		zl,
		m,
		usecase.CatalogServiceConfig{
			FetchTimeout: cfg.Vendors.FetchTimeout,
			CacheTTL:     cfg.Cache.TTL,
		},
	)

	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)

	handler := httpDelivery.NewHandler(
		catalogService,
		usecase.NewCustomerService(customerRepo, zl),
		usecase.NewOrderService(orderRepo, customerRepo, zl),
		zl,
	)
	router := httpDelivery.SetupRouter(cfg, handler, zl, m)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zl.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

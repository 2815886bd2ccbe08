package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/storelinehq/storeline-backend/api/routes"
	"github.com/storelinehq/storeline-backend/internal/batches"
	cartsvc "github.com/storelinehq/storeline-backend/internal/cart"
	"github.com/storelinehq/storeline-backend/internal/lookups"
	"github.com/storelinehq/storeline-backend/internal/users"
	"github.com/storelinehq/storeline-backend/pkg/config"
	"github.com/storelinehq/storeline-backend/pkg/db"
	"github.com/storelinehq/storeline-backend/pkg/logger"
	"github.com/storelinehq/storeline-backend/pkg/metrics"
	"github.com/storelinehq/storeline-backend/pkg/migrate"
	"github.com/storelinehq/storeline-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	// Redis is optional; without it the lookup cache is simply disabled.
	var redisClient *redis.Client
	if cfg.Redis.URL != "" || cfg.Redis.Address != "" {
		redisClient, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(context.Background(), "redis not configured, lookup caching disabled")
	}

	cartService, err := cartsvc.NewService(cartsvc.ServiceParams{
		CartRepo: cartsvc.NewRepository(dbClient.DB()),
		ItemRepo: cartsvc.NewItemRepository(dbClient.DB()),
		Batches:  batches.NewRepository(dbClient.DB()),
		Users:    users.NewRepository(dbClient.DB()),
		Tx:       dbClient,
		Logger:   logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	var lookupCache lookups.Cache
	if redisClient != nil {
		lookupCache = redisClient
	}
	lookupService, err := lookups.NewService(lookups.ServiceParams{
		Repo:     lookups.NewRepository(dbClient.DB()),
		Cache:    lookupCache,
		CacheTTL: cfg.Lookups.CacheTTL,
		Logger:   logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create lookup service", err)
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)
	metricsHandler := promhttp.Handler()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, httpMetrics, metricsHandler, cartService, lookupService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

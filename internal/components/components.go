package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/elpatrico11/incident-app-sub000/internal/api"
	"github.com/elpatrico11/incident-app-sub000/internal/config"
	"github.com/elpatrico11/incident-app-sub000/internal/geofence"
	"github.com/elpatrico11/incident-app-sub000/internal/redis"
	"github.com/elpatrico11/incident-app-sub000/internal/service"
	"github.com/elpatrico11/incident-app-sub000/internal/storage/postgres"
	"github.com/elpatrico11/incident-app-sub000/internal/workers"
	"github.com/elpatrico11/incident-app-sub000/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	WebhookQ   *redis.WebhookQueue
	Sender     *service.WebhookSender
	Refresher  *workers.BoundaryRefresher
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	boundaryCache := redis.NewBoundaryCache(redisClient)
	boundary, err := loadBoundary(ctx, cfg, boundaryCache, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load boundary: %w", err)
	}
	validator := geofence.NewValidator(boundary, logger)

	webhookQueue := redis.NewWebhookQueue(redisClient.Client, "webhooks:status_changes")

	var queue service.WebhookQueue
	if !cfg.Webhook.Disabled {
		queue = webhookQueue
	}
	dispatcher := service.NewDispatcher(storage.Notifications, queue, logger)

	adminSvc := service.NewAdminIncidentService(storage.Incidents, dispatcher, logger)
	publicSvc := service.NewPublicIncidentService(storage.Incidents, validator, logger)
	notifSvc := service.NewNotificationService(storage.Notifications)
	statsSvc := service.NewStatsService(storage.Incidents)

	srv := service.NewService(adminSvc, publicSvc, notifSvc, statsSvc)

	httpServer := api.NewServer(cfg, logger, srv)
	logger.Info("Initialized server")

	comps := &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		WebhookQ:   webhookQueue,
		Refresher:  workers.NewBoundaryRefresher(cfg.Boundary.Path, boundaryCache, cfg.Boundary.CacheTTL, logger),
	}
	if !cfg.Webhook.Disabled {
		comps.Sender = service.NewWebhookSender(logger, cfg.Webhook, webhookQueue)
	}
	return comps, nil
}

// loadBoundary prefers the shared redis copy and falls back to the
// file, warming the cache for the next instance.
func loadBoundary(ctx context.Context, cfg *config.Config, cache *redis.BoundaryCache, logger *slog.Logger) (*geofence.Boundary, error) {
	data, err := cache.Get(ctx)
	if err != nil {
		logger.Warn("boundary cache read failed, falling back to file", slog.Any("error", err))
	}
	if data == nil {
		data, err = os.ReadFile(cfg.Boundary.Path)
		if err != nil {
			return nil, err
		}
		if err := cache.Set(ctx, data, cfg.Boundary.CacheTTL); err != nil {
			logger.Warn("boundary cache write failed", slog.Any("error", err))
		}
	}

	boundary, err := geofence.ParseBoundary(data)
	if err != nil {
		return nil, err
	}
	logger.Info("Boundary loaded", slog.String("name", boundary.Name()))
	return boundary, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}

package postgres

import (
	"context"
	"embed"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/elpatrico11/incident-app-sub000/internal/config"
	"github.com/elpatrico11/incident-app-sub000/pkg/e"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

type Postgres struct {
	Pool          *pgxpool.Pool
	Incidents     IncidentRepository
	Notifications NotificationRepository
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("Failed to parse pgx config", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	poolCfg.MaxConns = cfg.Postgres.MaxConns
	poolCfg.MinConns = cfg.Postgres.MinConns
	poolCfg.MaxConnLifetime = cfg.Postgres.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("Failed to create pgx pool", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Error("Failed to ping Postgres database", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("Connected to Postgres successfully")

	if err := Migrate(pool, logger); err != nil {
		pool.Close()
		return nil, err
	}

	pg := &Postgres{
		Pool:          pool,
		Incidents:     NewIncidentRepo(pool, logger),
		Notifications: NewNotificationRepo(pool, logger),
	}

	logger.Info("Postgres repositories created")
	return pg, nil
}

func Migrate(pool *pgxpool.Pool, logger *slog.Logger) error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return e.Wrap("storage.pg.Migrate.SetDialect", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.Up(db, "migrations"); err != nil {
		logger.Error("Migrations failed", slog.String("error", err.Error()))
		return e.Wrap("storage.pg.Migrate.Up", err)
	}
	logger.Info("Migrations applied")
	return nil
}

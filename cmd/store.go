package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/road_obstacles/internal/config"
	"github.com/shenikar/road_obstacles/internal/repository"
	"github.com/shenikar/road_obstacles/internal/service"
	"github.com/shenikar/road_obstacles/pkg/postgres"
	redisclient "github.com/shenikar/road_obstacles/pkg/redis"
	"github.com/shenikar/road_obstacles/pkg/sqlite"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// openStore открывает хранилище выбранного драйвера; close освобождает соединения
func openStore(ctx context.Context, cfg *config.Config, log *logrus.Logger) (service.KeyValueStore, func(), error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		log.Warn("Memory storage selected, data will not survive a restart")
		return repository.NewMemoryStore(), func() {}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		store, err := repository.NewSQLiteStore(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return store, func() { _ = db.Close() }, nil

	case config.DriverRedis:
		client, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRedisStore(client, cfg.RedisKeyPrefix), func() { _ = client.Close() }, nil

	case config.DriverPostgres:
		// Запуск миграций
		if err := runMigrations(cfg, log); err != nil {
			return nil, nil, err
		}
		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPostgresStore(dbpool), dbpool.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
		migrationURL = strings.Replace(migrationURL, "postgresql://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

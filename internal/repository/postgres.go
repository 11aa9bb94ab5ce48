package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/road_obstacles/internal/service"
)

// PostgresStore хранит пары ключ-значение в таблице kv_store (см. migrations)
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) service.KeyValueStore {
	return &PostgresStore{db: db}
}

// Get возвращает значение по ключу
func (r *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1;`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get key %q: %w", key, err)
	}
	return value, true, nil
}

// Set вставляет или заменяет значение
func (r *PostgresStore) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_store (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW();
	`
	if _, err := r.db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set key %q: %w", key, err)
	}
	return nil
}

// Remove удаляет ключ
func (r *PostgresStore) Remove(ctx context.Context, key string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM kv_store WHERE key = $1;`, key); err != nil {
		return fmt.Errorf("failed to remove key %q: %w", key, err)
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shenikar/road_obstacles/internal/service"
)

// SQLiteStore хранит пары ключ-значение в локальном файле SQLite
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore создает таблицу kv_store, если ее еще нет
func NewSQLiteStore(ctx context.Context, db *sql.DB) (service.KeyValueStore, error) {
	query := `
		CREATE TABLE IF NOT EXISTS kv_store (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		);
	`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return nil, fmt.Errorf("failed to init kv_store schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Get возвращает значение по ключу
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?;`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get key %q: %w", key, err)
	}
	return value, true, nil
}

// Set записывает значение целиком одной операцией
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_store (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now');
	`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set key %q: %w", key, err)
	}
	return nil
}

// Remove удаляет ключ; отсутствие ключа не ошибка
func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?;`, key); err != nil {
		return fmt.Errorf("failed to remove key %q: %w", key, err)
	}
	return nil
}

//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/shenikar/road_obstacles/pkg/postgres"
	redisclient "github.com/shenikar/road_obstacles/pkg/redis"
	"github.com/stretchr/testify/require"
)

// Запуск: go test -tags integration ./internal/repository/...
// Требуются TEST_REDIS_ADDR и/или TEST_DATABASE_URL (с примененными миграциями).

func TestRedisStore_Contract(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}
	ctx := context.Background()

	client, err := redisclient.NewRedisClient(ctx, addr, os.Getenv("TEST_REDIS_PASSWORD"), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	prefix := "road_obstacles_test:" + t.Name() + ":"
	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, prefix+"*").Result()
		if len(keys) > 0 {
			_ = client.Del(ctx, keys...).Err()
		}
	})

	runStoreContract(t, NewRedisStore(client, prefix))
}

func TestPostgresStore_Contract(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}
	ctx := context.Background()

	pool, err := postgres.NewPostgresDB(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE kv_store;`)
	require.NoError(t, err)

	runStoreContract(t, NewPostgresStore(pool))
}

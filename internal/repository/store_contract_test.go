package repository

import (
	"context"
	"testing"

	"github.com/shenikar/road_obstacles/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract проверяет поведение, общее для всех реализаций KeyValueStore
func runStoreContract(t *testing.T, store service.KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key is absent", func(t *testing.T) {
		value, found, err := store.Get(ctx, "never-written")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, value)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, service.ObstaclesKey, `[{"id":"1"}]`))

		value, found, err := store.Get(ctx, service.ObstaclesKey)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `[{"id":"1"}]`, value)
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, service.ObstaclesKey, `[]`))

		value, found, err := store.Get(ctx, service.ObstaclesKey)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `[]`, value)
	})

	t.Run("empty value is distinct from absent", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "empty", ""))

		_, found, err := store.Get(ctx, "empty")
		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, service.ContactsKey, `[]`))
		require.NoError(t, store.Remove(ctx, service.ContactsKey))

		_, found, err := store.Get(ctx, service.ContactsKey)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("remove missing key", func(t *testing.T) {
		assert.NoError(t, store.Remove(ctx, "never-written"))
	})

	t.Run("unicode round trip", func(t *testing.T) {
		value := `[{"name":"Préfecture","role":"Traversée voies ferrées"}]`
		require.NoError(t, store.Set(ctx, "unicode", value))

		got, _, err := store.Get(ctx, "unicode")
		require.NoError(t, err)
		assert.Equal(t, value, got)
	})
}

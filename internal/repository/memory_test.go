package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_Contract(t *testing.T) {
	runStoreContract(t, NewMemoryStore())
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	store := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := store.Get(ctx, "obstacles")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Set(ctx, "obstacles", "[]"), context.Canceled)
	assert.ErrorIs(t, store.Remove(ctx, "obstacles"), context.Canceled)
}

package mutex_test

import (
	"context"
	"testing"
	"time"

	"github.com/pwnedgod/hexa/adapter/util/mutex"
	hexasync "github.com/pwnedgod/hexa/adapter/util/mutex/sync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiMutexForgetsUnusedKeys(t *testing.T) {
	ctx := context.Background()
	mm := mutex.NewMultiMutex(hexasync.NewMutexFactory())

	require.NoError(t, mm.Lock(ctx, "a"))
	require.NoError(t, mm.Lock(ctx, "b"))
	assert.Equal(t, 2, mm.Size())

	require.NoError(t, mm.Unlock(ctx, "a"))
	assert.Equal(t, 1, mm.Size())

	require.NoError(t, mm.Unlock(ctx, "b"))
	assert.Equal(t, 0, mm.Size())
}

func TestMultiMutexFailedLockDropsReference(t *testing.T) {
	mm := mutex.NewMultiMutex(hexasync.NewMutexFactory())

	require.NoError(t, mm.Lock(context.Background(), "a"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, mm.Lock(ctx, "a"), context.DeadlineExceeded)

	require.NoError(t, mm.Unlock(context.Background(), "a"))
	assert.Equal(t, 0, mm.Size())
}

func TestMultiMutexUnlockUnknownKeyPanics(t *testing.T) {
	mm := mutex.NewMultiMutex(hexasync.NewMutexFactory())

	assert.Panics(t, func() { _ = mm.Unlock(context.Background(), "missing") })
}

package memory

import (
	"context"
	"time"

	"github.com/karlseguin/ccache/v2"
	"github.com/pwnedgod/hexa/adapter"
	"github.com/pwnedgod/hexa/adapter/util/mutex"
	"github.com/pwnedgod/hexa/adapter/util/mutex/sync"
)

// Values without a TTL are kept for this long.
const noExpiry = 100 * 365 * 24 * time.Hour

type memoryAdapter struct {
	cache  *ccache.Cache
	locker mutex.Locker
}

func NewAdapter() adapter.Adapter {
	return NewAdapterWithConfiguration(ccache.Configure())
}

func NewAdapterWithConfiguration(cacheCfg *ccache.Configuration) adapter.Adapter {
	return &memoryAdapter{
		cache:  ccache.New(cacheCfg),
		locker: sync.NewLocker(),
	}
}

func (a *memoryAdapter) Exists(ctx context.Context, key string) (bool, error) {
	item := a.cache.Get(key)
	return item != nil && !item.Expired(), nil
}

func (a *memoryAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	item := a.cache.Get(key)
	if item == nil || item.Expired() {
		return nil, adapter.ErrNotFound
	}

	// Only Set writes to the cache, so the cast holds.
	value := item.Value().([]byte)

	return value, nil
}

func (a *memoryAdapter) Set(ctx context.Context, key string, ttl time.Duration, data []byte) error {
	if ttl <= 0 {
		ttl = noExpiry
	}

	// Copy so later writes to data do not leak into the cache.
	a.cache.Set(key, append([]byte(nil), data...), ttl)
	return nil
}

func (a *memoryAdapter) Delete(ctx context.Context, key string) error {
	a.cache.Delete(key)
	return nil
}

func (a *memoryAdapter) ObtainLock(ctx context.Context, key string) (adapter.Lock, error) {
	return a.locker.Obtain(ctx, key)
}

package goredis

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	rsgoredis "github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/pwnedgod/hexa/adapter"
	"github.com/pwnedgod/hexa/adapter/util/mutex"
	"github.com/pwnedgod/hexa/adapter/util/mutex/redsync"
	"github.com/redis/go-redis/v9"
)

type (
	goredisAdapter struct {
		client redis.UniversalClient
		locker mutex.Locker
	}

	Option func(*goredisAdapter)
)

// WithLocker replaces the default redsync locker.
func WithLocker(locker mutex.Locker) Option {
	return func(a *goredisAdapter) {
		a.locker = locker
	}
}

func NewAdapter(client redis.UniversalClient, opts ...Option) adapter.Adapter {
	a := &goredisAdapter{
		client: client,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.locker == nil {
		a.locker = redsync.NewLocker(rsgoredis.NewPool(client))
	}
	return a
}

func (a goredisAdapter) Exists(ctx context.Context, key string) (bool, error) {
	count, err := a.client.Exists(ctx, key).Uint64()
	if err != nil {
		return false, err
	}

	return count != 0, nil
}

func (a goredisAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := a.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = adapter.ErrNotFound
		}

		return nil, err
	}

	return data, nil
}

func (a goredisAdapter) Set(ctx context.Context, key string, ttl time.Duration, data []byte) error {
	if ttl < 0 {
		ttl = 0
	}
	return a.client.Set(ctx, key, data, ttl).Err()
}

func (a goredisAdapter) Delete(ctx context.Context, key string) error {
	return a.client.Del(ctx, key).Err()
}

func (a goredisAdapter) ObtainLock(ctx context.Context, key string) (adapter.Lock, error) {
	return a.locker.Obtain(ctx, key)
}

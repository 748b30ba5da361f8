package redislock

import (
	"context"
	"time"

	"github.com/bsm/redislock"
	"github.com/cockroachdb/errors"
	"github.com/pwnedgod/hexa/adapter"
	"github.com/pwnedgod/hexa/adapter/util/mutex"
)

type redislockLocker struct {
	lc      *redislock.Client
	lockTtl time.Duration
}

// NewLocker returns a single-instance Redis Locker. Locks expire after lockTtl
// unless released first.
func NewLocker(client redislock.RedisClient, lockTtl time.Duration) mutex.Locker {
	return &redislockLocker{
		lc:      redislock.New(client),
		lockTtl: lockTtl,
	}
}

func (lr redislockLocker) Obtain(ctx context.Context, key string) (mutex.Lock, error) {
	lock, err := lr.lc.Obtain(ctx, key, lr.lockTtl, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.ExponentialBackoff(16*time.Millisecond, 4096*time.Millisecond), 32),
	})
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "lock %s", key), adapter.ErrFailedLock)
	}
	return &redislockLock{lock: lock}, nil
}

type redislockLock struct {
	lock *redislock.Lock
}

func (l redislockLock) Release(ctx context.Context) error {
	err := l.lock.Release(ctx)
	if err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
		return adapter.ErrFailedUnlock
	}
	return nil
}

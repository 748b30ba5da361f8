package redsync

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis"
	"github.com/pwnedgod/hexa/adapter"
	"github.com/pwnedgod/hexa/adapter/util/mutex"
)

type redsyncLocker struct {
	rs      *redsync.Redsync
	options []redsync.Option
}

// NewLocker returns a Locker running the Redlock algorithm over pools.
func NewLocker(pools ...redis.Pool) mutex.Locker {
	return NewLockerWithOptions(pools, nil)
}

func NewLockerWithOptions(pools []redis.Pool, options []redsync.Option) mutex.Locker {
	return &redsyncLocker{
		rs:      redsync.New(pools...),
		options: options,
	}
}

func (lr redsyncLocker) Obtain(ctx context.Context, key string) (mutex.Lock, error) {
	mutex := lr.rs.NewMutex(key, lr.options...)

	if err := mutex.LockContext(ctx); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "lock %s", key), adapter.ErrFailedLock)
	}

	return &redsyncLock{mutex: mutex}, nil
}

type redsyncLock struct {
	mutex *redsync.Mutex
}

func (l redsyncLock) Release(ctx context.Context) error {
	ok, err := l.mutex.UnlockContext(ctx)
	if err != nil || !ok {
		return adapter.ErrFailedUnlock
	}
	return nil
}

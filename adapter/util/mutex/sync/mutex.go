package sync

import (
	"context"

	"github.com/pwnedgod/hexa/adapter/util/mutex"
)

type syncMutexFactory struct {
}

func NewMutexFactory() mutex.MutexFactory {
	return &syncMutexFactory{}
}

func (m syncMutexFactory) Make(key string) mutex.Mutex {
	return &syncMutex{
		ch: make(chan struct{}, 1),
	}
}

// syncMutex is a channel so that waiting can be abandoned with the context.
type syncMutex struct {
	ch chan struct{}
}

func (m syncMutex) Lock(ctx context.Context) error {
	select {
	case m.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m syncMutex) Unlock(ctx context.Context) error {
	select {
	case <-m.ch:
	default:
		panic("unlock of unlocked mutex")
	}
	return nil
}

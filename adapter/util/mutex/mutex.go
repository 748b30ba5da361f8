package mutex

import "context"

// MutexFactory makes the per-key Mutex that MultiMutex hands out for a storage lock key.
type MutexFactory interface {
	Make(key string) Mutex
}

// Mutex is a lock whose waiting can be abandoned through ctx.
type Mutex interface {
	Lock(ctx context.Context) error
	Unlock(ctx context.Context) error
}

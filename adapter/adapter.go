// Package adapter is the key/value storage behind store. Values are opaque bytes,
// usually records marshalled by a codec.Codec.
package adapter

import (
	"context"
	"time"
)

type Adapter interface {
	Exists(ctx context.Context, key string) (bool, error)

	// Get returns ErrNotFound for missing or expired keys.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores data under key. A zero ttl keeps the value until deleted.
	Set(ctx context.Context, key string, ttl time.Duration, data []byte) error

	Delete(ctx context.Context, key string) error

	// ObtainLock blocks until the lock for key is held or ctx is done.
	ObtainLock(ctx context.Context, key string) (Lock, error)
}

type Lock interface {
	Release(ctx context.Context) error
}

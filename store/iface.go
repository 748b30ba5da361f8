package store

import (
	"context"
	"crypto/sha1"
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

type (
	// LoaderFunc produces a record when it is not in storage yet.
	LoaderFunc[T any] func(ctx context.Context) (LoadResult[T], error)

	// UpdateFunc mutates v in place. found is false when the key held no record,
	// in which case v points to the zero value.
	UpdateFunc[T any] func(v *T, found bool) error

	PreLoadErrorHandlerFunc[T any] func(ctx context.Context, args PreLoadErrorHandlerArgs[T]) (T, error)

	PostLoadErrorHandlerFunc[T any] func(ctx context.Context, args PostLoadErrorHandlerArgs[T]) (T, error)

	PreLoadErrorHandlerArgs[T any] struct {
		Key         any
		Loader      LoaderFunc[T]
		ErrCategory string
		Err         error
	}

	PostLoadErrorHandlerArgs[T any] struct {
		Key         any
		Loader      LoaderFunc[T]
		Result      LoadResult[T]
		ErrCategory string
		Err         error
	}

	LoadResult[T any] struct {
		// Whether to store the returned record.
		Cache bool

		// The TTL of the stored record. If set to zero, defaults to the store settings.
		TTL time.Duration

		Value T
	}

	Keyable interface {
		Key() (string, error)
	}

	KeyableMap map[string]any
)

func (m KeyableMap) Key() (string, error) {
	hash := sha1.New()
	enc := msgpack.NewEncoder(hash)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(map[string]any(m)); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}

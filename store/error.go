package store

import (
	"fmt"

	"github.com/pwnedgod/hexa/adapter"
)

var ErrNotFound = adapter.ErrNotFound

const (
	categoryKey    = "key"
	categoryGet    = "get"
	categoryDecode = "decode"
	categoryLock   = "lock"
	categoryStore  = "store"
)

type (
	baseError struct {
		category    string
		message     string
		previousErr error
	}

	preLoadError struct {
		baseError
	}

	postLoadError[T any] struct {
		baseError
		result LoadResult[T]
	}
)

func newPreLoadError(category string, message string, previousErr error) *preLoadError {
	return &preLoadError{
		baseError: baseError{
			category:    category,
			message:     message,
			previousErr: previousErr,
		},
	}
}

func newPostLoadError[T any](category string, message string, result LoadResult[T], previousErr error) *postLoadError[T] {
	return &postLoadError[T]{
		baseError: baseError{
			category:    category,
			message:     message,
			previousErr: previousErr,
		},
		result: result,
	}
}

func (e baseError) Error() string {
	return fmt.Sprintf("%s (%s)", e.message, e.previousErr.Error())
}

func (e baseError) Unwrap() error {
	return e.previousErr
}

// decodeError marks a stored value the codec could not read.
type decodeError struct {
	key string
	err error
}

func (e *decodeError) Error() string {
	return fmt.Sprintf("decode %s: %s", e.key, e.err.Error())
}

func (e *decodeError) Unwrap() error {
	return e.err
}

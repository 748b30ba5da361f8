package adapter

import "github.com/cockroachdb/errors"

var (
	ErrNotFound     = errors.New("hexa: not found")
	ErrFailedLock   = errors.New("hexa: failed lock")
	ErrFailedUnlock = errors.New("hexa: failed unlock")
)

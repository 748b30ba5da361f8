// Package store keeps records in an adapter.Adapter, marshalled with a codec.Codec.
// Records are typically structs with astext or asnum fields.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pwnedgod/hexa/adapter"
	"github.com/pwnedgod/hexa/codec"
	"github.com/pwnedgod/hexa/logger"
)

const (
	TTLDefault = time.Duration(10) * time.Minute

	keySeparator = "###"
	lockPrefix   = "lock" + keySeparator
)

type Store[T any] struct {
	adapter adapter.Adapter
	codec   codec.Codec
	logger  logger.Logger

	name               string
	ttl                time.Duration
	preLoadErrHandler  PreLoadErrorHandlerFunc[T]
	postLoadErrHandler PostLoadErrorHandlerFunc[T]
}

// New creates a store whose keys are all prefixed by name.
func New[T any](adapter adapter.Adapter, codec codec.Codec, logger logger.Logger, name string) *Store[T] {
	return &Store[T]{
		adapter:            adapter,
		codec:              codec,
		logger:             logger,
		name:               name,
		ttl:                TTLDefault,
		preLoadErrHandler:  DefaultPreLoadErrorHandler[T],
		postLoadErrHandler: DefaultPostLoadErrorHandler[T],
	}
}

func (s *Store[T]) Name() string {
	return s.name
}

// SetTTL sets the default TTL of stored records. Zero keeps records until deleted.
func (s *Store[T]) SetTTL(ttl time.Duration) *Store[T] {
	if ttl < 0 {
		ttl = 0
	}
	s.ttl = ttl
	return s
}

// Set error handler for errors thrown before the loader runs (key, get, decode and lock).
//
// Value and error returned by the handler will be forwarded as a return value for Load.
func (s *Store[T]) SetPreLoadErrorHandler(errHandler PreLoadErrorHandlerFunc[T]) *Store[T] {
	if errHandler == nil {
		panic("nil handler")
	}

	s.preLoadErrHandler = errHandler
	return s
}

// Set error handler for errors thrown after the loader runs (store).
//
// Value and error returned by the handler will be forwarded as a return value for Load.
func (s *Store[T]) SetPostLoadErrorHandler(errHandler PostLoadErrorHandlerFunc[T]) *Store[T] {
	if errHandler == nil {
		panic("nil handler")
	}

	s.postLoadErrHandler = errHandler
	return s
}

// Get returns the record under kv, or ErrNotFound.
func (s *Store[T]) Get(ctx context.Context, kv any) (T, error) {
	var zero T

	key, err := s.getKey(kv)
	if err != nil {
		observe(s.name, opGet, resultError)
		return zero, err
	}

	value, err := s.getValue(ctx, key)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			observe(s.name, opGet, resultMiss)
		} else {
			observe(s.name, opGet, resultError)
		}
		return zero, err
	}

	observe(s.name, opGet, resultHit)
	return value, nil
}

// Put stores value under kv with the default TTL.
func (s *Store[T]) Put(ctx context.Context, kv any, value T) error {
	return s.PutWithTTL(ctx, kv, value, s.ttl)
}

func (s *Store[T]) PutWithTTL(ctx context.Context, kv any, value T, ttl time.Duration) error {
	key, err := s.getKey(kv)
	if err != nil {
		observe(s.name, opPut, resultError)
		return err
	}

	if err := s.storeValue(ctx, key, value, ttl); err != nil {
		observe(s.name, opPut, resultError)
		return err
	}

	observe(s.name, opPut, resultOK)
	return nil
}

func (s *Store[T]) Exists(ctx context.Context, kv any) (bool, error) {
	key, err := s.getKey(kv)
	if err != nil {
		observe(s.name, opExists, resultError)
		return false, err
	}

	ok, err := s.adapter.Exists(ctx, key)
	if err != nil {
		observe(s.name, opExists, resultError)
		return false, err
	}

	if ok {
		observe(s.name, opExists, resultHit)
	} else {
		observe(s.name, opExists, resultMiss)
	}
	return ok, nil
}

// Delete removes the record under kv. Deleting a missing key is not an error.
func (s *Store[T]) Delete(ctx context.Context, kv any) error {
	key, err := s.getKey(kv)
	if err != nil {
		observe(s.name, opDelete, resultError)
		return err
	}

	// No need for lock.
	if err := s.adapter.Delete(ctx, key); err != nil {
		observe(s.name, opDelete, resultError)
		return err
	}

	observe(s.name, opDelete, resultOK)
	return nil
}

// Load returns the record under kv, running loader when it is missing.
// The loader will not run again while its result stays in storage.
func (s *Store[T]) Load(ctx context.Context, kv any, loader LoaderFunc[T]) (T, error) {
	value, err := s.load(ctx, kv, loader)
	if err != nil {
		var preErr *preLoadError
		if errors.As(err, &preErr) {
			observe(s.name, opLoad, resultError)
			return s.handlePreLoadError(ctx, kv, loader, preErr)
		}

		var postErr *postLoadError[T]
		if errors.As(err, &postErr) {
			observe(s.name, opLoad, resultError)
			return s.handlePostLoadError(ctx, kv, loader, postErr)
		}

		// Error from loader.
		observe(s.name, opLoad, resultError)
		var zero T
		return zero, err
	}

	return value, nil
}

// Update applies fn to the record under kv while holding its lock, then stores the result
// with the default TTL. A failing fn leaves the stored record untouched.
func (s *Store[T]) Update(ctx context.Context, kv any, fn UpdateFunc[T]) (T, error) {
	var zero T

	key, err := s.getKey(kv)
	if err != nil {
		observe(s.name, opUpdate, resultError)
		return zero, err
	}

	lockKey := lockPrefix + key
	lock, err := s.adapter.ObtainLock(ctx, lockKey)
	if err != nil {
		observe(s.name, opUpdate, resultError)
		return zero, errors.Wrap(err, "error while attempting to lock")
	}
	defer s.release(ctx, lock, lockKey)

	found := true
	value, err := s.getValue(ctx, key)
	if err != nil {
		if !errors.Is(err, adapter.ErrNotFound) {
			observe(s.name, opUpdate, resultError)
			return zero, err
		}
		found = false
	}

	if err := fn(&value, found); err != nil {
		observe(s.name, opUpdate, resultError)
		return zero, err
	}

	if err := s.storeValue(ctx, key, value, s.ttl); err != nil {
		observe(s.name, opUpdate, resultError)
		return zero, err
	}

	observe(s.name, opUpdate, resultOK)
	return value, nil
}

func (s *Store[T]) handlePreLoadError(ctx context.Context, kv any, loader LoaderFunc[T], preErr *preLoadError) (T, error) {
	s.logger.Error(preErr)

	args := PreLoadErrorHandlerArgs[T]{
		Key:         kv,
		Loader:      loader,
		ErrCategory: preErr.category,
		Err:         preErr.Unwrap(),
	}
	return s.preLoadErrHandler(ctx, args)
}

func (s *Store[T]) handlePostLoadError(ctx context.Context, kv any, loader LoaderFunc[T], postErr *postLoadError[T]) (T, error) {
	s.logger.Error(postErr)

	args := PostLoadErrorHandlerArgs[T]{
		Key:         kv,
		Loader:      loader,
		Result:      postErr.result,
		ErrCategory: postErr.category,
		Err:         postErr.Unwrap(),
	}
	return s.postLoadErrHandler(ctx, args)
}

func (s *Store[T]) load(ctx context.Context, kv any, loader LoaderFunc[T]) (T, error) {
	var zero T

	key, err := s.getKey(kv)
	if err != nil {
		return zero, newPreLoadError(categoryKey, "error while creating key", err)
	}

	value, err := s.getValue(ctx, key)
	if err == nil {
		// Pre-lock value get.
		observe(s.name, opLoad, resultHit)
		return value, nil
	}

	if !errors.Is(err, adapter.ErrNotFound) {
		return zero, s.preLoadGetError(err)
	}

	// Only lock when the value is missing, so hits stay cheap.
	lockKey := lockPrefix + key
	lock, err := s.adapter.ObtainLock(ctx, lockKey)
	if err != nil {
		return zero, newPreLoadError(categoryLock, "error while attempting to lock", err)
	}
	defer s.release(ctx, lock, lockKey)
	s.logger.Debug("lock acquired", lockKey)

	// Check for a second time.
	// Another process might have loaded the value while this one waited for the lock.
	value, err = s.getValue(ctx, key)
	if err == nil {
		// Post-lock value get.
		observe(s.name, opLoad, resultHit)
		return value, nil
	}

	if !errors.Is(err, adapter.ErrNotFound) {
		return zero, s.preLoadGetError(err)
	}

	s.logger.Debug("perform load", key)

	result, err := loader(ctx)
	if err != nil {
		return zero, err
	}

	if result.Cache {
		ttl := result.TTL
		if ttl <= 0 {
			ttl = s.ttl
		}

		if err := s.storeValue(ctx, key, result.Value, ttl); err != nil {
			return zero, newPostLoadError(categoryStore, "error while storing value", result, err)
		}
	} else {
		s.logger.Debug("not caching", key)
	}

	observe(s.name, opLoad, resultMiss)
	return result.Value, nil
}

func (s *Store[T]) preLoadGetError(err error) error {
	var decodeErr *decodeError
	if errors.As(err, &decodeErr) {
		return newPreLoadError(categoryDecode, "error while decoding value", decodeErr.err)
	}
	return newPreLoadError(categoryGet, "error while getting value", err)
}

func (s *Store[T]) release(ctx context.Context, lock adapter.Lock, lockKey string) {
	if err := lock.Release(ctx); err != nil {
		s.logger.Error("lock release failed", lockKey, err)
		return
	}
	s.logger.Debug("lock released", lockKey)
}

func (s *Store[T]) getKey(v any) (string, error) {
	key, err := makeKey(v)
	if err != nil {
		return "", err
	}

	s.logger.Debug("name", s.name, "key", key)

	// Prefix the key string with name.
	return s.name + keySeparator + key, nil
}

func (s *Store[T]) getValue(ctx context.Context, key string) (T, error) {
	var value T

	data, err := s.adapter.Get(ctx, key)
	if err != nil {
		return value, err
	}

	s.logger.Debug("get value", key)

	if err := s.codec.Unmarshal(data, &value); err != nil {
		return value, &decodeError{key: key, err: err}
	}
	return value, nil
}

func (s *Store[T]) storeValue(ctx context.Context, key string, value T, ttl time.Duration) error {
	s.logger.Debug("store value", key)

	data, err := s.codec.Marshal(&value)
	if err != nil {
		return err
	}

	return s.adapter.Set(ctx, key, ttl, data)
}

func makeKey(key any) (string, error) {
	if keyable, ok := key.(Keyable); ok {
		return keyable.Key()
	}

	// Hex keys and other Stringers land here too.
	return fmt.Sprintf("%v", key), nil
}

// Allow the loader to run in case of errors made when reading storage.
// Does not store the result.
func DefaultPreLoadErrorHandler[T any](ctx context.Context, args PreLoadErrorHandlerArgs[T]) (T, error) {
	result, err := args.Loader(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	return result.Value, nil
}

// Ignore error and immediately return value without error.
func DefaultPostLoadErrorHandler[T any](ctx context.Context, args PostLoadErrorHandlerArgs[T]) (T, error) {
	return args.Result.Value, nil
}

package mutex

import (
	"context"
	"sync"
)

// MultiMutex keeps one Mutex per key, alive only while someone holds or waits for it.
type MultiMutex struct {
	mutexFactory MutexFactory
	mutexes      map[string]Mutex
	mutexCounts  map[string]int
	syncMutex    sync.Mutex
}

func NewMultiMutex(mutexFactory MutexFactory) *MultiMutex {
	return &MultiMutex{
		mutexFactory: mutexFactory,
		mutexes:      make(map[string]Mutex),
		mutexCounts:  make(map[string]int),
	}
}

func (m *MultiMutex) Lock(ctx context.Context, key string) error {
	if err := m.acquire(key).Lock(ctx); err != nil {
		// Drop the reference taken for this attempt.
		m.release(key)
		return err
	}
	return nil
}

func (m *MultiMutex) Unlock(ctx context.Context, key string) error {
	return m.release(key).Unlock(ctx)
}

// Size is the number of keys currently tracked.
func (m *MultiMutex) Size() int {
	m.syncMutex.Lock()
	defer m.syncMutex.Unlock()

	return len(m.mutexes)
}

func (m *MultiMutex) acquire(key string) Mutex {
	m.syncMutex.Lock()
	defer m.syncMutex.Unlock()

	mutex, ok := m.mutexes[key]
	if !ok {
		mutex = m.mutexFactory.Make(key)
		m.mutexes[key] = mutex
	}
	m.mutexCounts[key]++

	return mutex
}

func (m *MultiMutex) release(key string) Mutex {
	m.syncMutex.Lock()
	defer m.syncMutex.Unlock()

	mutex, ok := m.mutexes[key]
	if !ok {
		panic("attempting to obtain unset mutex for unlock: " + key)
	}

	m.mutexCounts[key]--
	if m.mutexCounts[key] == 0 {
		delete(m.mutexes, key)
		delete(m.mutexCounts, key)
	}

	return mutex
}

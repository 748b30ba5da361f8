// Package adaptertest checks that an adapter.Adapter behaves like the memory adapter.
package adaptertest

import (
	"context"
	"sync"
	"time"

	"github.com/pwnedgod/hexa/adapter"
	"github.com/stretchr/testify/suite"
)

// Suite runs against a fresh adapter from New before every test.
//
//	suite.Run(t, &adaptertest.Suite{New: func() adapter.Adapter { ... }})
type Suite struct {
	suite.Suite

	New func() adapter.Adapter

	// Elapse moves the clock of the backend forward. Defaults to time.Sleep.
	Elapse func(time.Duration)

	adapter adapter.Adapter
}

func (s *Suite) SetupTest() {
	s.adapter = s.New()
}

func (s *Suite) elapse(d time.Duration) {
	if s.Elapse != nil {
		s.Elapse(d)
		return
	}
	time.Sleep(d)
}

func (s *Suite) TestGetMissing() {
	_, err := s.adapter.Get(context.Background(), "missing")
	s.Assert().ErrorIs(err, adapter.ErrNotFound)

	ok, err := s.adapter.Exists(context.Background(), "missing")
	s.Assert().NoError(err)
	s.Assert().False(ok)
}

func (s *Suite) TestSetGetDelete() {
	ctx := context.Background()

	s.Require().NoError(s.adapter.Set(ctx, "key", 0, []byte{0x00, 0xc0, 0xff, 0xee}))

	data, err := s.adapter.Get(ctx, "key")
	s.Assert().NoError(err)
	s.Assert().Equal([]byte{0x00, 0xc0, 0xff, 0xee}, data)

	ok, err := s.adapter.Exists(ctx, "key")
	s.Assert().NoError(err)
	s.Assert().True(ok)

	s.Require().NoError(s.adapter.Set(ctx, "key", 0, []byte("replaced")))
	data, err = s.adapter.Get(ctx, "key")
	s.Assert().NoError(err)
	s.Assert().Equal([]byte("replaced"), data)

	s.Require().NoError(s.adapter.Delete(ctx, "key"))
	_, err = s.adapter.Get(ctx, "key")
	s.Assert().ErrorIs(err, adapter.ErrNotFound)

	// Deleting twice is fine.
	s.Assert().NoError(s.adapter.Delete(ctx, "key"))
}

func (s *Suite) TestSetCopiesData() {
	ctx := context.Background()
	data := []byte("value")

	s.Require().NoError(s.adapter.Set(ctx, "key", 0, data))
	data[0] = 'V'

	got, err := s.adapter.Get(ctx, "key")
	s.Assert().NoError(err)
	s.Assert().Equal([]byte("value"), got)
}

func (s *Suite) TestExpiry() {
	ctx := context.Background()
	ttl := 100 * time.Millisecond

	s.Require().NoError(s.adapter.Set(ctx, "key", ttl, []byte("value")))

	ok, err := s.adapter.Exists(ctx, "key")
	s.Assert().NoError(err)
	s.Assert().True(ok)

	s.elapse(ttl * 3)

	ok, err = s.adapter.Exists(ctx, "key")
	s.Assert().NoError(err)
	s.Assert().False(ok)

	_, err = s.adapter.Get(ctx, "key")
	s.Assert().ErrorIs(err, adapter.ErrNotFound)
}

func (s *Suite) TestLockIsExclusive() {
	ctx := context.Background()

	var mu sync.Mutex
	holders, maxHolders := 0, 0

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			lock, err := s.adapter.ObtainLock(ctx, "lock###key")
			if !s.Assert().NoError(err) {
				return
			}

			mu.Lock()
			holders++
			if holders > maxHolders {
				maxHolders = holders
			}
			mu.Unlock()

			time.Sleep(10 * time.Millisecond)

			mu.Lock()
			holders--
			mu.Unlock()

			s.Assert().NoError(lock.Release(ctx))
		}()
	}
	wg.Wait()

	s.Assert().Equal(1, maxHolders)
}

func (s *Suite) TestLocksAreKeyed() {
	ctx := context.Background()

	a, err := s.adapter.ObtainLock(ctx, "lock###a")
	s.Require().NoError(err)
	b, err := s.adapter.ObtainLock(ctx, "lock###b")
	s.Require().NoError(err)

	s.Assert().NoError(b.Release(ctx))
	s.Assert().NoError(a.Release(ctx))
}

package memory

import (
	"sync"

	drillerrors "go-enemy-drills/internal/errors"
)

// Shared is a reference-counted owner. Every holder calls Retain to take a
// reference and Release to give it back; the value is dropped, and the
// release hook runs, when the last reference goes.
type Shared[T any] struct {
	mu      sync.Mutex
	value   *T
	refs    int
	release func(*T)
}

// NewShared wraps v with one reference held by the caller.
func NewShared[T any](v *T, release func(*T)) *Shared[T] {
	return &Shared[T]{value: v, refs: 1, release: release}
}

// Retain adds a reference and returns s. A released value cannot be
// revived: Retain then fails with ErrAlreadyReleased.
func (s *Shared[T]) Retain() (*Shared[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.refs == 0 {
		return nil, drillerrors.ErrAlreadyReleased
	}
	s.refs++
	return s, nil
}

// Release drops a reference. Releasing a dead value fails.
func (s *Shared[T]) Release() error {
	s.mu.Lock()
	if s.refs == 0 {
		s.mu.Unlock()
		return drillerrors.ErrAlreadyReleased
	}
	s.refs--
	if s.refs > 0 {
		s.mu.Unlock()
		return nil
	}
	v, release := s.value, s.release
	s.value, s.release = nil, nil
	s.mu.Unlock()

	// hook runs outside the lock: it may release other Shared values
	if release != nil {
		release(v)
	}
	return nil
}

// Count returns the number of live references.
func (s *Shared[T]) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refs
}

// Value returns the shared value, or nil once released.
func (s *Shared[T]) Value() *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

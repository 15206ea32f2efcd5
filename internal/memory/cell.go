package memory

import drillerrors "go-enemy-drills/internal/errors"

// Cell owns a single heap value that can be freed exactly once.
type Cell[T any] struct {
	value *T
}

// NewCell boxes v.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{value: &v}
}

// Get returns the value, or ErrAlreadyReleased after Free.
func (c *Cell[T]) Get() (T, error) {
	if c.value == nil {
		var zero T
		return zero, drillerrors.ErrAlreadyReleased
	}
	return *c.value, nil
}

// Free drops the value. Freeing twice is rejected.
func (c *Cell[T]) Free() error {
	if c.value == nil {
		return drillerrors.ErrAlreadyReleased
	}
	c.value = nil
	return nil
}

package memory

import drillerrors "go-enemy-drills/internal/errors"

// Unique is an exclusive owner. Move transfers the value to a new owner and
// leaves the source empty; Close releases the value once.
type Unique[T any] struct {
	value   *T
	release func(*T)
}

// NewUnique takes ownership of v. release, if non-nil, runs on Close.
func NewUnique[T any](v *T, release func(*T)) *Unique[T] {
	return &Unique[T]{value: v, release: release}
}

// Empty reports whether the owner holds nothing.
func (u *Unique[T]) Empty() bool {
	return u == nil || u.value == nil
}

// Get returns the owned value or ErrOwnershipMoved when empty.
func (u *Unique[T]) Get() (*T, error) {
	if u.Empty() {
		return nil, drillerrors.ErrOwnershipMoved
	}
	return u.value, nil
}

// Move transfers ownership to a new Unique.
func (u *Unique[T]) Move() *Unique[T] {
	if u.Empty() {
		return &Unique[T]{}
	}
	moved := &Unique[T]{value: u.value, release: u.release}
	u.value, u.release = nil, nil
	return moved
}

// Close releases the owned value. Closing an empty owner is a no-op.
func (u *Unique[T]) Close() error {
	if u.Empty() {
		return nil
	}
	v, release := u.value, u.release
	u.value, u.release = nil, nil
	if release != nil {
		release(v)
	}
	return nil
}

package memory

import (
	"fmt"
	"strconv"

	drillerrors "go-enemy-drills/internal/errors"
)

// Allocator hands out int buffers no larger than max and tracks how many are
// still live.
type Allocator struct {
	max  int
	live int
}

// NewAllocator creates an allocator accepting sizes in [0, max].
func NewAllocator(max int) *Allocator {
	if max < 0 {
		max = 0
	}
	return &Allocator{max: max}
}

// Max returns the largest accepted size.
func (a *Allocator) Max() int { return a.max }

// Live returns the number of buffers allocated and not yet released.
func (a *Allocator) Live() int { return a.live }

// Alloc returns a zeroed buffer of n ints.
func (a *Allocator) Alloc(n int) (*IntBuffer, error) {
	if n < 0 || n > a.max {
		return nil, drillerrors.WithMetadata(
			drillerrors.CodeInvalidSize,
			fmt.Sprintf("size %d outside [0, %d]", n, a.max),
			map[string]string{"size": strconv.Itoa(n), "max": strconv.Itoa(a.max)},
		)
	}
	a.live++
	return &IntBuffer{data: make([]int, n), owner: a}, nil
}

// Use allocates n ints, hands them to fn and releases them afterwards, also
// when fn fails. fn's error wins over a release error.
func (a *Allocator) Use(n int, fn func(*IntBuffer) error) error {
	buf, err := a.Alloc(n)
	if err != nil {
		return err
	}
	if err := fn(buf); err != nil {
		if !buf.released {
			_ = buf.Release()
		}
		return err
	}
	return buf.Release()
}

// IntBuffer is a fixed-size block of ints owned by an Allocator until
// Release is called.
type IntBuffer struct {
	data     []int
	owner    *Allocator
	released bool
}

// Len returns the buffer size.
func (b *IntBuffer) Len() int { return len(b.data) }

// Fill writes value[i] = 2i.
func (b *IntBuffer) Fill() error {
	if b.released {
		return drillerrors.ErrAlreadyReleased
	}
	for i := range b.data {
		b.data[i] = i * 2
	}
	return nil
}

// Values returns a copy of the contents.
func (b *IntBuffer) Values() ([]int, error) {
	if b.released {
		return nil, drillerrors.ErrAlreadyReleased
	}
	out := make([]int, len(b.data))
	copy(out, b.data)
	return out, nil
}

// Release returns the buffer to its allocator. A second call fails.
func (b *IntBuffer) Release() error {
	if b.released {
		return drillerrors.ErrAlreadyReleased
	}
	b.released = true
	b.data = nil
	b.owner.live--
	return nil
}

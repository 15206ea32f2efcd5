package memory

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go-enemy-drills/internal/console"
	drillerrors "go-enemy-drills/internal/errors"
	"go-enemy-drills/internal/i18n"
)

// ReadSize prompts on out and reads one integer from r.
func ReadSize(r io.Reader, out *console.Console) (int, error) {
	out.Printf(i18n.ArrayPromptKey)

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("read size: %w", err)
		}
		return 0, drillerrors.New(drillerrors.CodeInvalidSize, "no size given")
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, drillerrors.Wrap(drillerrors.CodeInvalidSize, fmt.Sprintf("size %q is not an integer", sc.Text()), err)
	}
	return n, nil
}

// ManualArray allocates size ints, fills them with 2i, prints them and
// releases the block.
func ManualArray(out *console.Console, alloc *Allocator, size int) error {
	err := alloc.Use(size, func(buf *IntBuffer) error {
		if err := buf.Fill(); err != nil {
			return err
		}
		values, err := buf.Values()
		if err != nil {
			return err
		}

		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = strconv.Itoa(v)
		}
		out.Linef(i18n.ArrayContentsKey, strings.Join(parts, " "))
		return nil
	})
	if err != nil {
		return err
	}
	out.Linef(i18n.ArrayReleasedKey)
	return nil
}

// DoubleRelease frees a value twice and shows the second free is refused.
func DoubleRelease(out *console.Console) error {
	c := NewCell(42)
	if err := c.Free(); err != nil {
		return err
	}
	out.Linef(i18n.FirstReleaseKey)

	if err := c.Free(); err == nil {
		return fmt.Errorf("second free unexpectedly succeeded")
	}
	out.Linef(i18n.SecondReleaseKey)
	return nil
}

// ExclusiveOwnership moves a Tracked between two exclusive owners.
func ExclusiveOwnership(out *console.Console) error {
	obj := NewUnique(NewTracked(out), (*Tracked).Destroy)
	t, err := obj.Get()
	if err != nil {
		return err
	}
	t.Message()

	other := obj.Move()
	if obj.Empty() {
		out.Linef(i18n.UniqueEmptyKey)
	}
	if _, err := obj.Get(); err == nil {
		return fmt.Errorf("moved-from owner still usable")
	}

	t, err = other.Get()
	if err != nil {
		return err
	}
	t.Message()
	return other.Close()
}

// SharedOwnership links three shared nodes, prints the owner counts and the
// chain, then drops every reference.
func SharedOwnership(out *console.Console) error {
	dropped := func(v int) { out.Linef(i18n.SharedReleasedKey, strconv.Itoa(v)) }

	head := NewNode(1, dropped)
	second := NewNode(2, dropped)
	third := NewNode(3, dropped)

	if err := Link(head, second); err != nil {
		return err
	}
	if err := Link(second, third); err != nil {
		return err
	}

	out.Linef(i18n.SharedOwnersKey, "2", strconv.Itoa(second.Count()))

	values := Walk(head)
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	out.Line(strings.Join(parts, " "))

	for _, n := range []*Shared[Node]{third, second, head} {
		if err := n.Release(); err != nil {
			return err
		}
	}
	return nil
}

// Run executes every ownership demo in order.
func Run(out *console.Console, alloc *Allocator, size int) error {
	if err := ManualArray(out, alloc, size); err != nil {
		return fmt.Errorf("manual array: %w", err)
	}
	if err := DoubleRelease(out); err != nil {
		return fmt.Errorf("double release: %w", err)
	}
	if err := ExclusiveOwnership(out); err != nil {
		return fmt.Errorf("exclusive ownership: %w", err)
	}
	if err := SharedOwnership(out); err != nil {
		return fmt.Errorf("shared ownership: %w", err)
	}
	return nil
}

package memory

import drillerrors "go-enemy-drills/internal/errors"

// Node is one link of a forward chain whose links are shared owners.
type Node struct {
	Value int
	Next  *Shared[Node]
}

// NewNode creates a node with one reference. onDrop, if set, is told the
// payload when the node is finally released; the node's own reference to
// Next is released at the same time.
func NewNode(value int, onDrop func(int)) *Shared[Node] {
	return NewShared(&Node{Value: value}, func(n *Node) {
		if onDrop != nil {
			onDrop(n.Value)
		}
		if n.Next != nil {
			_ = n.Next.Release()
			n.Next = nil
		}
	})
}

// Link makes from point at to, taking a new reference on to. Linking from or
// to a released node fails with ErrAlreadyReleased and leaves from as is.
func Link(from, to *Shared[Node]) error {
	n := from.Value()
	if n == nil {
		return drillerrors.ErrAlreadyReleased
	}
	next, err := to.Retain()
	if err != nil {
		return err
	}
	if n.Next != nil {
		_ = n.Next.Release()
	}
	n.Next = next
	return nil
}

// Chain builds value[0] -> value[1] -> ... and returns the head. The caller
// holds the only external reference, on the head.
func Chain(onDrop func(int), values ...int) *Shared[Node] {
	if len(values) == 0 {
		return nil
	}
	head := NewNode(values[0], onDrop)
	prev := head
	for _, v := range values[1:] {
		next := NewNode(v, onDrop)
		_ = Link(prev, next) // both nodes are fresh
		_ = next.Release()    // prev now holds the only reference
		prev = next
	}
	return head
}

// Walk follows Next references from head until the empty terminator and
// returns the payloads in order. A node reached twice ends the walk, so a
// chain linked back onto itself yields each node once.
func Walk(head *Shared[Node]) []int {
	var out []int
	seen := make(map[*Shared[Node]]bool)
	for cur := head; cur != nil && !seen[cur]; {
		seen[cur] = true
		n := cur.Value()
		if n == nil {
			break
		}
		out = append(out, n.Value)
		cur = n.Next
	}
	return out
}

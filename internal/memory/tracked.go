package memory

import (
	"go-enemy-drills/internal/console"
	"go-enemy-drills/internal/i18n"
)

// Tracked announces its construction and destruction on a console.
type Tracked struct {
	out *console.Console
}

// NewTracked constructs a Tracked and prints the constructor line.
func NewTracked(out *console.Console) *Tracked {
	out.Linef(i18n.TrackedCtorKey)
	return &Tracked{out: out}
}

// Message prints the tracked object's message.
func (t *Tracked) Message() {
	t.out.Linef(i18n.TrackedMessageKey)
}

// Destroy prints the destructor line.
func (t *Tracked) Destroy() {
	t.out.Linef(i18n.TrackedDtorKey)
}

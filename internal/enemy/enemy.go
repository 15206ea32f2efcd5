// Package enemy defines the enemy capability set and its three variants.
//
// Every operation writes exactly one transcript line to the enemy's console
// and has no other effect: enemies are never mutated after construction, so
// repeating a call repeats the same line.
package enemy

import (
	"fmt"
	"strconv"

	"go-enemy-drills/internal/console"
	"go-enemy-drills/internal/defs"
	drillerrors "go-enemy-drills/internal/errors"
	"go-enemy-drills/internal/i18n"
)

// Attacker can attack.
type Attacker interface {
	Attack()
}

// Mover can move.
type Mover interface {
	Move()
}

// Waiter can idle for a turn.
type Waiter interface {
	Wait()
}

// StateReporter can print its own state.
type StateReporter interface {
	ReportState()
}

// Enemy is the full capability set the registry drives.
type Enemy interface {
	Attacker
	Mover
	Waiter
	StateReporter

	Kind() defs.Kind
	Name() string
	Health() int
	Speed() float64
}

// Base holds the attributes shared by all variants and the one ReportState
// implementation they all use.
type Base struct {
	name   string
	health int
	speed  float64
	out    *console.Console
}

func newBase(name string, health int, speed float64, out *console.Console) Base {
	if out == nil {
		out = console.Discard()
	}
	return Base{name: name, health: health, speed: speed, out: out}
}

// Name returns the display name.
func (b *Base) Name() string { return b.name }

// Health returns the health points. May be negative.
func (b *Base) Health() int { return b.health }

// Speed returns the movement speed.
func (b *Base) Speed() float64 { return b.speed }

// ReportState prints name, health and speed.
func (b *Base) ReportState() {
	b.out.Linef(i18n.EnemyStateKey, b.name, strconv.Itoa(b.health), FormatSpeed(b.speed))
}

// FormatSpeed renders a speed in its shortest form: 1, 3.5, 0.25.
func FormatSpeed(speed float64) string {
	return strconv.FormatFloat(speed, 'g', -1, 64)
}

// New builds the variant selected by def.Kind.
func New(def defs.EnemyDefinition, out *console.Console) (Enemy, error) {
	switch def.Kind {
	case defs.KindZombie:
		return NewZombie(def.Name, def.Health, def.Speed, out), nil
	case defs.KindVampire:
		return NewVampire(def.Name, def.Health, def.Speed, out), nil
	case defs.KindGhost:
		return NewGhost(def.Name, def.Health, def.Speed, out), nil
	}
	return nil, drillerrors.WithMetadata(
		drillerrors.CodeUnknownEnemyKind,
		fmt.Sprintf("unknown enemy kind %q", def.Kind),
		map[string]string{"kind": string(def.Kind), "id": def.ID},
	)
}

// FromLibrary builds one enemy per definition, in library order.
func FromLibrary(lib *defs.Library, out *console.Console) ([]Enemy, error) {
	ordered := lib.Ordered()
	enemies := make([]Enemy, 0, len(ordered))
	for _, def := range ordered {
		e, err := New(def, out)
		if err != nil {
			return nil, err
		}
		enemies = append(enemies, e)
	}
	return enemies, nil
}

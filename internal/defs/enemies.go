// internal/defs/enemies.go
package defs

import (
	"fmt"
	"image/color"

	drillerrors "go-enemy-drills/internal/errors"
)

// EnemyDefinition holds all the static data for a specific type of enemy.
// Health and speed are display-only: negative values are accepted as is.
type EnemyDefinition struct {
	ID      string  `json:"id"`
	Kind    Kind    `json:"kind"`
	Name    string  `json:"name"`
	Health  int     `json:"health"`
	Speed   float64 `json:"speed"`
	Visuals Visuals `json:"visuals"`
}

// Visuals contains parameters for rendering an enemy in the arena.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor"`
}

// Library holds enemy definitions keyed by ID, remembering file order.
type Library struct {
	byID  map[string]EnemyDefinition
	order []string
}

// Get returns the definition with the given ID, or a DEFINITION_NOT_FOUND
// error.
func (l *Library) Get(id string) (EnemyDefinition, error) {
	def, ok := l.byID[id]
	if !ok {
		return EnemyDefinition{}, drillerrors.WithMetadata(
			drillerrors.CodeDefinitionNotFound,
			fmt.Sprintf("no enemy definition %q", id),
			map[string]string{"id": id},
		)
	}
	return def, nil
}

// Select returns a library holding only the given IDs, in the given order.
// No IDs selects everything. A repeated ID is kept once.
func (l *Library) Select(ids ...string) (*Library, error) {
	if len(ids) == 0 {
		return l, nil
	}
	out := &Library{byID: make(map[string]EnemyDefinition, len(ids))}
	for _, id := range ids {
		def, err := l.Get(id)
		if err != nil {
			return nil, err
		}
		if _, dup := out.byID[id]; dup {
			continue
		}
		out.byID[id] = def
		out.order = append(out.order, id)
	}
	return out, nil
}

// Ordered returns every definition in the order it was loaded.
func (l *Library) Ordered() []EnemyDefinition {
	out := make([]EnemyDefinition, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.byID[id])
	}
	return out
}

// Len returns the number of definitions.
func (l *Library) Len() int {
	return len(l.order)
}

// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-enemy-drills/internal/component"
)

// ID identifies an arena entity.
type ID uint32

// ECS stores arena components keyed by entity.
type ECS struct {
	GameTime    float64
	NextID      ID
	Positions   map[ID]*component.Position
	Velocities  map[ID]*component.Velocity
	Renderables map[ID]*component.Renderable
	Enemies     map[ID]*component.Enemy
	Flashes     map[ID]*component.ActionFlash
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[ID]*component.Position),
		Velocities:  make(map[ID]*component.Velocity),
		Renderables: make(map[ID]*component.Renderable),
		Enemies:     make(map[ID]*component.Enemy),
		Flashes:     make(map[ID]*component.ActionFlash),
	}
}

func (ecs *ECS) NewEntity() ID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// SortedIDs returns the ids of m in ascending order, for stable iteration.
func SortedIDs[T any](m map[ID]T) []ID {
	ids := make([]ID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// EnemyByIndex finds the entity bound to registry slot index.
func (ecs *ECS) EnemyByIndex(index int) (ID, bool) {
	for id, e := range ecs.Enemies {
		if e.Index == index {
			return id, true
		}
	}
	return 0, false
}

// internal/system/spawn.go
package system

import (
	"go-enemy-drills/internal/component"
	"go-enemy-drills/internal/defs"
	"go-enemy-drills/internal/entity"
	"go-enemy-drills/internal/utils"
)

// Layout describes where lanes sit on screen.
type Layout struct {
	Top        float64
	LaneHeight float64
	Width      float64
	Jitter     float64
	Radius     float64
}

// SpawnSystem places one arena entity per registry slot.
type SpawnSystem struct {
	ecs    *entity.ECS
	layout Layout
	prng   *utils.PRNGService
}

func NewSpawnSystem(ecs *entity.ECS, layout Layout, prng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{ecs: ecs, layout: layout, prng: prng}
}

// Spawn creates an entity for the definition occupying registry slot index.
func (s *SpawnSystem) Spawn(index int, def defs.EnemyDefinition) entity.ID {
	id := s.ecs.NewEntity()
	laneY := s.layout.Top + s.layout.LaneHeight*(float64(index)+0.5)

	s.ecs.Positions[id] = &component.Position{
		X: s.prng.Float64() * s.layout.Width,
		Y: laneY + s.prng.Jitter(s.layout.Jitter),
	}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  def.Visuals.Color,
		Radius: float32(s.layout.Radius * def.Visuals.RadiusFactor),
	}
	s.ecs.Enemies[id] = &component.Enemy{
		Name:  def.Name,
		Index: index,
		BaseY: laneY,
	}
	return id
}

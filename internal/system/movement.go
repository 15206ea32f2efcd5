// internal/system/movement.go
package system

import (
	"go-enemy-drills/internal/entity"
	"go-enemy-drills/internal/utils"
)

// MovementSystem drifts every enemy to the right at its speed and wraps it
// around the screen edge.
type MovementSystem struct {
	ecs            *entity.ECS
	width          float64
	pixelsPerSpeed float64
}

func NewMovementSystem(ecs *entity.ECS, width, pixelsPerSpeed float64) *MovementSystem {
	return &MovementSystem{ecs: ecs, width: width, pixelsPerSpeed: pixelsPerSpeed}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, pos := range s.ecs.Positions {
		vel, hasVel := s.ecs.Velocities[id]
		if !hasVel {
			continue
		}
		// negative speed drifts left
		pos.X = utils.Wrap(pos.X+vel.Speed*s.pixelsPerSpeed*deltaTime, s.width)
	}
}

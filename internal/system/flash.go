// internal/system/flash.go
package system

import (
	"go-enemy-drills/internal/component"
	"go-enemy-drills/internal/entity"
	"go-enemy-drills/internal/event"
	"go-enemy-drills/internal/game"
)

// FlashSystem highlights an enemy when the registry makes it act.
type FlashSystem struct {
	ecs      *entity.ECS
	duration float64
}

// NewFlashSystem subscribes to every enemy action on d.
func NewFlashSystem(ecs *entity.ECS, d *event.Dispatcher, duration float64) *FlashSystem {
	s := &FlashSystem{ecs: ecs, duration: duration}
	d.SubscribeAll(s, event.EnemyActions...)
	return s
}

// OnEvent implements event.Listener.
func (s *FlashSystem) OnEvent(e event.Event) {
	a, ok := e.Data.(game.Action)
	if !ok {
		return
	}
	id, ok := s.ecs.EnemyByIndex(a.Index)
	if !ok {
		return
	}
	s.ecs.Flashes[id] = &component.ActionFlash{Action: e.Type, Duration: s.duration}
}

// Update ages flashes and drops finished ones.
func (s *FlashSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.Flashes {
		flash.Timer += deltaTime
		if flash.Timer >= flash.Duration {
			delete(s.ecs.Flashes, id)
		}
	}
}

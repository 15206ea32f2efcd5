// Package game holds the enemy registry and the turn loop that drives it.
package game

import (
	"go-enemy-drills/internal/enemy"
	"go-enemy-drills/internal/event"
)

// Action is the payload of every per-enemy event.
type Action struct {
	Turn  int    // 1-based turn number
	Index int    // position of the enemy in the registry
	Name  string // enemy display name
}

// Turn is the payload of TurnStarted and TurnEnded.
type Turn struct {
	Number  int
	Enemies int
}

// Registry is an append-only, ordered list of enemies. Enemies are shared:
// the registry keeps the caller's references and never copies them.
type Registry struct {
	enemies    []enemy.Enemy
	dispatcher *event.Dispatcher
	turn       int
}

// NewRegistry creates an empty registry. dispatcher may be nil.
func NewRegistry(dispatcher *event.Dispatcher) *Registry {
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	return &Registry{dispatcher: dispatcher}
}

// Dispatcher returns the dispatcher the registry reports to.
func (r *Registry) Dispatcher() *event.Dispatcher {
	return r.dispatcher
}

// AddEnemy appends e. No capacity limit, no deduplication.
func (r *Registry) AddEnemy(e enemy.Enemy) {
	r.enemies = append(r.enemies, e)
}

// Len returns the number of registered enemies.
func (r *Registry) Len() int {
	return len(r.enemies)
}

// Turns returns how many times Update has run.
func (r *Registry) Turns() int {
	return r.turn
}

// Enemies returns the registered enemies in insertion order.
func (r *Registry) Enemies() []enemy.Enemy {
	out := make([]enemy.Enemy, len(r.enemies))
	copy(out, r.enemies)
	return out
}

// Update runs attack, move, wait and report-state on every enemy, in
// insertion order. N enemies give exactly 4N actions.
func (r *Registry) Update() {
	r.turn++
	r.dispatcher.Dispatch(event.Event{Type: event.TurnStarted, Data: Turn{Number: r.turn, Enemies: len(r.enemies)}})

	for i, e := range r.enemies {
		a := Action{Turn: r.turn, Index: i, Name: e.Name()}

		e.Attack()
		r.dispatcher.Dispatch(event.Event{Type: event.EnemyAttacked, Data: a})
		e.Move()
		r.dispatcher.Dispatch(event.Event{Type: event.EnemyMoved, Data: a})
		e.Wait()
		r.dispatcher.Dispatch(event.Event{Type: event.EnemyWaited, Data: a})
		e.ReportState()
		r.dispatcher.Dispatch(event.Event{Type: event.EnemyReported, Data: a})
	}

	r.dispatcher.Dispatch(event.Event{Type: event.TurnEnded, Data: Turn{Number: r.turn, Enemies: len(r.enemies)}})
}

// internal/component/visual.go
package component

import "go-enemy-drills/internal/event"

// ActionFlash marks an entity that just acted in a registry turn.
type ActionFlash struct {
	Action   event.EventType
	Timer    float64 // how long the flash has been active
	Duration float64 // total flash length
}

// Progress returns Timer/Duration clamped to [0, 1].
func (f *ActionFlash) Progress() float64 {
	if f.Duration <= 0 {
		return 1
	}
	p := f.Timer / f.Duration
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

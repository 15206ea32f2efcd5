// component/movement.go
package component

// Position is the on-screen position in pixels.
type Position struct {
	X, Y float64
}

// Velocity holds speed in enemy units; the movement system scales it to pixels.
type Velocity struct {
	Speed float64
}

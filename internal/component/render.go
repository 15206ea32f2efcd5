// component/render.go
package component

import "image/color"

// Renderable is how an entity is drawn.
type Renderable struct {
	Color  color.RGBA
	Radius float32
}

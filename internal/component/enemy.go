package component

// Enemy links an arena entity to its registry slot.
type Enemy struct {
	Name  string
	Index int     // position in the registry, also its lane
	BaseY float64 // lane center before jitter
}

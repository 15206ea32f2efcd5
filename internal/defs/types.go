// internal/defs/types.go
package defs

// Kind selects which enemy variant a definition builds.
type Kind string

const (
	KindZombie  Kind = "ZOMBIE"
	KindVampire Kind = "VAMPIRE"
	KindGhost   Kind = "GHOST"
)

// Valid reports whether k names a known variant.
func (k Kind) Valid() bool {
	switch k {
	case KindZombie, KindVampire, KindGhost:
		return true
	}
	return false
}

package enemy

import (
	"go-enemy-drills/internal/console"
	"go-enemy-drills/internal/defs"
	"go-enemy-drills/internal/i18n"
)

var (
	_ Enemy = (*Zombie)(nil)
	_ Enemy = (*Vampire)(nil)
	_ Enemy = (*Ghost)(nil)
)

// Zombie is slow and loud.
type Zombie struct {
	Base
}

// NewZombie creates a zombie.
func NewZombie(name string, health int, speed float64, out *console.Console) *Zombie {
	return &Zombie{Base: newBase(name, health, speed, out)}
}

func (z *Zombie) Kind() defs.Kind { return defs.KindZombie }
func (z *Zombie) Attack()         { z.out.Linef(i18n.ZombieAttackKey, z.name) }
func (z *Zombie) Move()           { z.out.Linef(i18n.ZombieMoveKey, z.name) }
func (z *Zombie) Wait()           { z.out.Linef(i18n.ZombieWaitKey, z.name) }

// Vampire is fast and stealthy.
type Vampire struct {
	Base
}

// NewVampire creates a vampire.
func NewVampire(name string, health int, speed float64, out *console.Console) *Vampire {
	return &Vampire{Base: newBase(name, health, speed, out)}
}

func (v *Vampire) Kind() defs.Kind { return defs.KindVampire }
func (v *Vampire) Attack()         { v.out.Linef(i18n.VampireAttackKey, v.name) }
func (v *Vampire) Move()           { v.out.Linef(i18n.VampireMoveKey, v.name) }
func (v *Vampire) Wait()           { v.out.Linef(i18n.VampireWaitKey, v.name) }

// Ghost walks through walls.
type Ghost struct {
	Base
}

// NewGhost creates a ghost.
func NewGhost(name string, health int, speed float64, out *console.Console) *Ghost {
	return &Ghost{Base: newBase(name, health, speed, out)}
}

func (g *Ghost) Kind() defs.Kind { return defs.KindGhost }
func (g *Ghost) Attack()         { g.out.Linef(i18n.GhostAttackKey, g.name) }
func (g *Ghost) Move()           { g.out.Linef(i18n.GhostMoveKey, g.name) }
func (g *Ghost) Wait()           { g.out.Linef(i18n.GhostWaitKey, g.name) }

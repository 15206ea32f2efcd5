package system

import (
	"fmt"
	"image/color"
	"testing"

	"go-enemy-drills/internal/component"
	"go-enemy-drills/internal/defs"
	"go-enemy-drills/internal/entity"
	"go-enemy-drills/internal/event"
	"go-enemy-drills/internal/game"
	"go-enemy-drills/internal/utils"
)

func TestMovementWrapsAtScreenEdge(t *testing.T) {
	t.Parallel()

	ecs := entity.NewECS()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: 95, Y: 10}
	ecs.Velocities[id] = &component.Velocity{Speed: 2}

	still := ecs.NewEntity()
	ecs.Positions[still] = &component.Position{X: 50}

	s := NewMovementSystem(ecs, 100, 10)
	s.Update(0.5) // 2 * 10 * 0.5 = 10px

	if got := ecs.Positions[id].X; got != 5 {
		t.Fatalf("x = %v, want 5", got)
	}
	if got := ecs.Positions[id].Y; got != 10 {
		t.Fatalf("y changed to %v", got)
	}
	if got := ecs.Positions[still].X; got != 50 {
		t.Fatalf("entity without velocity moved to %v", got)
	}
}

func TestSpawnPlacesEnemyInItsLane(t *testing.T) {
	t.Parallel()

	ecs := entity.NewECS()
	layout := Layout{Top: 100, LaneHeight: 40, Width: 300, Jitter: 5, Radius: 10}
	s := NewSpawnSystem(ecs, layout, utils.NewPRNGService(9))

	def := defs.EnemyDefinition{
		ID:      "ENEMY_VAMPIRE",
		Kind:    defs.KindVampire,
		Name:    "Vampire",
		Health:  80,
		Speed:   3.5,
		Visuals: defs.Visuals{Color: color.RGBA{R: 200, A: 255}, RadiusFactor: 1.5},
	}
	id := s.Spawn(2, def)

	e, ok := ecs.Enemies[id]
	if !ok {
		t.Fatal("enemy component missing")
	}
	if e.Index != 2 || e.Name != "Vampire" {
		t.Fatalf("enemy = %+v", e)
	}
	if e.BaseY != 200 {
		t.Fatalf("lane center = %v, want 200", e.BaseY)
	}
	pos := ecs.Positions[id]
	if pos.X < 0 || pos.X >= 300 {
		t.Fatalf("x = %v off screen", pos.X)
	}
	if d := pos.Y - e.BaseY; d < -5 || d >= 5 {
		t.Fatalf("jitter %v out of range", d)
	}
	if ecs.Velocities[id].Speed != 3.5 {
		t.Fatalf("speed = %v", ecs.Velocities[id].Speed)
	}
	if r := ecs.Renderables[id].Radius; r != 15 {
		t.Fatalf("radius = %v, want 15", r)
	}
	if got, ok := ecs.EnemyByIndex(2); !ok || got != id {
		t.Fatalf("EnemyByIndex(2) = %v, %v", got, ok)
	}
}

func TestFlashIgnoresUnknownSlots(t *testing.T) {
	t.Parallel()

	ecs := entity.NewECS()
	d := event.NewDispatcher()
	s := NewFlashSystem(ecs, d, 1)

	d.Dispatch(event.Event{Type: event.EnemyAttacked, Data: game.Action{Turn: 1, Index: 4, Name: "Ghost"}})
	d.Dispatch(event.Event{Type: event.EnemyMoved, Data: "not an action"})
	if len(ecs.Flashes) != 0 {
		t.Fatalf("flashes = %d, want 0", len(ecs.Flashes))
	}

	id := ecs.NewEntity()
	ecs.Enemies[id] = &component.Enemy{Index: 4}
	d.Dispatch(event.Event{Type: event.EnemyWaited, Data: game.Action{Turn: 1, Index: 4, Name: "Ghost"}})
	f, ok := ecs.Flashes[id]
	if !ok || f.Action != event.EnemyWaited {
		t.Fatalf("flash = %+v, %v", f, ok)
	}

	s.Update(0.5)
	if p := f.Progress(); p != 0.5 {
		t.Fatalf("progress = %v, want 0.5", p)
	}
	s.Update(0.5)
	if _, ok := ecs.Flashes[id]; ok {
		t.Fatal("flash not expired")
	}
}

func TestTurnLogJoinsPartialWrites(t *testing.T) {
	t.Parallel()

	l := NewTurnLog(4)
	fmt.Fprint(l, "Zombie ")
	fmt.Fprint(l, "attacks.\nZombie moves.\nhalf")
	if got := l.Lines(); len(got) != 2 || got[0] != "Zombie attacks." || got[1] != "Zombie moves." {
		t.Fatalf("lines = %q", got)
	}
	fmt.Fprint(l, " done\n")
	if got := l.Lines(); got[2] != "half done" {
		t.Fatalf("lines = %q", got)
	}
}

func TestTurnLogKeepsNewestLines(t *testing.T) {
	t.Parallel()

	l := NewTurnLog(3)
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(l, "line %d\n", i)
	}
	got := l.Lines()
	want := []string{"line 3", "line 4", "line 5"}
	if len(got) != len(want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("lines = %q, want %q", got, want)
		}
	}

	got[0] = "mutated"
	if l.Lines()[0] != "line 3" {
		t.Fatal("Lines returned internal slice")
	}
}

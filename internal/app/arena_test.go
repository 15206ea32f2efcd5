package app

import (
	"testing"
	"time"

	"golang.org/x/text/language"

	"go-enemy-drills/internal/config"
	"go-enemy-drills/internal/defs"
	"go-enemy-drills/internal/entity"
	"go-enemy-drills/internal/event"
)

func newTestArena(t *testing.T) *Arena {
	t.Helper()
	lib, err := defs.LoadEmbedded()
	if err != nil {
		t.Fatalf("load defs: %v", err)
	}
	a, err := NewArena(lib, Options{Lang: language.English, Seed: 3, TurnInterval: 100 * time.Millisecond, LogLines: 64})
	if err != nil {
		t.Fatalf("new arena: %v", err)
	}
	return a
}

func TestNewArenaSpawnsOnePerDefinition(t *testing.T) {
	t.Parallel()

	a := newTestArena(t)
	if a.Registry.Len() != 3 {
		t.Fatalf("registry len = %d, want 3", a.Registry.Len())
	}
	if len(a.ECS.Enemies) != 3 {
		t.Fatalf("entities = %d, want 3", len(a.ECS.Enemies))
	}
	for i, e := range a.Registry.Enemies() {
		id, ok := a.ECS.EnemyByIndex(i)
		if !ok {
			t.Fatalf("no entity for slot %d", i)
		}
		if a.ECS.Enemies[id].Name != e.Name() {
			t.Fatalf("slot %d entity %q, enemy %q", i, a.ECS.Enemies[id].Name, e.Name())
		}
		pos := a.ECS.Positions[id]
		if pos.X < 0 || pos.X >= config.ScreenWidth {
			t.Fatalf("spawn x %v off screen", pos.X)
		}
		if d := pos.Y - a.ECS.Enemies[id].BaseY; d < -config.LaneJitter || d >= config.LaneJitter {
			t.Fatalf("jitter %v out of range", d)
		}
	}
}

func TestUpdateRunsTurnsOnTimer(t *testing.T) {
	t.Parallel()

	a := newTestArena(t)
	// 0.05 per tick, interval 0.1: a turn every second tick
	for i := 0; i < 4; i++ {
		a.Update(0.05)
	}
	if a.Registry.Turns() != 2 {
		t.Fatalf("turns = %d, want 2", a.Registry.Turns())
	}

	lines := a.Log.Lines()
	// per turn: heading + 4 lines per enemy
	if len(lines) != 2*(1+4*3) {
		t.Fatalf("log lines = %d, want %d", len(lines), 2*(1+4*3))
	}
	if lines[0] != "Turn 1" || lines[13] != "Turn 2" {
		t.Fatalf("headings = %q, %q", lines[0], lines[13])
	}
	if lines[1] != "Zombie attacks slowly with its claws." {
		t.Fatalf("first action = %q", lines[1])
	}
}

func TestPauseStopsClock(t *testing.T) {
	t.Parallel()

	a := newTestArena(t)
	id, _ := a.ECS.EnemyByIndex(1)
	before := *a.ECS.Positions[id]

	a.TogglePause()
	if !a.Paused() {
		t.Fatal("expected paused")
	}
	a.Update(0.05)
	a.Update(0.05)
	if a.Registry.Turns() != 0 {
		t.Fatalf("turns while paused = %d", a.Registry.Turns())
	}
	if *a.ECS.Positions[id] != before {
		t.Fatal("enemy moved while paused")
	}

	a.TogglePause()
	a.Update(0.01)
	if *a.ECS.Positions[id] == before {
		t.Fatal("enemy did not move after resume")
	}
}

func TestStepFlashesLastEnemy(t *testing.T) {
	t.Parallel()

	a := newTestArena(t)
	a.Step()
	// every enemy acted; flashes hold the last action per enemy
	if len(a.ECS.Flashes) != 3 {
		t.Fatalf("flashes = %d, want 3", len(a.ECS.Flashes))
	}
	for _, id := range entity.SortedIDs(a.ECS.Flashes) {
		if f := a.ECS.Flashes[id]; f.Action != event.EnemyReported {
			t.Fatalf("flash action = %s, want %s", f.Action, event.EnemyReported)
		}
	}
	for i := 0; i < 20; i++ {
		a.FlashSystem.Update(0.05)
	}
	if len(a.ECS.Flashes) != 0 {
		t.Fatalf("flashes after expiry = %d", len(a.ECS.Flashes))
	}
}

func TestUpdateClampsDelta(t *testing.T) {
	t.Parallel()

	a := newTestArena(t)
	a.Update(10)
	if a.ECS.GameTime != config.MaxDeltaTime {
		t.Fatalf("game time = %v, want %v", a.ECS.GameTime, config.MaxDeltaTime)
	}
}

// internal/app/arena.go
package app

import (
	"strconv"
	"time"

	"golang.org/x/text/language"

	"go-enemy-drills/internal/config"
	"go-enemy-drills/internal/console"
	"go-enemy-drills/internal/defs"
	"go-enemy-drills/internal/enemy"
	"go-enemy-drills/internal/entity"
	"go-enemy-drills/internal/event"
	"go-enemy-drills/internal/game"
	"go-enemy-drills/internal/i18n"
	"go-enemy-drills/internal/system"
	"go-enemy-drills/internal/utils"
)

const flashDuration = 0.4

// Options configures an Arena.
type Options struct {
	Lang         language.Tag
	Seed         int64
	TurnInterval time.Duration
	LogLines     int
}

// Arena drives the enemy registry on a timer and keeps the on-screen state
// (positions, flashes, transcript tail) the viewer draws.
type Arena struct {
	ECS             *entity.ECS
	Registry        *game.Registry
	EventDispatcher *event.Dispatcher
	MovementSystem  *system.MovementSystem
	SpawnSystem     *system.SpawnSystem
	FlashSystem     *system.FlashSystem
	Log             *system.TurnLog
	Console         *console.Console
	Rng             *utils.PRNGService

	turnInterval float64
	turnTimer    float64
	paused       bool
}

// NewArena builds one enemy and one arena entity per definition in lib.
func NewArena(lib *defs.Library, opts Options) (*Arena, error) {
	if opts.TurnInterval <= 0 {
		opts.TurnInterval = config.DefaultTurnPeriod
	}
	if opts.LogLines <= 0 {
		opts.LogLines = config.LogLines
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	turnLog := system.NewTurnLog(opts.LogLines)
	out := console.New(turnLog, opts.Lang)
	rng := utils.NewPRNGService(opts.Seed)

	a := &Arena{
		ECS:             ecs,
		Registry:        game.NewRegistry(eventDispatcher),
		EventDispatcher: eventDispatcher,
		MovementSystem:  system.NewMovementSystem(ecs, config.ScreenWidth, config.PixelsPerSpeed),
		SpawnSystem: system.NewSpawnSystem(ecs, system.Layout{
			Top:        config.LaneTop,
			LaneHeight: config.LaneHeight,
			Width:      config.ScreenWidth,
			Jitter:     config.LaneJitter,
			Radius:     config.EnemyRadius,
		}, rng),
		FlashSystem:  system.NewFlashSystem(ecs, eventDispatcher, flashDuration),
		Log:          turnLog,
		Console:      out,
		Rng:          rng,
		turnInterval: opts.TurnInterval.Seconds(),
	}

	for i, def := range lib.Ordered() {
		e, err := enemy.New(def, out)
		if err != nil {
			return nil, err
		}
		a.Registry.AddEnemy(e)
		a.SpawnSystem.Spawn(i, def)
	}
	return a, nil
}

// Update advances the arena by deltaTime seconds and runs a registry turn
// each time the turn timer fills up.
func (a *Arena) Update(deltaTime float64) {
	if a.paused {
		return
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.ECS.GameTime += deltaTime
	a.MovementSystem.Update(deltaTime)
	a.FlashSystem.Update(deltaTime)

	a.turnTimer += deltaTime
	if a.turnTimer >= a.turnInterval {
		a.turnTimer = 0
		a.Step()
	}
}

// Step runs one registry turn immediately.
func (a *Arena) Step() {
	a.Console.Linef(i18n.ArenaTurnKey, strconv.Itoa(a.Registry.Turns()+1))
	a.Registry.Update()
}

// TogglePause stops or resumes the arena clock.
func (a *Arena) TogglePause() {
	a.paused = !a.paused
}

// Paused reports whether the clock is stopped.
func (a *Arena) Paused() bool {
	return a.paused
}

// Package main opens the enemy arena viewer.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"

	"go-enemy-drills/internal/app"
	"go-enemy-drills/internal/config"
	"go-enemy-drills/internal/defs"
	"go-enemy-drills/internal/i18n"
	"go-enemy-drills/internal/state"
)

// AppGame adapts the state machine to ebiten.Game.
type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

// Update advances the active state by the clamped frame time.
func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

// Draw renders the active state.
func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout keeps a fixed logical screen size.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	log.SetPrefix("[ARENA] ")
	log.SetFlags(0)

	cfg, err := config.ParseArena(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	lib, err := defs.Load(cfg.EnemyDefs, cfg.Only...)
	if err != nil {
		log.Fatalf("load definitions: %v", err)
	}
	log.Printf("loaded %d enemy definitions", lib.Len())

	arena, err := app.NewArena(lib, app.Options{
		Lang:         i18n.ResolveTag(cfg.Lang),
		Seed:         cfg.Seed,
		TurnInterval: cfg.TurnInterval,
	})
	if err != nil {
		log.Fatalf("build arena: %v", err)
	}

	face := basicfont.Face7x13
	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, arena, face))

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(arena.Console.Sprintf(i18n.ArenaTitleKey))
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// internal/state/arena_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"go-enemy-drills/internal/app"
	"go-enemy-drills/internal/config"
	"go-enemy-drills/internal/ui"
)

// ArenaState runs the registry and draws lanes plus the transcript tail.
type ArenaState struct {
	sm       *StateMachine
	arena    *app.Arena
	renderer *ui.RenderSystem
	logPanel *ui.LogPanel
	face     font.Face
}

func NewArenaState(sm *StateMachine, arena *app.Arena, face font.Face) *ArenaState {
	return &ArenaState{
		sm:       sm,
		arena:    arena,
		renderer: ui.NewRenderSystem(arena.ECS, face),
		logPanel: ui.NewLogPanel(arena.Log, face, config.TextMarginX, config.LogTop),
		face:     face,
	}
}

func (s *ArenaState) Enter() {
	if s.arena.Registry.Turns() == 0 {
		s.arena.Step() // first turn right away, not after the timer
	}
}

func (s *ArenaState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.arena.TogglePause()
		s.sm.SetState(NewPauseState(s.sm, s))
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		s.arena.Step()
	}
	s.arena.Update(deltaTime)
}

func (s *ArenaState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.renderer.Draw(screen)
	s.logPanel.Draw(screen)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Turn: %d  Enemies: %d  Time: %.1fs  [N] step  [P] pause",
		s.arena.Registry.Turns(), s.arena.Registry.Len(), s.arena.ECS.GameTime))
}

func (s *ArenaState) Exit() {}

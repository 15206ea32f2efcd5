// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-enemy-drills/internal/i18n"
	"go-enemy-drills/internal/ui"
)

var _ State = (*PauseState)(nil)

type PauseState struct {
	stateMachine  *StateMachine
	previousState *ArenaState
}

func NewPauseState(sm *StateMachine, prevState *ArenaState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.previousState.arena.TogglePause()
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	label := s.previousState.arena.Console.Sprintf(i18n.ArenaPausedKey)
	ui.DrawOverlay(screen, s.previousState.face, label)
}

func (s *PauseState) Exit() {}

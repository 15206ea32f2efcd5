// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"go-enemy-drills/internal/app"
	"go-enemy-drills/internal/config"
	"go-enemy-drills/internal/i18n"
	"go-enemy-drills/internal/ui"
)

// MenuState is the title screen shown before the arena.
type MenuState struct {
	sm    *StateMachine
	arena *app.Arena
	face  font.Face
}

func NewMenuState(sm *StateMachine, arena *app.Arena, face font.Face) *MenuState {
	return &MenuState{sm: sm, arena: arena, face: face}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewArenaState(m.sm, m.arena, m.face))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawCentered(screen, m.face, m.arena.Console.Sprintf(i18n.ArenaTitleKey), config.ScreenHeight/2-20)
	ui.DrawCentered(screen, m.face, m.arena.Console.Sprintf(i18n.ArenaStartKey), config.ScreenHeight/2+10)
}

func (m *MenuState) Exit() {}

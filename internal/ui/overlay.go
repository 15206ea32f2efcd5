// internal/ui/overlay.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-enemy-drills/internal/config"
)

// DrawCentered draws a line of text centered horizontally at y.
func DrawCentered(screen *ebiten.Image, face font.Face, s string, y int) {
	width := font.MeasureString(face, s).Round()
	text.Draw(screen, s, face, (config.ScreenWidth-width)/2, y, config.TextLightColor)
}

// DrawOverlay dims the whole screen and prints s in the middle.
func DrawOverlay(screen *ebiten.Image, face font.Face, s string) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	DrawCentered(screen, face, s, config.ScreenHeight/2)
}

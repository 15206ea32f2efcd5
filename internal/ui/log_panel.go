// internal/ui/log_panel.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-enemy-drills/internal/config"
	"go-enemy-drills/internal/system"
	"go-enemy-drills/internal/utils"
)

// LogPanel shows the tail of the registry transcript, older lines dimmer.
type LogPanel struct {
	log      *system.TurnLog
	fontFace font.Face
	x, y     int
}

func NewLogPanel(log *system.TurnLog, face font.Face, x, y int) *LogPanel {
	return &LogPanel{log: log, fontFace: face, x: x, y: y}
}

func (p *LogPanel) Draw(screen *ebiten.Image) {
	lines := p.log.Lines()
	if len(lines) > config.LogLines {
		lines = lines[len(lines)-config.LogLines:]
	}
	for i, line := range lines {
		t := float32(1)
		if len(lines) > 1 {
			t = float32(i) / float32(len(lines)-1)
		}
		alpha := uint8(utils.Lerp(90, 255, t))
		clr := color.RGBA{config.TextLightColor.R, config.TextLightColor.G, config.TextLightColor.B, alpha}
		text.Draw(screen, line, p.fontFace, p.x, p.y+i*config.TextLineHeight, clr)
	}
}

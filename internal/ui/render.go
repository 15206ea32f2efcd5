// internal/ui/render.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-enemy-drills/internal/config"
	"go-enemy-drills/internal/entity"
	"go-enemy-drills/internal/utils"
)

// RenderSystem draws the lanes and the enemies on them.
type RenderSystem struct {
	ecs  *entity.ECS
	face font.Face
}

func NewRenderSystem(ecs *entity.ECS, face font.Face) *RenderSystem {
	return &RenderSystem{ecs: ecs, face: face}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		e := s.ecs.Enemies[id]
		top := float32(e.BaseY - config.LaneHeight/2)
		vector.DrawFilledRect(screen, 0, top+2, config.ScreenWidth, config.LaneHeight-4, config.LaneColor, false)
	}

	for _, id := range entity.SortedIDs(s.ecs.Renderables) {
		render := s.ecs.Renderables[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}

		radius := render.Radius
		if flash, flashing := s.ecs.Flashes[id]; flashing {
			// flash ring shrinks down to the enemy radius
			ring := utils.Lerp(render.Radius*1.8, render.Radius, float32(flash.Progress()))
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), ring, config.TextLightColor, true)
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), radius, render.Color, true)

		if e, ok := s.ecs.Enemies[id]; ok {
			text.Draw(screen, e.Name, s.face, int(pos.X)-len(e.Name)*3, int(pos.Y)-int(radius)-4, nameColor(render.Color))
		}
	}
}

func nameColor(c color.RGBA) color.Color {
	if c.A < 200 {
		return config.TextDimColor
	}
	return config.TextLightColor
}

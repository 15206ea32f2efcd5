// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	// Console drills
	PromptArraySize = -1 // no size configured, ask on stdin

	// Arena viewer
	ScreenWidth       = 960
	ScreenHeight      = 600
	LaneHeight        = 90
	LaneTop           = 80
	LaneJitter        = 18.0
	PixelsPerSpeed    = 40.0 // pixels per second per unit of speed
	EnemyRadius       = 14.0
	MaxDeltaTime      = 0.06
	DefaultTurnPeriod = 2 * time.Second
	LogLines          = 12
	LogTop            = 360
	TextLineHeight    = 16
	TextMarginX       = 16
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	LaneColor       = color.RGBA{40, 50, 65, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{150, 150, 160, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 128}
)

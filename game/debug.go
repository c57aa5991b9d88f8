package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DebugState holds debug flags that persist across run restarts.
type DebugState struct {
	ShowGrid bool // draw spatial index cell lines
}

var globalDebugState = &DebugState{}

// GetDebugState returns the global debug state.
func GetDebugState() *DebugState {
	return globalDebugState
}

var gridLineColor = color.RGBA{60, 60, 80, 255}

// drawGridOverlay strokes the spatial index cell boundaries visible in
// the camera viewport.
func drawGridOverlay(screen *ebiten.Image, camera *Camera, cfg Config) {
	cell := cfg.CellSize

	// First vertical/horizontal world line at or left/above the viewport
	left := camera.Pos.X - camera.Width/2
	top := camera.Pos.Y - camera.Height/2
	startX := float64(int(left/cell)) * cell
	startY := float64(int(top/cell)) * cell

	for x := startX; x <= left+camera.Width+cell; x += cell {
		s := camera.WorldToScreen(Vec2{X: x, Y: top})
		vector.StrokeLine(screen, float32(s.X), 0, float32(s.X), float32(camera.Height), 1, gridLineColor, false)
	}
	for y := startY; y <= top+camera.Height+cell; y += cell {
		s := camera.WorldToScreen(Vec2{X: left, Y: y})
		vector.StrokeLine(screen, 0, float32(s.Y), float32(camera.Width), float32(s.Y), 1, gridLineColor, false)
	}
}

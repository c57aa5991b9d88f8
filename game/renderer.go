package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	playerColor = color.RGBA{80, 220, 100, 255}
	chaserColor = color.RGBA{220, 70, 70, 255}
	runnerColor = color.RGBA{250, 150, 60, 255}
	tankColor   = color.RGBA{160, 60, 180, 255}
	pickupColor = color.RGBA{90, 170, 255, 255}
	magnetColor = color.RGBA{160, 215, 255, 255} // pickup being pulled in

	hpBarBack = color.RGBA{90, 0, 0, 255}
	hpBarFill = color.RGBA{0, 220, 0, 255}
)

// Renderer draws the world through a camera. It only issues draw calls;
// it never mutates simulation state.
type Renderer struct {
	camera *Camera
}

// NewRenderer creates a renderer for the given camera.
func NewRenderer(camera *Camera) *Renderer {
	return &Renderer{camera: camera}
}

// Render draws every visible entity of the run.
func (r *Renderer) Render(screen *ebiten.Image, run *Run) {
	run.Registry().ForEachActive(KindAny, func(e *Entity) {
		if !e.Pos.IsFinite() || !r.camera.OnScreen(e.Pos, e.Radius) {
			return
		}
		r.renderEntity(screen, e)
	})
}

func (r *Renderer) renderEntity(screen *ebiten.Image, e *Entity) {
	s := r.camera.WorldToScreen(e.Pos)

	var clr color.Color
	switch e.Kind {
	case KindPlayer:
		clr = playerColor
	case KindEnemy:
		switch e.Archetype {
		case ArchetypeRunner:
			clr = runnerColor
		case ArchetypeTank:
			clr = tankColor
		default:
			clr = chaserColor
		}
	case KindPickup:
		clr = pickupColor
		if e.Magnetized {
			clr = magnetColor
		}
	default:
		clr = color.White
	}

	vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), float32(e.Radius), clr, true)

	// HP bar over damaged players and enemies
	if e.Kind != KindPickup && e.HP < e.MaxHP {
		barWidth := e.Radius * 2
		barHeight := 4.0
		barX := s.X - barWidth/2
		barY := s.Y - e.Radius - barHeight - 2

		vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barWidth), float32(barHeight), hpBarBack, true)
		fill := barWidth * (e.HP / e.MaxHP)
		vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(fill), float32(barHeight), hpBarFill, true)
	}
}

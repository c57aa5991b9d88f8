package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	hudText    = color.RGBA{235, 235, 235, 255}
	hudDim     = color.RGBA{150, 150, 150, 255}
	hudBarBack = color.RGBA{40, 40, 55, 255}
	hudHPFill  = color.RGBA{200, 60, 60, 255}
	hudXPFill  = color.RGBA{90, 170, 255, 255}
	panelBack  = color.RGBA{15, 15, 25, 230}
)

// HUD draws the run's overlay: bars, counters, the level-up choice panel
// and the end screen. Pure output; input handling stays in Game.
type HUD struct {
	width  int
	height int
}

// NewHUD creates a HUD for the given screen size.
func NewHUD(width, height int) *HUD {
	return &HUD{width: width, height: height}
}

// Draw renders the overlay for the run's current phase.
func (h *HUD) Draw(screen *ebiten.Image, run *Run) {
	h.drawBars(screen, run)
	h.drawCounters(screen, run)

	switch run.Phase() {
	case PhaseLevelUp:
		h.drawChoicePanel(screen, run)
	case PhasePaused:
		h.drawCenteredLines(screen, []string{"PAUSED", "press Esc to resume"})
	case PhaseEnded:
		h.drawEndScreen(screen, run)
	}
}

// drawBars draws the HP and experience bars along the top edge.
func (h *HUD) drawBars(screen *ebiten.Image, run *Run) {
	player := run.Player()
	prog := run.Progression()
	barWidth := float64(h.width) - 20

	vector.DrawFilledRect(screen, 10, 10, float32(barWidth), 14, hudBarBack, true)
	hpFrac := player.HP / player.MaxHP
	vector.DrawFilledRect(screen, 10, 10, float32(barWidth*hpFrac), 14, hudHPFill, true)

	vector.DrawFilledRect(screen, 10, 28, float32(barWidth), 8, hudBarBack, true)
	xpFrac := prog.Experience() / prog.ExperienceToNext()
	vector.DrawFilledRect(screen, 10, 28, float32(barWidth*xpFrac), 8, hudXPFill, true)
}

// drawCounters draws the timer, level, kill count and FPS.
func (h *HUD) drawCounters(screen *ebiten.Image, run *Run) {
	elapsed := int(run.Elapsed())
	stats := run.Stats()
	line := fmt.Sprintf("%02d:%02d  lv %d  kills %d  fps %.0f",
		elapsed/60, elapsed%60, stats.Level, stats.Kills, ebiten.ActualFPS())
	text.Draw(screen, line, basicfont.Face7x13, 10, 52, hudText)
}

// drawChoicePanel lists the offered upgrades with their number keys.
func (h *HUD) drawChoicePanel(screen *ebiten.Image, run *Run) {
	lines := []string{"LEVEL UP - choose an upgrade"}
	for i, opt := range run.Offered() {
		lines = append(lines, fmt.Sprintf("[%d] %s - %s", i+1, opt.Name, opt.Description))
	}
	h.drawCenteredLines(screen, lines)
}

// drawEndScreen shows the final statistics snapshot.
func (h *HUD) drawEndScreen(screen *ebiten.Image, run *Run) {
	stats := run.Stats()
	h.drawCenteredLines(screen, []string{
		fmt.Sprintf("RUN OVER - %s", stats.Cause),
		fmt.Sprintf("survived %.0fs, level %d, %d kills", stats.Elapsed, stats.Level, stats.Kills),
		"press R to restart",
	})
}

// drawCenteredLines draws a dark panel with one line of text per entry.
func (h *HUD) drawCenteredLines(screen *ebiten.Image, lines []string) {
	lineHeight := 20
	panelW := float32(420)
	panelH := float32(len(lines)*lineHeight + 30)
	panelX := float32(h.width)/2 - panelW/2
	panelY := float32(h.height)/2 - panelH/2

	vector.DrawFilledRect(screen, panelX, panelY, panelW, panelH, panelBack, true)
	for i, line := range lines {
		clr := hudText
		if i > 0 {
			clr = hudDim
		}
		x := int(panelX) + 20
		y := int(panelY) + 25 + i*lineHeight
		text.Draw(screen, line, basicfont.Face7x13, x, y, clr)
	}
}

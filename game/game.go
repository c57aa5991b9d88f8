package game

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"
)

var backgroundColor = color.RGBA{20, 20, 35, 255}

// Game glues the run to ebiten: it owns the real clock, the keyboard,
// and the draw path. The simulation itself never touches any of these;
// it only sees Tick(dt).
type Game struct {
	cfg      Config
	run      *Run
	camera   *Camera
	renderer *Renderer
	hud      *HUD

	lastUpdate time.Time
}

// NewGame validates the config and builds a game with a fresh run.
func NewGame(cfg Config) (*Game, error) {
	run, err := NewRun(cfg, 0, NewKeyboardInput())
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:        cfg,
		run:        run,
		camera:     NewCamera(float64(cfg.ScreenWidth), float64(cfg.ScreenHeight)),
		renderer:   nil,
		hud:        NewHUD(cfg.ScreenWidth, cfg.ScreenHeight),
		lastUpdate: time.Now(),
	}
	g.renderer = NewRenderer(g.camera)
	g.camera.Center(run.Player().Pos)
	return g, nil
}

// restart throws the old run away and reconstructs the game state. No
// in-place resetting of entities, just a new world.
func (g *Game) restart() {
	g.run.Stop()
	run, err := NewRun(g.cfg, 0, NewKeyboardInput())
	if err != nil {
		// The config already validated once; this cannot happen.
		log.WithError(err).Error("restart failed")
		return
	}
	g.run = run
	g.camera.Center(run.Player().Pos)
	log.Info("run restarted")
}

// Update implements ebiten.Game. It computes the real-time delta and
// forwards exactly one Tick per frame.
func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastUpdate).Seconds()
	g.lastUpdate = now

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		state := GetDebugState()
		state.ShowGrid = !state.ShowGrid
	}

	switch g.run.Phase() {
	case PhaseEnded:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.restart()
		}
	case PhaseLevelUp:
		for i := range g.run.Offered() {
			key := ebiten.Key(int(ebiten.KeyDigit1) + i)
			if inpututil.IsKeyJustPressed(key) {
				g.run.Choose(i)
				break
			}
		}
	default:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
			g.run.TogglePause()
		}
	}

	g.run.Tick(dt)
	g.camera.Follow(g.run.Player().Pos)
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	if GetDebugState().ShowGrid {
		drawGridOverlay(screen, g.camera, g.cfg)
	}
	g.renderer.Render(screen, g.run)
	g.hud.Draw(screen, g.run)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}

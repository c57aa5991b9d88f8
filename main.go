package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"hordelike/game"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg := game.DefaultConfig()
	g, err := game.NewGame(cfg)
	if err != nil {
		log.WithError(err).Fatal("cannot start game")
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Hordelike")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Fatal("game loop aborted")
	}
}

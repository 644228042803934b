package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fuelrun/jerrycan/internal/app"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "", "config file (default $JERRYCAN_CONFIG or "+app.DefaultConfigPath+")")
	seed := flag.Int64("seed", 0, "rng seed, 0 uses the configured seed")
	flag.Parse()

	rt, err := app.Boot(app.ConfigPath(*cfgPath))
	if err != nil {
		return err
	}
	defer rt.Close()

	win := rt.Config.Window
	h := newHost(rt.NewGame(*seed), rt.Config)

	rt.Log.Info("window opening",
		zap.String("title", win.Title),
		zap.Int("width", win.Width),
		zap.Int("height", win.Height),
	)
	ebiten.SetWindowSize(int(float64(win.Width)*win.Scale), int(float64(win.Height)*win.Scale))
	ebiten.SetWindowTitle(win.Title)
	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	rt.Log.Info("window closed", zap.Uint32("score", h.game.Score()))
	return nil
}

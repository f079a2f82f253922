//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"mad-sand/internal/app"
	"mad-sand/internal/audio"
	"mad-sand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	params, err := cfg.Params(flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}
	seed := cfg.ResolvedSeed()
	log.Printf("sand: seed=%d gravity=%d brush=%d density=%.2f cell=%d",
		seed, params.Gravity, params.BrushRadius, params.Density, params.CellSize)

	var sound *audio.Pourer
	if cfg.Sound {
		sound = audio.NewPourer()
		if err := sound.Init(); err != nil {
			log.Printf("sound disabled: %v", err)
			sound = nil
		} else {
			defer sound.Close()
		}
	}

	game := app.New(cfg, params, core.NewRNG(seed), sound)

	ebiten.SetWindowTitle("mad-sand")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width+cfg.HUDWidth, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

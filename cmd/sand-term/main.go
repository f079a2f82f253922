package main

import (
	"flag"
	"io"
	"log"
	"os"

	"mad-sand/internal/app"
	"mad-sand/internal/audio"
	"mad-sand/internal/core"
	"mad-sand/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "write log output to this file while the screen is active")
	flag.Parse()

	params, err := cfg.Params(flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}
	seed := cfg.ResolvedSeed()

	// The screen owns stdout until Fini.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}
	log.Printf("sand-term: seed=%d gravity=%d brush=%d density=%.2f cell=%d",
		seed, params.Gravity, params.BrushRadius, params.Density, params.CellSize)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("init screen: %v", err)
	}

	fe := term.New(screen, params, core.NewRNG(seed), cfg.TPS)
	fe.SetPreset(cfg.Preset)
	if cfg.Sound {
		sound := audio.NewPourer()
		if err := sound.Init(); err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			defer sound.Close()
			fe.SetSound(sound)
		}
	}

	runErr := fe.Run()
	screen.Fini()
	if runErr != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(runErr)
	}
}

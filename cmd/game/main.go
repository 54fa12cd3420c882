package main

import (
	"flag"
	"log"

	"github.com/Garsondee/Hoop-Sense/internal/config"
	"github.com/Garsondee/Hoop-Sense/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	flag.DurationVar(&cfg.RoundLength, "round", cfg.RoundLength, "round length")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "burst RNG seed (0 = time based)")
	flag.BoolVar(&cfg.ShowSensor, "sensor", cfg.ShowSensor, "show the rim sensor debug box")
	flag.IntVar(&cfg.WindowWidth, "width", cfg.WindowWidth, "window width")
	flag.IntVar(&cfg.WindowHeight, "height", cfg.WindowHeight, "window height")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Hoop Sense")
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	if err := ebiten.RunGame(game.New(cfg)); err != nil {
		log.Fatal(err)
	}
}

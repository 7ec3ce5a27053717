package main

import (
	"log"
	"strings"
	"time"

	"wire-ca/internal/sims/wireworld"
	"wire-ca/internal/term"

	"github.com/integrii/flaggy"
)

func main() {
	cfg := wireworld.DefaultConfig()
	cfg.Width = 80
	cfg.Height = 30
	interval := 100 * time.Millisecond

	flaggy.SetName("wwterm")
	flaggy.SetDescription("Wireworld circuits in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&cfg.Width, "x", "width", "Width of the grid in cells")
	flaggy.Int(&cfg.Height, "y", "height", "Height of the grid in cells")
	flaggy.Duration(&interval, "i", "interval", "Time between ticks, for example 150ms")
	flaggy.Int(&cfg.Workers, "w", "workers", "Goroutines sharing each tick")
	flaggy.String(&cfg.Pattern, "p", "pattern", "Layout placed on reset ["+strings.Join(wireworld.PatternNames(), "|")+"]")
	flaggy.Int64(&cfg.Seed, "s", "seed", "Seed for the random layout")
	flaggy.Parse()

	if interval <= 0 {
		flaggy.ShowHelpAndExit("interval must be positive")
	}

	eng, err := wireworld.NewWithConfig(cfg)
	if err != nil {
		log.Fatalf("create engine: %v", err)
	}
	eng.Reset(cfg.Seed)

	console, err := term.NewConsole(eng, interval, cfg.Seed)
	if err != nil {
		log.Fatal(err)
	}
	if err := console.Run(); err != nil {
		log.Fatal(err)
	}
}

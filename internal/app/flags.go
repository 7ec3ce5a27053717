package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	Width   int
	Height  int
	Workers int
	Pattern string
	Grid    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:     "wireworld",
		Scale:   10,
		TPS:     10,
		Seed:    42,
		Width:   64,
		Height:  64,
		Workers: 1,
		Pattern: "clock",
		Grid:    true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "cell pitch in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per tick")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "layout placed on reset")
	fs.BoolVar(&c.Grid, "grid", c.Grid, "draw lines between cells")
}

// SimConfig converts the flags into the key/value form sim factories accept.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"workers": strconv.Itoa(c.Workers),
		"pattern": c.Pattern,
		"seed":    strconv.FormatInt(c.Seed, 10),
	}
}

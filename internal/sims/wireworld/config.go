package wireworld

import "strconv"

// Config controls the engine dimensions, scan parallelism and the layout
// Reset stamps onto a cleared grid.
type Config struct {
	Width  int
	Height int

	// Workers is the number of goroutines sharing a tick's scan. Values
	// below 2 scan serially.
	Workers int

	// Pattern names the built-in layout placed by Reset; "empty" leaves the
	// grid blank.
	Pattern string

	// Seed drives the "random" pattern when Reset is called with seed 0.
	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   64,
		Height:  64,
		Workers: 1,
		Pattern: PatternClock,
		Seed:    1337,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Malformed or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok && v != "" {
		c.Pattern = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

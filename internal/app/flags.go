package app

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"parlife/internal/core"
	"parlife/internal/engine"
	"parlife/internal/world"
)

// Config represents the command-line parameters for the application.
type Config struct {
	WorldFile string
	Pattern   string
	Random    bool
	Width     int
	Height    int
	Density   float64
	Seed      int64

	Turns   int
	Delay   int // milliseconds between turns
	Workers int

	GUI   bool
	Scale int
	Plain bool
	Debug bool
}

// NewConfig returns a Config populated with the simulator defaults.
func NewConfig() *Config {
	return &Config{
		Width:   64,
		Height:  48,
		Density: 0.3,
		Seed:    42,
		Turns:   20,
		Delay:   100,
		Workers: 2,
		Scale:   3,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.WorldFile, "config", c.WorldFile, "world description file to load")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in starting pattern ("+strings.Join(world.Patterns(), ", ")+")")
	fs.BoolVar(&c.Random, "random", c.Random, "start from a random soup")
	fs.IntVar(&c.Width, "width", c.Width, "grid width for -pattern and -random worlds")
	fs.IntVar(&c.Height, "height", c.Height, "grid height for -pattern and -random worlds")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell probability for -random worlds")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for -random worlds")
	fs.IntVar(&c.Turns, "turns", c.Turns, "number of turns to simulate")
	fs.IntVar(&c.Delay, "delay", c.Delay, "pause between turns in milliseconds")
	fs.IntVar(&c.Workers, "workers", c.Workers, "number of worker goroutines")
	fs.BoolVar(&c.GUI, "gui", c.GUI, "render in a window instead of the terminal")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier for -gui")
	fs.BoolVar(&c.Plain, "plain", c.Plain, "print frames without clearing the terminal, for piped output")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log worker assignments and show the TPS overlay in -gui mode")
}

// Validate checks the configuration before any world is built or worker
// started.
func (c *Config) Validate() error {
	sources := 0
	if c.WorldFile != "" {
		sources++
	}
	if c.Pattern != "" {
		sources++
	}
	if c.Random {
		sources++
	}
	if sources == 0 {
		return fmt.Errorf("app: no world source, use -config, -pattern or -random")
	}
	if sources > 1 {
		return fmt.Errorf("app: -config, -pattern and -random are mutually exclusive")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("app: grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("app: density %v outside [0, 1]", c.Density)
	}
	if c.Turns < 0 {
		return fmt.Errorf("app: turn count must be non-negative, got %d", c.Turns)
	}
	if c.Delay < 0 {
		return fmt.Errorf("app: delay must be non-negative, got %d", c.Delay)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("app: worker count must be positive, got %d", c.Workers)
	}
	if c.Scale < 1 {
		return fmt.Errorf("app: scale must be at least 1, got %d", c.Scale)
	}
	return nil
}

// Summary returns the start-of-run line: the selected world source and the
// run parameters.
func (c *Config) Summary() string {
	return fmt.Sprintf("%s: %d turns, %d ms delay, %d workers", c.source(), c.Turns, c.Delay, c.Workers)
}

// source describes the selected world source.
func (c *Config) source() string {
	switch {
	case c.WorldFile != "":
		return "file " + c.WorldFile
	case c.Pattern != "":
		return "pattern " + c.Pattern
	default:
		return fmt.Sprintf("random %dx%d soup (density %v, seed %d)", c.Width, c.Height, c.Density, c.Seed)
	}
}

// World builds the initial grid from the selected source.
func (c *Config) World() (*core.Grid, error) {
	switch {
	case c.WorldFile != "":
		return world.FromFile(c.WorldFile)
	case c.Pattern != "":
		return world.FromPattern(c.Pattern, c.Width, c.Height)
	default:
		return world.Random(c.Width, c.Height, c.Density, c.Seed)
	}
}

// EngineConfig translates the command-line values into run parameters.
func (c *Config) EngineConfig() engine.Config {
	return engine.Config{
		Turns:   c.Turns,
		Delay:   time.Duration(c.Delay) * time.Millisecond,
		Workers: c.Workers,
		Verbose: c.Debug,
	}
}

package app

import (
	"flag"
	"fmt"
	"time"

	"mad-sand/internal/sand"
)

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Width    int
	Height   int
	HUDWidth int
	TPS      int
	Seed     int64
	Preset   string
	Sound    bool

	params sand.Params
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 800, Height: 600, HUDWidth: 220, TPS: 60, params: sand.DefaultParams()}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "initial simulation view width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "initial simulation view height in pixels")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.StringVar(&c.Preset, "preset", c.Preset, "JSON parameter preset to load and save")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play a pouring noise while painting")
	fs.IntVar(&c.params.Gravity, sand.KeyGravity, c.params.Gravity, "maximum cells a grain falls per tick")
	fs.IntVar(&c.params.BrushRadius, sand.KeyBrush, c.params.BrushRadius, "brush radius in pixels")
	fs.Float64Var(&c.params.Density, sand.KeyDensity, c.params.Density, "probability a brush cell is filled per pass")
	fs.IntVar(&c.params.CellSize, sand.KeyCellSize, c.params.CellSize, "pixels per simulation cell")
}

// Params resolves the simulation parameters: the preset (or defaults) first,
// then every parameter flag that was set explicitly on fs.
func (c *Config) Params(fs *flag.FlagSet) (sand.Params, error) {
	p := sand.DefaultParams()
	if c.Preset != "" {
		loaded, err := sand.LoadPreset(c.Preset)
		if err != nil {
			return sand.Params{}, fmt.Errorf("load preset: %w", err)
		}
		p = loaded
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case sand.KeyGravity:
			p.Gravity = c.params.Gravity
		case sand.KeyBrush:
			p.BrushRadius = c.params.BrushRadius
		case sand.KeyDensity:
			p.Density = c.params.Density
		case sand.KeyCellSize:
			p.CellSize = c.params.CellSize
		}
	})
	return p.Clamp(), nil
}

// ResolvedSeed returns the configured seed, or a clock-derived one when unset.
func (c *Config) ResolvedSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Rows   int
	Cols   int
	Scale  int
	TPS    int
	Seed   int64
	Preset string
	// RandomColors picks a stylistic palette instead of white-on-black.
	RandomColors bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Rows: 96, Cols: 128, Scale: 6, TPS: 15, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "board columns")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for board generation")
	fs.StringVar(&c.Preset, "preset", c.Preset, "initial pattern: block, blinker, glider, or random")
	fs.BoolVar(&c.RandomColors, "random-colors", c.RandomColors, "pick a random color palette")
}

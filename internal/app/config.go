package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Rule   string
	Config string
	Rows   int
	Scale  int
	SPS    int
	Seed   uint64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Rule: "gkl", Rows: 200, Scale: 3, SPS: 30, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Rule, "rule", c.Rule, "registered rule to display")
	fs.StringVar(&c.Config, "config", c.Config, "YAML configuration file for n and v")
	fs.IntVar(&c.Rows, "rows", c.Rows, "generations kept on screen")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.SPS, "sps", c.SPS, "automaton steps per second")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "seed for the initial configuration")
}

package app

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/pflag"
)

// Config represents the command-line parameters of `cellm run`.
type Config struct {
	Verbose  bool
	Fill     int
	Gen      []int
	Size     []int
	Seed     int64
	TPS      int
	Headless bool
	Steps    int
	Example  string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{TPS: 10, Steps: 100}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "print tokens, rules and per-generation progress")
	fs.IntVar(&c.Fill, "fill", c.Fill, "state written to every cell before seeding")
	fs.IntSliceVar(&c.Gen, "gen", c.Gen, "states scattered over a random quarter of the grid (repeatable)")
	fs.IntSliceVar(&c.Size, "size", c.Size, "grid size as `w,h`, overriding the render section")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random placement and random moves")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second in the window")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "run without a window and print per-generation populations")
	fs.IntVar(&c.Steps, "steps", c.Steps, "generations to run in headless mode")
	fs.StringVar(&c.Example, "example", c.Example, "run a bundled program instead of a file")
}

// Validate checks the values that pflag cannot.
func (c *Config) Validate() error {
	if len(c.Size) != 0 {
		if len(c.Size) != 2 {
			return fmt.Errorf("--size expects two values, got %d", len(c.Size))
		}
		if c.Size[0] <= 0 || c.Size[1] <= 0 {
			return fmt.Errorf("--size must be positive, got %dx%d", c.Size[0], c.Size[1])
		}
	}
	if c.Fill < 0 {
		return fmt.Errorf("--fill must not be negative, got %d", c.Fill)
	}
	if c.Steps < 0 {
		return fmt.Errorf("--steps must not be negative, got %d", c.Steps)
	}
	return nil
}

// GridSize returns the --size override, or zeros to keep the render section's.
func (c *Config) GridSize() (int, int) {
	if len(c.Size) != 2 {
		return 0, 0
	}
	return c.Size[0], c.Size[1]
}

// Logger returns the verbose logger, writing to w only with --verbose.
func (c *Config) Logger(w io.Writer) *log.Logger {
	if !c.Verbose {
		w = io.Discard
	}
	return log.New(w, "cellm: ", 0)
}

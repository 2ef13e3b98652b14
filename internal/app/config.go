package app

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"

	"life-sim/internal/core"
	"life-sim/internal/session"
)

// Title is the window caption; it doubles as the key binding help.
const Title = "Game of Life   Press esc to exit, space to reseed, up to speed up, down to slow down, left to pause, right to resume"

// Config represents the command-line parameters for the application.
type Config struct {
	Speed   int    `json:"speed"`
	Seed    int64  `json:"seed"`
	Workers int    `json:"workers"`
	HUD     bool   `json:"hud"`
	File    string `json:"-"`
}

// NewConfig returns a Config populated with the default speed. Seed 0 picks
// a time-based seed.
func NewConfig() *Config {
	return &Config{Speed: core.DefaultSpeed, Workers: 1}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Speed, "speed", c.Speed, "initial generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random world (0 = time based)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used to compute a generation")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the status line (overlay in ebiten, window title in SDL)")
	fs.StringVar(&c.File, "config", c.File, "optional JSON config file; explicit flags override it")
}

// LoadFile overlays values from a JSON file onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

// Parse binds c to fs, parses args and applies the config file if one was
// named. Flags set on the command line take precedence over the file.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.File == "" {
		return c.validate()
	}

	explicit := map[string]string{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
	if err := c.LoadFile(c.File); err != nil {
		return err
	}
	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return errors.Wrapf(err, "flag -%s", name)
		}
	}
	return c.validate()
}

func (c *Config) validate() error {
	if c.Speed < 1 {
		return errors.Errorf("speed must be at least 1, got %d", c.Speed)
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	return nil
}

// Session converts the application config into a session config.
func (c *Config) Session() session.Config {
	sc := session.DefaultConfig()
	sc.Speed = c.Speed
	sc.Seed = c.Seed
	sc.Workers = c.Workers
	return sc
}

// Package config loads blockfall settings from YAML, the environment and
// command line overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/plus3/blockfall/tetris"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Rules mirrors tetris.Rules with YAML field names. Durations are written as
// Go duration strings such as "1s" or "150ms".
type Rules struct {
	Columns             int           `yaml:"columns"`
	Rows                int           `yaml:"rows"`
	InitialDropInterval time.Duration `yaml:"initial_drop_interval"`
	DropIntervalStep    time.Duration `yaml:"drop_interval_step"`
	MinDropInterval     time.Duration `yaml:"min_drop_interval"`
	LinesPerLevel       int           `yaml:"lines_per_level"`
	LineScore           int           `yaml:"line_score"`
}

type Display struct {
	CellSize int `yaml:"cell_size"`
	FPS      int `yaml:"fps"`
}

type Spectate struct {
	// Addr is the listen address of the spectator server. Empty disables it.
	Addr     string        `yaml:"addr"`
	Interval time.Duration `yaml:"interval"`
}

type Config struct {
	Rules    Rules    `yaml:"rules"`
	Seed     uint64   `yaml:"seed"`
	LogLevel string   `yaml:"log_level"`
	Display  Display  `yaml:"display"`
	DebugUI  bool     `yaml:"debug_ui"`
	Spectate Spectate `yaml:"spectate"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	r := tetris.DefaultRules()
	return Config{
		Rules: Rules{
			Columns:             r.Columns,
			Rows:                r.Rows,
			InitialDropInterval: r.InitialDropInterval,
			DropIntervalStep:    r.DropIntervalStep,
			MinDropInterval:     r.MinDropInterval,
			LinesPerLevel:       r.LinesPerLevel,
			LineScore:           r.LineScore,
		},
		LogLevel: "info",
		Display: Display{
			CellSize: 24,
			FPS:      60,
		},
		Spectate: Spectate{
			Interval: 100 * time.Millisecond,
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults unchanged. Keys missing from the file keep their default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Environment variables recognized by ApplyEnv.
const (
	EnvSeed         = "BLOCKFALL_SEED"
	EnvLogLevel     = "BLOCKFALL_LOG_LEVEL"
	EnvSpectateAddr = "BLOCKFALL_SPECTATE_ADDR"
	EnvDebugUI      = "BLOCKFALL_DEBUG_UI"
)

// LoadDotEnv loads the given .env files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides fields from BLOCKFALL_* variables read through lookup.
// A nil lookup reads the process environment.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var errs []error
	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSeed, err))
		} else {
			c.Seed = seed
		}
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvSpectateAddr); ok {
		c.Spectate.Addr = v
	}
	if v, ok := lookup(EnvDebugUI); ok {
		on, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvDebugUI, err))
		} else {
			c.DebugUI = on
		}
	}
	return errors.Join(errs...)
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if err := c.TetrisRules().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("rules: %w", err))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if c.Display.CellSize <= 0 {
		errs = append(errs, errors.New("display.cell_size must be positive"))
	}
	if c.Display.FPS <= 0 {
		errs = append(errs, errors.New("display.fps must be positive"))
	}
	if c.Spectate.Addr != "" && c.Spectate.Interval <= 0 {
		errs = append(errs, errors.New("spectate.interval must be positive"))
	}
	return errors.Join(errs...)
}

// TetrisRules converts the rules section for tetris.WithRules.
func (c Config) TetrisRules() tetris.Rules {
	return tetris.Rules{
		Columns:             c.Rules.Columns,
		Rows:                c.Rules.Rows,
		InitialDropInterval: c.Rules.InitialDropInterval,
		DropIntervalStep:    c.Rules.DropIntervalStep,
		MinDropInterval:     c.Rules.MinDropInterval,
		LinesPerLevel:       c.Rules.LinesPerLevel,
		LineScore:           c.Rules.LineScore,
	}
}

// Level parses LogLevel. An empty level means info.
func (c Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

// FrameInterval is the wall time between frames at the configured FPS.
func (c Config) FrameInterval() time.Duration {
	if c.Display.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.Display.FPS)
}

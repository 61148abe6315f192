package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything the game binary can be tuned with.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Gravity GravityConfig `yaml:"gravity"`
	Player  PlayerConfig  `yaml:"player"`
	Keys    KeyConfig     `yaml:"keys"`
	Seed    int64         `yaml:"seed"`     // 0 picks a time-based seed
	LogFile string        `yaml:"log_file"` // empty discards logs
}

type BoardConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

type GravityConfig struct {
	Interval Duration `yaml:"interval"`
}

type PlayerConfig struct {
	Name string `yaml:"name"`
}

// KeyConfig maps each action to the key names (as reported by bubbletea)
// that trigger it.
type KeyConfig struct {
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Rotate  []string `yaml:"rotate"`
	Down    []string `yaml:"down"`
	Pause   []string `yaml:"pause"`
	Restart []string `yaml:"restart"`
	Quit    []string `yaml:"quit"`
}

// Duration is a time.Duration read from a YAML string such as "500ms".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file. Missing fields keep their
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Board.Height == 0 {
		c.Board.Height = 20
	}
	if c.Board.Width == 0 {
		c.Board.Width = 10
	}
	if c.Gravity.Interval == 0 {
		c.Gravity.Interval = Duration(500 * time.Millisecond)
	}

	k := &c.Keys
	if len(k.Left) == 0 {
		k.Left = []string{"left", "h"}
	}
	if len(k.Right) == 0 {
		k.Right = []string{"right", "l"}
	}
	if len(k.Rotate) == 0 {
		k.Rotate = []string{"up", "x", "k"}
	}
	if len(k.Down) == 0 {
		k.Down = []string{"down", "j"}
	}
	if len(k.Pause) == 0 {
		k.Pause = []string{"p"}
	}
	if len(k.Restart) == 0 {
		k.Restart = []string{"enter"}
	}
	if len(k.Quit) == 0 {
		k.Quit = []string{"q", "ctrl+c"}
	}
}

var ErrInvalid = errors.New("invalid config")

// Validate checks the values the game cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Board.Height < 4 {
		errs = append(errs, fmt.Errorf("board.height %d is below 4", c.Board.Height))
	}
	if c.Board.Width < 4 {
		errs = append(errs, fmt.Errorf("board.width %d is below 4", c.Board.Width))
	}
	if c.Board.Width%2 != 0 {
		errs = append(errs, fmt.Errorf("board.width %d must be even", c.Board.Width))
	}
	if c.Gravity.Interval <= 0 {
		errs = append(errs, fmt.Errorf("gravity.interval %s must be positive", c.Gravity.Interval.Std()))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

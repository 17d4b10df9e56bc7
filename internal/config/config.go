package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/ericogr/boss-cards/internal/cards"
	"github.com/ericogr/boss-cards/internal/constants"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Address string `yaml:"address" json:"address"`
}

type DatabaseConfig struct {
	Path string `yaml:"path" json:"path"`
}

type GameConfig struct {
	// ActionTimeout is how long the side to move may stay idle before the
	// timeout scanner plays its turn.
	ActionTimeout    time.Duration `yaml:"action_timeout" json:"action_timeout"`
	RosterSize       int           `yaml:"roster_size" json:"roster_size"`
	OpeningHand      int           `yaml:"opening_hand" json:"opening_hand"`
	DatasetPath      string        `yaml:"dataset_path" json:"dataset_path"`
	OpponentPriority []string      `yaml:"opponent_priority" json:"opponent_priority"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server"`
	Database DatabaseConfig `yaml:"database" json:"database"`
	Game     GameConfig     `yaml:"game" json:"game"`
}

// LoadedConfig is the validated configuration together with the card
// dataset it points at.
type LoadedConfig struct {
	Config
	Cards *cards.Dataset
}

// ApplyDefaults fills every unset value.
func (c *Config) ApplyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = constants.DefaultAddress
	}
	if c.Database.Path == "" {
		c.Database.Path = constants.DefaultDBPath
	}
	if c.Game.ActionTimeout == 0 {
		c.Game.ActionTimeout = 2 * time.Minute
	}
	if c.Game.RosterSize == 0 {
		c.Game.RosterSize = 3
	}
	if c.Game.OpeningHand == 0 {
		c.Game.OpeningHand = 3
	}
}

// envOverrides are the settings the environment may override. Unset
// variables leave the file values alone.
type envOverrides struct {
	DBPath        string        `env:"BOSSCARDS_DB"`
	Address       string        `env:"BOSSCARDS_ADDR"`
	ActionTimeout time.Duration `env:"BOSSCARDS_ACTION_TIMEOUT"`
}

func (c *Config) applyEnv() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if v := strings.TrimSpace(o.DBPath); v != "" {
		c.Database.Path = v
	}
	if v := strings.TrimSpace(o.Address); v != "" {
		c.Server.Address = v
	}
	if o.ActionTimeout != 0 {
		c.Game.ActionTimeout = o.ActionTimeout
	}
	return nil
}

// LoadConfig reads the YAML file at path (a missing file means all
// defaults), applies BOSSCARDS_* env overrides, loads the card dataset and validates
// the values against it.
func LoadConfig(path string) (*LoadedConfig, error) {
	var c Config
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	c.ApplyDefaults()
	if err := c.applyEnv(); err != nil {
		return nil, err
	}

	ds := cards.Default()
	if p := strings.TrimSpace(c.Game.DatasetPath); p != "" {
		if ds, err = cards.Load(p); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}
	if err := c.validate(ds); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return &LoadedConfig{Config: c, Cards: ds}, nil
}

func (c *Config) validate(ds *cards.Dataset) error {
	if c.Game.ActionTimeout <= 0 {
		return fmt.Errorf("game.action_timeout must be positive")
	}
	if c.Game.RosterSize < 0 || c.Game.RosterSize > len(ds.Adventurers) {
		return fmt.Errorf("game.roster_size must be between 1 and %d", len(ds.Adventurers))
	}
	if c.Game.OpeningHand < 0 {
		return fmt.Errorf("game.opening_hand must not be negative")
	}
	for _, name := range c.Game.OpponentPriority {
		if _, ok := ds.Support(name); !ok {
			return fmt.Errorf("game.opponent_priority: unknown support card '%s'", name)
		}
	}
	return nil
}

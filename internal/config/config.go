package config

import (
	"errors"
	"os"
	"time"

	"chiptracker/internal/util"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

const defaultConfigFile = "config.yaml"

// Seat is a player taking a seat when the server starts
type Seat struct {
	Name  string `yaml:"name"`
	Seat  *int   `yaml:"seat,omitempty"`
	Chips *int   `yaml:"chips,omitempty"`
}

// Table configures the table and the dealer running it
type Table struct {
	SmallBlind   int    `yaml:"smallBlind" envconfig:"small_blind"`
	BigBlind     int    `yaml:"bigBlind" envconfig:"big_blind"`
	DefaultChips int    `yaml:"defaultChips" envconfig:"default_chips"`
	Seats        []Seat `yaml:"seats" ignored:"true"`

	// TurnTimeout is how long a player may hold the action, zero disables the clock
	TurnTimeout time.Duration `yaml:"turnTimeout" envconfig:"turn_timeout"`
	UndoDepth   int           `yaml:"undoDepth" envconfig:"undo_depth"`
}

// Config provides configuration for the chip tracker
type Config struct {
	loaded            bool
	Addr              string `yaml:"addr" envconfig:"addr"`
	LogLevel          string `yaml:"logLevel" envconfig:"log_level"`
	DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	Table             Table  `yaml:"table"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	return Config{
		Addr:     ":5000",
		LogLevel: "info",
		Table: Table{
			SmallBlind:   10,
			BigBlind:     20,
			DefaultChips: 1000,
			UndoDepth:    50,
		},
	}
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config.yaml is fine, the defaults and the environment are used instead. A
// file named by CT_CONFIG_FILE must exist.
func Load() error {
	configFile := util.Getenv("CT_CONFIG_FILE", defaultConfigFile)

	cfg := DefaultConfig()
	file, err := os.Open(configFile)
	switch {
	case err == nil:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	case errors.Is(err, os.ErrNotExist) && configFile == defaultConfigFile:
	default:
		return err
	}

	if err := envconfig.Process("ct", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

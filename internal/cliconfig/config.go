// Package cliconfig assembles the game's configuration from defaults, an
// optional TOML file, RUSTYKONG_* environment variables, and command-line
// flags, in that order of increasing precedence.
package cliconfig

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rx80/rusty-kong/internal/game"
	"github.com/rx80/rusty-kong/pkg/log"
)

// Config is the full runtime configuration of the game binary.
type Config struct {
	// TickInterval is the wall-clock duration of one scheduler tick.
	TickInterval time.Duration
	// MaxTicks bounds the run; zero means run until interrupted.
	MaxTicks uint64
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// Rules are the gameplay tick budgets and scoring parameters.
	Rules game.Rules
}

// DefaultConfig returns the stock configuration: 60 ticks per second and
// the default arcade pacing.
func DefaultConfig() Config {
	return Config{
		TickInterval: 16 * time.Millisecond,
		MaxTicks:     0,
		LogLevel:     "info",
		Rules:        game.DefaultRules(),
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't been
// explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not
// changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setUint64FromString parses a string to uint64 and sets the destination.
// Zero is a valid value ("run forever"), so only parse failures are skipped.
func (s *configSetter) setUint64FromString(flag, value string, dst *uint64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	u, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = u
	return nil
}

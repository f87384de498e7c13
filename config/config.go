// Package config loads grove settings from a file, the environment and
// defaults.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dhamidi/grove/format"
)

var (
	ErrInvalidFormat     = errors.New("invalid dump format")
	ErrInvalidScriptName = errors.New("invalid script name")
	ErrInvalidVerbosity  = errors.New("invalid log verbosity")
)

// Config is the top-level configuration. Field tags use mapstructure for
// viper unmarshalling.
type Config struct {
	Dump   DumpConfig   `mapstructure:"dump"`
	Script ScriptConfig `mapstructure:"script"`
	Log    LogConfig    `mapstructure:"log"`
}

// DumpConfig controls how trees are printed.
type DumpConfig struct {
	Format    string `mapstructure:"format"`
	Color     bool   `mapstructure:"color"`
	Positions bool   `mapstructure:"positions"`
	Snippets  bool   `mapstructure:"snippets"`
}

// ScriptConfig names the class that holds top-level code.
type ScriptConfig struct {
	Name string `mapstructure:"name"`
}

type LogConfig struct {
	Verbosity int    `mapstructure:"verbosity"`
	File      string `mapstructure:"file"`
}

// DumpOptions converts the dump settings for the format package.
func (c *Config) DumpOptions() format.Options {
	return format.Options{
		Positions: c.Dump.Positions,
		Snippets:  c.Dump.Snippets,
		Color:     c.Dump.Color,
	}
}

// Validate checks the values that the loader cannot check by type.
func (c *Config) Validate() error {
	if !slices.Contains(format.Names(), c.Dump.Format) {
		return fmt.Errorf("%w: %q (expected %s)", ErrInvalidFormat, c.Dump.Format, strings.Join(format.Names(), ", "))
	}
	if c.Script.Name == "" || strings.ContainsAny(c.Script.Name, ". $") {
		return fmt.Errorf("%w: %q", ErrInvalidScriptName, c.Script.Name)
	}
	if c.Log.Verbosity < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidVerbosity, c.Log.Verbosity)
	}
	return nil
}

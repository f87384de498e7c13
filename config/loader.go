package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/dhamidi/grove/format"
	"github.com/dhamidi/grove/groovy/transform"
)

const (
	configName = ".grove"
	configType = "yaml"
	envPrefix  = "GROVE"
)

// Defaults.
const (
	DefaultDumpFormat    = format.Tree
	DefaultDumpColor     = false
	DefaultDumpPositions = true
	DefaultDumpSnippets  = false
	DefaultScriptName    = transform.DefaultScriptName
	DefaultLogVerbosity  = 0
)

// Load reads configuration from configPath, or from .grove.yaml in the
// working directory or $HOME when configPath is empty. A missing file in
// the search path is not an error. Environment variables named
// GROVE_<SECTION>_<KEY> override the file.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("dump.format", DefaultDumpFormat)
	v.SetDefault("dump.color", DefaultDumpColor)
	v.SetDefault("dump.positions", DefaultDumpPositions)
	v.SetDefault("dump.snippets", DefaultDumpSnippets)
	v.SetDefault("script.name", DefaultScriptName)
	v.SetDefault("log.verbosity", DefaultLogVerbosity)
	v.SetDefault("log.file", "")
}

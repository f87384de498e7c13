package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ".grove.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func validConfig() Config {
	return Config{
		Dump:   DumpConfig{Format: "json"},
		Script: ScriptConfig{Name: "Build"},
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "tree", cfg.Dump.Format)
	assert.True(t, cfg.Dump.Positions)
	assert.False(t, cfg.Dump.Color)
	assert.Equal(t, "Script", cfg.Script.Name)
	assert.Equal(t, 0, cfg.Log.Verbosity)
}

func TestLoadSearchesWorkingDirectory(t *testing.T) {
	isolate(t)
	writeConfig(t, ".", "dump:\n  format: yaml\n  snippets: true\nscript:\n  name: Build\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Dump.Format)
	assert.True(t, cfg.Dump.Snippets)
	assert.Equal(t, "Build", cfg.Script.Name)
}

func TestLoadExplicitFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), "log:\n  verbosity: 2\n  file: grove.log\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Log.Verbosity)
	assert.Equal(t, "grove.log", cfg.Log.File)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	isolate(t)
	writeConfig(t, ".", "dump:\n  format: yaml\n")
	t.Setenv("GROVE_DUMP_FORMAT", "outline")
	t.Setenv("GROVE_DUMP_COLOR", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "outline", cfg.Dump.Format)
	assert.True(t, cfg.Dump.Color)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  error
	}{
		{
			name:  "bad yaml",
			setup: func(t *testing.T) string { return writeConfig(t, t.TempDir(), "dump: [\n") },
		},
		{
			name:  "unknown format",
			setup: func(t *testing.T) string { return writeConfig(t, t.TempDir(), "dump:\n  format: xml\n") },
			want:  ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, err := Load(tt.setup(t))
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"valid", func(*Config) {}, nil},
		{"empty format", func(c *Config) { c.Dump.Format = "" }, ErrInvalidFormat},
		{"unknown format", func(c *Config) { c.Dump.Format = "html" }, ErrInvalidFormat},
		{"empty script name", func(c *Config) { c.Script.Name = "" }, ErrInvalidScriptName},
		{"qualified script name", func(c *Config) { c.Script.Name = "a.B" }, ErrInvalidScriptName},
		{"negative verbosity", func(c *Config) { c.Log.Verbosity = -1 }, ErrInvalidVerbosity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDumpOptions(t *testing.T) {
	cfg := validConfig()
	cfg.Dump.Color = true
	cfg.Dump.Snippets = true

	opts := cfg.DumpOptions()
	assert.True(t, opts.Color)
	assert.True(t, opts.Snippets)
	assert.False(t, opts.Positions)
	assert.Nil(t, opts.Source)
}

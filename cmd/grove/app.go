package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/grove/config"
	"github.com/dhamidi/grove/groovy/cst"
	"github.com/dhamidi/grove/groovy/frontend"
	"github.com/dhamidi/grove/groovy/source"
	"github.com/dhamidi/grove/groovy/transform"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	verbose    int
	logFile    string

	cfg *config.Config
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Log.Verbosity = a.verbose
	}
	if a.logFile != "" {
		cfg.Log.File = a.logFile
	}
	a.cfg = cfg

	var path *string
	if cfg.Log.File != "" {
		path = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity, path)
	return nil
}

// dumpFlags binds the dump settings of a command. Flags that were not
// given keep the configured values.
type dumpFlags struct {
	format     string
	color      bool
	positions  bool
	snippets   bool
	sourcePath string
}

func (d *dumpFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&d.format, "format", "f", config.DefaultDumpFormat, "output format (tree, json, yaml, outline)")
	cmd.Flags().BoolVar(&d.color, "color", config.DefaultDumpColor, "highlight tree output")
	cmd.Flags().BoolVar(&d.positions, "positions", config.DefaultDumpPositions, "include source spans")
	cmd.Flags().BoolVar(&d.snippets, "snippets", config.DefaultDumpSnippets, "include source snippets (needs --source)")
	cmd.Flags().StringVarP(&d.sourcePath, "source", "s", "", "source file the tree was parsed from")
}

func (d *dumpFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("format") {
		cfg.Dump.Format = d.format
	}
	if cmd.Flags().Changed("color") {
		cfg.Dump.Color = d.color
	}
	if cmd.Flags().Changed("positions") {
		cfg.Dump.Positions = d.positions
	}
	if cmd.Flags().Changed("snippets") {
		cfg.Dump.Snippets = d.snippets
	}
	return cfg.Validate()
}

// frontend returns a front end that reads the serialized tree at
// treePath. The returned function releases the file.
func (a *app) frontend(treePath string) (*frontend.Frontend, func(), error) {
	tree, err := os.Open(treePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open tree: %w", err)
	}
	t := transform.New(transform.WithScriptName(a.cfg.Script.Name))
	fe := frontend.New(&cst.JSONParser{Tree: tree}, frontend.WithTransformer(t))
	return fe, func() { tree.Close() }, nil
}

// openSource opens the source file, or an empty reader when path is
// empty.
func openSource(path string) (io.ReadCloser, string, error) {
	if path == "" {
		return io.NopCloser(strings.NewReader("")), "<none>", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open source: %w", err)
	}
	return f, path, nil
}

// parsePosition reads "line:column".
func parsePosition(s string) (source.Position, error) {
	line, col, ok := strings.Cut(s, ":")
	if !ok {
		return source.Position{}, fmt.Errorf("invalid position %q (expected line:column)", s)
	}
	l, err := strconv.Atoi(line)
	if err != nil {
		return source.Position{}, fmt.Errorf("invalid line in %q: %w", s, err)
	}
	c, err := strconv.Atoi(col)
	if err != nil {
		return source.Position{}, fmt.Errorf("invalid column in %q: %w", s, err)
	}
	return source.Position{Line: l, Column: c}, nil
}

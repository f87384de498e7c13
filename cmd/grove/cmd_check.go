package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"

	"github.com/dhamidi/grove/groovy/diag"
)

func newCheckCmd(a *app) *cobra.Command {
	var sourcePath string
	var lsp bool

	cmd := &cobra.Command{
		Use:   "check <cst.json>",
		Short: "Convert a serialized syntax tree and report problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fe, closeTree, err := a.frontend(args[0])
			if err != nil {
				return err
			}
			defer closeTree()

			src, name, err := openSource(sourcePath)
			if err != nil {
				return err
			}
			defer src.Close()

			unit, err := fe.Compile(name, src)
			diags := diag.FromError(err, unit.Buffer)

			if lsp {
				if err := writeLSP(cmd.OutOrStdout(), documentURI(sourcePath, args[0]), diags); err != nil {
					return err
				}
			} else {
				writeDiagnostics(cmd.OutOrStdout(), name, diags)
			}

			if len(diags) > 0 {
				return fmt.Errorf("%s: %s", name, english.Plural(len(diags), "problem", ""))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&sourcePath, "source", "s", "", "source file the tree was parsed from")
	cmd.Flags().BoolVar(&lsp, "lsp", false, "print a textDocument/publishDiagnostics payload")

	return cmd
}

func writeDiagnostics(w io.Writer, name string, diags []diag.Diagnostic) {
	if len(diags) == 0 {
		fmt.Fprintf(w, "%s: ok\n", name)
		return
	}
	for _, d := range diags {
		fmt.Fprintf(w, "%s:%s\n", name, d)
		if d.Snippet != "" {
			fmt.Fprintf(w, "\t%s\n", strconv.Quote(d.Snippet))
		}
	}
}

func writeLSP(w io.Writer, uri string, diags []diag.Diagnostic) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(diag.ToLSP(uri, diags)); err != nil {
		return fmt.Errorf("encode diagnostics: %w", err)
	}
	return nil
}

// documentURI names the source file, or the tree when there is none.
func documentURI(sourcePath, treePath string) string {
	path := sourcePath
	if path == "" {
		path = treePath
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return "file://" + filepath.ToSlash(path)
}

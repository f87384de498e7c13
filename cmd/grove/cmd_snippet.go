package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/grove/groovy/source"
)

func newSnippetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snippet <source> <start> <end>",
		Short: "Print the decoded source text between two line:column positions",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parsePosition(args[1])
			if err != nil {
				return err
			}
			end, err := parsePosition(args[2])
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open source: %w", err)
			}
			defer f.Close()

			buf := source.NewBuffer()
			if _, err := io.Copy(io.Discard, source.NewEscapingReader(f, buf)); err != nil {
				return fmt.Errorf("read source: %w", err)
			}

			text, ok := buf.Snippet(start, end)
			if !ok {
				return fmt.Errorf("no text between %s and %s", start, end)
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

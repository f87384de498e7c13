package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/dhamidi/grove/format"
	"github.com/dhamidi/grove/groovy/frontend"
)

func newConvertCmd(a *app) *cobra.Command {
	var flags dumpFlags
	var summary bool

	cmd := &cobra.Command{
		Use:   "convert <cst.json>",
		Short: "Convert a serialized syntax tree into an AST and dump it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.apply(cmd, a.cfg); err != nil {
				return err
			}

			fe, closeTree, err := a.frontend(args[0])
			if err != nil {
				return err
			}
			defer closeTree()

			src, name, err := openSource(flags.sourcePath)
			if err != nil {
				return err
			}
			defer src.Close()

			start := time.Now()
			unit, err := fe.Compile(name, src)
			if err != nil {
				return err
			}
			if summary {
				writeSummary(cmd.ErrOrStderr(), unit, time.Since(start))
			}

			opts := a.cfg.DumpOptions()
			opts.Source = unit.Buffer
			if err := format.Module(cmd.OutOrStdout(), a.cfg.Dump.Format, unit.Module, opts); err != nil {
				return fmt.Errorf("encode %s: %w", a.cfg.Dump.Format, err)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&summary, "summary", false, "print unit statistics to stderr")

	return cmd
}

func writeSummary(w io.Writer, unit *frontend.Unit, took time.Duration) {
	methods := len(unit.Module.Methods)
	for _, c := range unit.Module.Classes {
		methods += len(c.Methods) + len(c.Constructors)
	}
	fmt.Fprintf(w, "%s: %s of source, %s tree nodes, %s classes, %s methods, %s statements in %s\n",
		unit.Name,
		humanize.Bytes(uint64(len(unit.Buffer.String()))),
		humanize.Comma(int64(unit.CST.Count())),
		humanize.Comma(int64(len(unit.Module.Classes))),
		humanize.Comma(int64(methods)),
		humanize.Comma(int64(len(unit.Module.Statements.Statements))),
		took.Round(time.Microsecond),
	)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/grove/format"
)

func newAnnotateCmd(a *app) *cobra.Command {
	var flags dumpFlags

	cmd := &cobra.Command{
		Use:   "annotate <cst.json>",
		Short: "Fill in the end positions of a serialized syntax tree and dump it",
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

			unit, err := fe.Parse(name, src)
			if err != nil {
				return err
			}

			opts := a.cfg.DumpOptions()
			opts.Source = unit.Buffer
			if err := format.CST(cmd.OutOrStdout(), a.cfg.Dump.Format, unit.CST, opts); err != nil {
				return fmt.Errorf("encode %s: %w", a.cfg.Dump.Format, err)
			}
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

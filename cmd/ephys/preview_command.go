package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viant/ephys/table"
)

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	var rows int

	cmd := &cobra.Command{
		Use:   "preview <table.csv>",
		Short: "Show the first rows of a signal table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("rows") {
				rows = ctx.configValue().Preview.Rows
			}
			if rows < 0 {
				return fmt.Errorf("rows must not be negative")
			}
			signals, err := table.Load(cmd.Context(), ctx.fs, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, signals.Preview(rows))
			fmt.Fprintf(out, "%d of %d rows, time column %q\n", min(rows, signals.Len()), signals.Len(), signals.TimeColumn())
			return nil
		},
	}

	cmd.Flags().IntVarP(&rows, "rows", "n", 0, "Number of rows to show (defaults to preview.rows)")
	return cmd
}

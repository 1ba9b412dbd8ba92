package main

import (
	"fmt"
	"path"

	"github.com/spf13/cobra"

	"github.com/viant/ephys/recording"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list <folder>",
		Short: "List recording sessions found in a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := recording.NewDetector(ctx.fs).Discover(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(sessions) == 0 {
				fmt.Fprintf(out, "No sessions found in %s\n", args[0])
				return nil
			}
			rows := make([][]string, 0, len(sessions))
			for _, session := range sessions {
				base := "-"
				if session.Base != "" {
					base = path.Base(session.Base)
				}
				rows = append(rows, []string{
					path.Base(session.Table),
					path.Base(session.VoltageOutput),
					path.Base(session.VoltageRecording),
					base,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Signal table", "Voltage output", "Voltage recording", "Session"},
				rows,
				nil,
			))
			return nil
		},
	}
}

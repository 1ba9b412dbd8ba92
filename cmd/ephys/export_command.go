package main

import (
	"bytes"
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viant/ephys/recording"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var flags sessionFlags
	var destination string

	cmd := &cobra.Command{
		Use:   "export <table.csv> <output.xml> <recording.xml>",
		Short: "Export loaded session metadata as YAML",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := flags.paths(args)
			if err != nil {
				return err
			}
			descriptor, err := recording.New(cmd.Context(), paths, ctx.descriptorOptions(cmd)...)
			if err != nil {
				return err
			}
			if !descriptor.Loaded() {
				if err := descriptor.Load(cmd.Context()); err != nil {
					return err
				}
			}
			data, err := descriptor.ExportYAML()
			if err != nil {
				return err
			}
			if destination == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := ctx.upload(cmd.Context(), destination, data); err != nil {
				return fmt.Errorf("write export %s: %w", destination, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", descriptor.PatchID, destination)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&destination, "output", "o", "", "Destination URL or path (defaults to stdout)")
	return cmd
}

func (c *commandContext) upload(ctx context.Context, destination string, data []byte) error {
	return c.fs.Upload(ctx, destination, 0o644, bytes.NewReader(data))
}

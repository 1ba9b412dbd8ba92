package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viant/ephys/recording"
	"github.com/viant/ephys/voltage"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var flags sessionFlags
	var folder string

	cmd := &cobra.Command{
		Use:   "inspect [table.csv output.xml recording.xml]",
		Short: "Load sessions and describe their channels and signals",
		Args: func(cmd *cobra.Command, args []string) error {
			if folder != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(3)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if folder != "" {
				return inspectFolder(cmd, ctx, folder)
			}
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
			return describe(out, descriptor)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&folder, "folder", "", "Discover and inspect every session in a folder")
	return cmd
}

func inspectFolder(cmd *cobra.Command, ctx *commandContext, folder string) error {
	out := cmd.OutOrStdout()
	sessions, err := recording.NewDetector(ctx.fs).Discover(cmd.Context(), folder)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintf(out, "No sessions found in %s\n", folder)
		return nil
	}
	results := recording.LoadBatch(cmd.Context(), sessions, ctx.configValue().Load.Workers, ctx.descriptorOptions(cmd)...)
	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
			fmt.Fprintf(out, "%s: %v\n", result.Paths.Table, result.Err)
			continue
		}
		fmt.Fprintln(out, result.Descriptor.Summary().String())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d sessions failed to load", failed, len(results))
	}
	return nil
}

func describe(out io.Writer, descriptor *recording.Descriptor) error {
	channels, err := descriptor.Channels()
	if err != nil {
		return err
	}
	waveforms, err := descriptor.Waveforms()
	if err != nil {
		return err
	}
	rec, err := descriptor.Recording()
	if err != nil {
		return err
	}
	mismatches, err := descriptor.Mismatches()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, descriptor.Summary().String())
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderTable(
		[]string{"Key", "Output", "Waveform components"},
		outputRows(channels, waveforms),
		[]columnAlignment{alignLeft, alignLeft, alignLeft},
	))
	fmt.Fprintln(out, renderTable(
		[]string{"Signal", "Unit", "Scale", "Type", "Gain", "Channel", "Enabled"},
		signalRows(rec),
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignRight, alignRight, alignLeft},
	))
	for _, mismatch := range mismatches {
		fmt.Fprintf(out, "warning: %s\n", mismatch.String())
	}
	return nil
}

func outputRows(channels *voltage.Channels, waveforms voltage.Waveforms) [][]string {
	rows := make([][]string, 0, channels.Len())
	for _, key := range channels.Keys() {
		channel, _ := channels.Get(key)
		components := strings.Join(waveforms[key], ", ")
		if components == "" {
			components = "-"
		}
		rows = append(rows, []string{key, channel.Name, components})
	}
	return rows
}

func signalRows(rec *voltage.Recording) [][]string {
	rows := make([][]string, 0, len(rec.Order))
	for _, name := range rec.Order {
		signal, ok := rec.Signal(name)
		if !ok {
			continue
		}
		rows = append(rows, []string{
			signal.Name,
			signal.UnitName,
			formatFloat(signal.ScaleFactor()),
			signal.Type,
			formatFloat(signal.Gain),
			strconv.Itoa(signal.ChannelNumber),
			yesNo(signal.IsEnabled()),
		})
	}
	return rows
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

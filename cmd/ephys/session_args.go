package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viant/ephys/recording"
)

// sessionFlags binds the optional base document flag shared by session commands
type sessionFlags struct {
	base string
}

func (f *sessionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.base, "base", "", "Optional PVScan session document")
}

func (f *sessionFlags) paths(args []string) (recording.Paths, error) {
	if len(args) != 3 {
		return recording.Paths{}, fmt.Errorf("expected signal table, voltage output and voltage recording paths; got %d argument(s)", len(args))
	}
	return recording.Paths{
		Table:            args[0],
		VoltageOutput:    args[1],
		VoltageRecording: args[2],
		Base:             f.base,
	}, nil
}

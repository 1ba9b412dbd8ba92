package recording

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Summary describes currently loaded session state
type Summary struct {
	PatchID      string
	Loaded       bool
	Version      string
	Outputs      int
	Signals      int // enabled recorded signals
	Units        []string
	Waveforms    int
	SamplingRate float64 // Hz
	Duration     time.Duration
	Rows         int
}

// Summary returns a summary of loaded state; it never triggers a load
func (d *Descriptor) Summary() Summary {
	summary := Summary{PatchID: d.PatchID}
	data := d.data
	if data == nil {
		return summary
	}
	summary.Loaded = true
	if data.base != nil {
		summary.Version = data.base.Version
	}
	summary.Outputs = data.channels.Len()
	summary.Signals = len(data.recording.EnabledSignals())
	summary.Units = data.recording.Units()
	summary.Waveforms = data.waveforms.Count()
	summary.SamplingRate = data.recording.Session.SamplingRate
	summary.Duration = data.recording.Session.Duration()
	summary.Rows = data.table.Len()
	return summary
}

func (s Summary) String() string {
	if !s.Loaded {
		return s.PatchID + " (not loaded)"
	}
	builder := strings.Builder{}
	builder.WriteString(s.PatchID)
	builder.WriteString(": PVScan")
	if s.Version != "" {
		builder.WriteString(" (v" + s.Version + ")")
	}
	builder.WriteString(fmt.Sprintf(" with %d channels", s.Signals))
	if len(s.Units) > 0 {
		builder.WriteString(" (" + strings.Join(s.Units, ", ") + ")")
	}
	builder.WriteString(fmt.Sprintf(", %d outputs", s.Outputs))
	builder.WriteString(", sampled at " + strconv.FormatFloat(s.SamplingRate/1000, 'f', -1, 64) + " kHz")
	builder.WriteString(fmt.Sprintf(", with a total length of %.2f minutes", s.Duration.Minutes()))
	return builder.String()
}

package voltage

import (
	"strings"

	"github.com/viant/ephys/metadata"
)

// WaveformComponentPrefix prefixes channel fields describing a waveform component
const WaveformComponentPrefix = "WaveformComponent_"

// Waveforms indexes waveform component field names by channel key
type Waveforms map[string][]string

// LocateWaveforms lists, for every channel, nested fields named WaveformComponent_*.
// Scalar fields with that prefix are not components. Channels without components
// get an empty list.
func LocateWaveforms(channels *Channels) Waveforms {
	result := make(Waveforms, channels.Len())
	for _, key := range channels.Keys() {
		channel, _ := channels.Get(key)
		components := []string{}
		for _, field := range channel.Fields.Keys() {
			if !strings.HasPrefix(field, WaveformComponentPrefix) {
				continue
			}
			if value, _ := channel.Fields.Get(field); value.IsRecord() {
				components = append(components, field)
			}
		}
		result[key] = components
	}
	return result
}

// Count returns total number of waveform components
func (w Waveforms) Count() int {
	total := 0
	for _, components := range w {
		total += len(components)
	}
	return total
}

// Clone returns a copy sharing no slices with w
func (w Waveforms) Clone() Waveforms {
	result := make(Waveforms, len(w))
	for key, components := range w {
		result[key] = append([]string{}, components...)
	}
	return result
}

// Components returns the component records configured for a channel, in field order
func (w Waveforms) Components(channels *Channels, key string) []*metadata.Record {
	channel, ok := channels.Get(key)
	if !ok {
		return nil
	}
	var result []*metadata.Record
	for _, name := range w[key] {
		result = append(result, channel.Fields.Record(name))
	}
	return result
}

package recording

import (
	"github.com/viant/ephys/metadata"
	"github.com/viant/ephys/voltage"
	"gopkg.in/yaml.v3"
)

// Snapshot is a read-only, serializable view of a loaded descriptor
type Snapshot struct {
	PatchID            string            `yaml:"patchID"`
	VoltageOutputID    string            `yaml:"voltageOutputID"`
	VoltageRecordingID string            `yaml:"voltageRecordingID"`
	Paths              Paths             `yaml:"paths"`
	Base               *Base             `yaml:"base,omitempty"`
	Session            voltage.Session   `yaml:"session"`
	Columns            []string          `yaml:"columns"`
	Rows               int               `yaml:"rows"`
	Channels           []ChannelSnapshot `yaml:"channels"`
	Signals            []*voltage.Signal `yaml:"signals"`
	Fingerprints       Fingerprints      `yaml:"fingerprints"`
	Mismatches         []Mismatch        `yaml:"mismatches,omitempty"`
}

// ChannelSnapshot describes one enumerated output channel
type ChannelSnapshot struct {
	Key       string           `yaml:"key"`
	Name      string           `yaml:"name"`
	Waveforms []string         `yaml:"waveforms"`
	Fields    *metadata.Record `yaml:"fields"`
}

// Snapshot returns a copy of loaded state
func (d *Descriptor) Snapshot() (*Snapshot, error) {
	data, err := d.loaded()
	if err != nil {
		return nil, err
	}
	base, _ := d.Base()
	recording := data.recording.Clone()
	result := &Snapshot{
		PatchID:            d.PatchID,
		VoltageOutputID:    d.VoltageOutputID,
		VoltageRecordingID: d.VoltageRecordingID,
		Paths:              d.paths,
		Base:               base,
		Session:            data.recording.Session,
		Columns:            append([]string{}, data.table.Columns...),
		Rows:               data.table.Len(),
		Fingerprints:       data.fingerprints,
		Mismatches:         append([]Mismatch(nil), data.mismatches...),
	}
	for _, key := range data.channels.Keys() {
		channel, _ := data.channels.Get(key)
		result.Channels = append(result.Channels, ChannelSnapshot{
			Key:       key,
			Name:      channel.Name,
			Waveforms: append([]string{}, data.waveforms[key]...),
			Fields:    channel.Fields,
		})
	}
	for _, name := range recording.Order {
		result.Signals = append(result.Signals, recording.Signals[name])
	}
	return result, nil
}

// ExportYAML encodes the snapshot as YAML
func (d *Descriptor) ExportYAML() ([]byte, error) {
	snapshot, err := d.Snapshot()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(snapshot)
}

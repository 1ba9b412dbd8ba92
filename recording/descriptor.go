package recording

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/viant/afs"
	"github.com/viant/ephys"
	"github.com/viant/ephys/metadata"
	"github.com/viant/ephys/table"
	"github.com/viant/ephys/voltage"
)

// Paths locates the files of one acquisition session
type Paths struct {
	Table            string `yaml:"table"`
	VoltageOutput    string `yaml:"voltageOutput"`
	VoltageRecording string `yaml:"voltageRecording"`
	Base             string `yaml:"base,omitempty"` // optional session document
}

// Descriptor represents one patch-clamp recording session: validated file paths,
// identifiers derived from file names and, once loaded, the signal table with parsed metadata.
// Loaded state is never modified afterwards.
type Descriptor struct {
	PatchID            string
	VoltageOutputID    string
	VoltageRecordingID string

	paths  Paths
	fs     afs.Service
	logger zerolog.Logger
	eager  bool
	data   *contents
}

// contents holds everything produced by Load
type contents struct {
	table        *table.Table
	channels     *voltage.Channels
	waveforms    voltage.Waveforms
	recording    *voltage.Recording
	base         *Base
	fingerprints Fingerprints
	mismatches   []Mismatch
}

// New validates session paths, derives identifiers and, unless eager load is disabled, loads the session.
// The signal table path is always validated before metadata document paths.
func New(ctx context.Context, paths Paths, options ...Option) (*Descriptor, error) {
	d := &Descriptor{eager: true, logger: zerolog.Nop()}
	for _, option := range options {
		option(d)
	}
	if d.fs == nil {
		d.fs = afs.New()
	}
	d.paths = Paths{
		Table:            normalize(paths.Table),
		VoltageOutput:    normalize(paths.VoltageOutput),
		VoltageRecording: normalize(paths.VoltageRecording),
		Base:             normalize(paths.Base),
	}
	if err := validate(ctx, d.fs, KindSignalTable, d.paths.Table); err != nil {
		return nil, err
	}
	if err := validate(ctx, d.fs, KindVoltageOutput, d.paths.VoltageOutput); err != nil {
		return nil, err
	}
	if err := validate(ctx, d.fs, KindVoltageRecording, d.paths.VoltageRecording); err != nil {
		return nil, err
	}
	if d.paths.Base != "" {
		if err := validate(ctx, d.fs, KindSession, d.paths.Base); err != nil {
			return nil, err
		}
	}
	d.PatchID = baseID(d.paths.Table)
	d.VoltageOutputID = baseID(d.paths.VoltageOutput)
	d.VoltageRecordingID = baseID(d.paths.VoltageRecording)
	if d.eager {
		if err := d.Load(ctx); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Paths returns validated session paths
func (d *Descriptor) Paths() Paths {
	return d.paths
}

// Loaded reports whether session data was loaded
func (d *Descriptor) Loaded() bool {
	return d.data != nil
}

// Load reads the signal table and parses both metadata documents. Either everything is
// loaded or, on error, the descriptor stays unloaded. Loading a loaded descriptor is a no-op.
func (d *Descriptor) Load(ctx context.Context) error {
	if d.data != nil {
		return nil
	}
	started := time.Now()
	data := &contents{}

	tableData, err := d.download(ctx, d.paths.Table)
	if err != nil {
		return err
	}
	if data.table, err = table.Read(bytes.NewReader(tableData)); err != nil {
		return fmt.Errorf("%s: %w", d.paths.Table, err)
	}

	outputData, err := d.download(ctx, d.paths.VoltageOutput)
	if err != nil {
		return err
	}
	if data.channels, data.waveforms, err = parseOutput(outputData); err != nil {
		return fmt.Errorf("%s: %w", d.paths.VoltageOutput, err)
	}

	recordingData, err := d.download(ctx, d.paths.VoltageRecording)
	if err != nil {
		return err
	}
	if data.recording, err = parseRecording(recordingData); err != nil {
		return fmt.Errorf("%s: %w", d.paths.VoltageRecording, err)
	}

	if d.paths.Base != "" {
		if data.base, err = ReadBase(ctx, d.fs, d.paths.Base); err != nil {
			return err
		}
	}

	if data.fingerprints, err = fingerprints(tableData, outputData, recordingData); err != nil {
		return err
	}
	data.mismatches = d.check(data)
	for _, mismatch := range data.mismatches {
		d.logger.Warn().
			Str("patch_id", d.PatchID).
			Str("field", mismatch.Field).
			Str("expected", mismatch.Expected).
			Str("actual", mismatch.Actual).
			Msg("session files disagree")
	}
	d.data = data
	d.logger.Debug().
		Str("patch_id", d.PatchID).
		Int("channels", data.channels.Len()).
		Int("signals", len(data.recording.Signals)).
		Int("rows", data.table.Len()).
		Dur("elapsed", time.Since(started)).
		Msg("session loaded")
	return nil
}

func (d *Descriptor) download(ctx context.Context, location string) ([]byte, error) {
	data, err := d.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", location, err)
	}
	return data, nil
}

func parseOutput(data []byte) (*voltage.Channels, voltage.Waveforms, error) {
	root, err := metadata.Parse(data)
	if err != nil {
		return nil, nil, err
	}
	parsed, err := voltage.ParseOutput(root)
	if err != nil {
		return nil, nil, err
	}
	channels := voltage.Enumerate(parsed)
	return channels, voltage.LocateWaveforms(channels), nil
}

func parseRecording(data []byte) (*voltage.Recording, error) {
	root, err := metadata.Parse(data)
	if err != nil {
		return nil, err
	}
	return voltage.ParseRecording(root)
}

func (d *Descriptor) loaded() (*contents, error) {
	if d.data == nil {
		return nil, fmt.Errorf("%s: %w", d.PatchID, ephys.ErrNotLoaded)
	}
	return d.data, nil
}

// SignalTable returns a copy of the recorded samples
func (d *Descriptor) SignalTable() (*table.Table, error) {
	data, err := d.loaded()
	if err != nil {
		return nil, err
	}
	return data.table.Clone(), nil
}

// Channels returns a copy of output channels keyed channel_1, channel_2, ...
func (d *Descriptor) Channels() (*voltage.Channels, error) {
	data, err := d.loaded()
	if err != nil {
		return nil, err
	}
	return data.channels.Clone(), nil
}

// Waveforms returns a copy of waveform component names per channel key
func (d *Descriptor) Waveforms() (voltage.Waveforms, error) {
	data, err := d.loaded()
	if err != nil {
		return nil, err
	}
	return data.waveforms.Clone(), nil
}

// Recording returns a copy of parsed signal settings
func (d *Descriptor) Recording() (*voltage.Recording, error) {
	data, err := d.loaded()
	if err != nil {
		return nil, err
	}
	return data.recording.Clone(), nil
}

// Session returns acquisition level facts
func (d *Descriptor) Session() (voltage.Session, error) {
	data, err := d.loaded()
	if err != nil {
		return voltage.Session{}, err
	}
	return data.recording.Session, nil
}

// Base returns the parsed session document, nil when none was supplied
func (d *Descriptor) Base() (*Base, error) {
	data, err := d.loaded()
	if err != nil {
		return nil, err
	}
	if data.base == nil {
		return nil, nil
	}
	base := *data.base
	return &base, nil
}

// Fingerprints returns content digests of the session files
func (d *Descriptor) Fingerprints() (Fingerprints, error) {
	data, err := d.loaded()
	if err != nil {
		return Fingerprints{}, err
	}
	return data.fingerprints, nil
}

// Mismatches returns advisory disagreements between session files
func (d *Descriptor) Mismatches() ([]Mismatch, error) {
	data, err := d.loaded()
	if err != nil {
		return nil, err
	}
	return append([]Mismatch{}, data.mismatches...), nil
}

func (d *Descriptor) String() string {
	return d.Summary().String()
}

package voltage

import (
	"fmt"
	"strings"
	"time"

	"github.com/viant/ephys"
	"github.com/viant/ephys/metadata"
)

// SignalTag names signal definition elements of the VoltageRecording document
const SignalTag = "VRecSignal"

// Signal represents one recorded signal's amplifier and unit settings
type Signal struct {
	Name           string  `yaml:"name"`
	UnitName       string  `yaml:"unitName"`
	UnitMultiplier float64 `yaml:"unitMultiplier"`
	UnitDivisor    float64 `yaml:"unitDivisor"`
	UnitDevice     string  `yaml:"unitDevice"`
	UnitChannel    string  `yaml:"unitChannel"`
	Type           string  `yaml:"type"`
	Gain           float64 `yaml:"gain"`
	ChannelNumber  int     `yaml:"channelNumber"`
	Enabled        string  `yaml:"enabled"`
}

// ScaleFactor returns the raw to physical unit factor; samples are never scaled here
func (s *Signal) ScaleFactor() float64 {
	return s.UnitMultiplier / s.UnitDivisor
}

// IsEnabled interprets the enabled flag text
func (s *Signal) IsEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(s.Enabled)) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// Session holds acquisition level facts of a VoltageRecording document; SamplingRate is in Hz
type Session struct {
	SamplingRate      float64 `yaml:"samplingRate"`
	AcquisitionTimeMs float64 `yaml:"acquisitionTimeMs"`
	RecordingDateTime string  `yaml:"recordingDateTime"`
	DataFileName      string  `yaml:"dataFileName"`
}

// Duration returns acquisition time
func (s Session) Duration() time.Duration {
	return time.Duration(s.AcquisitionTimeMs * float64(time.Millisecond))
}

// Time parses recording date time
func (s Session) Time() (time.Time, error) {
	return time.Parse(time.RFC3339, s.RecordingDateTime)
}

// Recording represents a parsed VoltageRecording document
type Recording struct {
	Signals map[string]*Signal `yaml:"signals"`
	Order   []string           `yaml:"order"` // signal names in document order
	Session Session            `yaml:"session"`
}

// Signal returns a signal by name
func (r *Recording) Signal(name string) (*Signal, bool) {
	signal, ok := r.Signals[name]
	return signal, ok
}

// EnabledSignals returns enabled signals in document order
func (r *Recording) EnabledSignals() []*Signal {
	var result []*Signal
	for _, name := range r.Order {
		if signal := r.Signals[name]; signal != nil && signal.IsEnabled() {
			result = append(result, signal)
		}
	}
	return result
}

// Clone returns a deep copy
func (r *Recording) Clone() *Recording {
	result := &Recording{
		Signals: make(map[string]*Signal, len(r.Signals)),
		Order:   append([]string{}, r.Order...),
		Session: r.Session,
	}
	for name, signal := range r.Signals {
		clone := *signal
		result.Signals[name] = &clone
	}
	return result
}

// Units returns distinct unit names of enabled signals in document order
func (r *Recording) Units() []string {
	var units []string
	seen := map[string]bool{}
	for _, signal := range r.EnabledSignals() {
		if seen[signal.UnitName] {
			continue
		}
		seen[signal.UnitName] = true
		units = append(units, signal.UnitName)
	}
	return units
}

// ParseRecording parses signal definitions and session fields of a VoltageRecording document root
func ParseRecording(root metadata.Node) (*Recording, error) {
	if root == nil {
		return nil, fmt.Errorf("voltage recording document has no root")
	}
	result := &Recording{Signals: map[string]*Signal{}}
	for i, node := range metadata.FindAll(root, SignalTag) {
		signal, err := parseSignal(node, i)
		if err != nil {
			return nil, err
		}
		if _, ok := result.Signals[signal.Name]; !ok {
			result.Order = append(result.Order, signal.Name)
		}
		result.Signals[signal.Name] = signal
	}
	session, err := parseSession(root)
	if err != nil {
		return nil, err
	}
	result.Session = *session
	return result, nil
}

func parseSignal(node metadata.Node, index int) (*Signal, error) {
	recordID := fmt.Sprintf("signal %d", index+1)
	if name, ok := metadata.FindText(node, "Name"); ok {
		recordID = fmt.Sprintf("signal %q", name)
	}
	fields, err := resolve(node, signalFields, recordID)
	if err != nil {
		return nil, err
	}
	signal := &Signal{
		Name:        fields["Name"],
		UnitName:    fields["UnitName"],
		UnitDevice:  fields["PatchClampDevice"],
		UnitChannel: fields["PatchClampChannel"],
		Type:        fields["Type"],
		Enabled:     fields["Enabled"],
	}
	if signal.UnitMultiplier, err = fields.number("Multiplier", recordID); err != nil {
		return nil, err
	}
	if signal.UnitDivisor, err = fields.number("Divisor", recordID); err != nil {
		return nil, err
	}
	if signal.UnitDivisor == 0 {
		return nil, &ephys.ConfigurationError{Field: "Divisor", Record: recordID, Value: fields["Divisor"], Reason: "divisor must not be zero"}
	}
	if signal.Gain, err = fields.number("Gain", recordID); err != nil {
		return nil, err
	}
	if signal.ChannelNumber, err = fields.integer("Channel", recordID); err != nil {
		return nil, err
	}
	return signal, nil
}

func parseSession(root metadata.Node) (*Session, error) {
	const recordID = "session"
	fields, err := resolve(root, sessionFields, recordID)
	if err != nil {
		return nil, err
	}
	session := &Session{
		DataFileName:      fields["DataFile"],
		RecordingDateTime: fields["DateTime"],
	}
	if session.SamplingRate, err = fields.number("Rate", recordID); err != nil {
		return nil, err
	}
	if session.SamplingRate <= 0 {
		return nil, &ephys.ConfigurationError{Field: "Rate", Record: recordID, Value: fields["Rate"], Reason: "sampling rate must be positive"}
	}
	if session.AcquisitionTimeMs, err = fields.number("AcquisitionTime", recordID); err != nil {
		return nil, err
	}
	if session.AcquisitionTimeMs < 0 {
		return nil, &ephys.ConfigurationError{Field: "AcquisitionTime", Record: recordID, Value: fields["AcquisitionTime"], Reason: "acquisition time must not be negative"}
	}
	return session, nil
}

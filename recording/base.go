package recording

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/ephys"
	"github.com/viant/ephys/metadata"
)

// Base represents the session document binding the per-recording files together
type Base struct {
	Version           string `yaml:"version"`
	DateTime          string `yaml:"dateTime"`
	DataFile          string `yaml:"dataFile"`
	ConfigurationFile string `yaml:"configurationFile"`
	VoltageOutputFile string `yaml:"voltageOutputFile,omitempty"`
	AcquisitionType   string `yaml:"acquisitionType,omitempty"`
}

type attribute struct {
	name     string
	tag      string // first descendant holding the attribute, empty for the root
	attr     string
	required bool
}

var baseAttributes = []attribute{
	{name: "version", attr: "version", required: true},
	{name: "date", attr: "date", required: true},
	{name: "dataFile", tag: "VoltageRecording", attr: "dataFile", required: true},
	{name: "configurationFile", tag: "VoltageRecording", attr: "configurationFile", required: true},
	{name: "filename", tag: "VoltageOutput", attr: "filename"},
	{name: "type", tag: "Sequence", attr: "type"},
}

// ParseBase reads version, date and file references of a session document root
func ParseBase(root metadata.Node) (*Base, error) {
	if root == nil {
		return nil, fmt.Errorf("session document has no root")
	}
	values := make(map[string]string, len(baseAttributes))
	for _, a := range baseAttributes {
		node := root
		if a.tag != "" {
			if found := metadata.FindAll(root, a.tag); len(found) > 0 {
				node = found[0]
			} else {
				node = nil
			}
		}
		var value string
		var ok bool
		if node != nil {
			value, ok = node.Attr(a.attr)
		}
		if !ok && a.required {
			field := a.attr
			if a.tag != "" {
				field = a.tag + "@" + a.attr
			}
			return nil, &ephys.MissingFieldError{Field: field, Record: "session document"}
		}
		values[a.name] = value
	}
	return &Base{
		Version:           values["version"],
		DateTime:          values["date"],
		DataFile:          values["dataFile"],
		ConfigurationFile: values["configurationFile"],
		VoltageOutputFile: values["filename"],
		AcquisitionType:   values["type"],
	}, nil
}

// ReadBase reads and parses a session document from the backing store
func ReadBase(ctx context.Context, fs afs.Service, location string) (*Base, error) {
	root, err := metadata.ReadDocument(ctx, fs, location)
	if err != nil {
		return nil, err
	}
	base, err := ParseBase(root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", location, err)
	}
	return base, nil
}

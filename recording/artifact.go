package recording

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/ephys"
)

// Kind identifies one of the session artifacts
type Kind string

const (
	KindSignalTable      Kind = "signal table"
	KindVoltageOutput    Kind = "voltage output document"
	KindVoltageRecording Kind = "voltage recording document"
	KindSession          Kind = "session document"
)

// Extension returns the file extension expected for the artifact kind
func (k Kind) Extension() string {
	if k == KindSignalTable {
		return ".csv"
	}
	return ".xml"
}

// KindOf guesses the artifact kind from a file name
func KindOf(location string) (Kind, error) {
	name := path.Base(location)
	switch strings.ToLower(path.Ext(name)) {
	case ".csv":
		return KindSignalTable, nil
	case ".xml":
		switch {
		case strings.Contains(name, "_VoltageOutput_"):
			return KindVoltageOutput, nil
		case strings.Contains(name, "_VoltageRecording_"):
			return KindVoltageRecording, nil
		}
		return KindSession, nil
	}
	return "", fmt.Errorf("unsupported file type: %s", location)
}

// validate checks extension, then that location is an existing file on the backing store
func validate(ctx context.Context, fs afs.Service, kind Kind, location string) error {
	if location == "" {
		return &ephys.InvalidInputError{Path: location, Reason: fmt.Sprintf("%s path is empty", kind)}
	}
	if ext := path.Ext(location); !strings.EqualFold(ext, kind.Extension()) {
		return &ephys.InvalidInputError{Path: location, Reason: fmt.Sprintf("%s must be a %s file", kind, kind.Extension())}
	}
	exists, err := fs.Exists(ctx, location)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", location, err)
	}
	if !exists {
		return &ephys.NotFoundError{Path: location, Kind: string(kind)}
	}
	object, err := fs.Object(ctx, location)
	if err != nil {
		return fmt.Errorf("failed to inspect %s: %w", location, err)
	}
	if object.IsDir() {
		return &ephys.InvalidInputError{Path: location, Reason: fmt.Sprintf("%s path must be a file, not a folder", kind)}
	}
	return nil
}

// baseID returns the file name without extension
func baseID(location string) string {
	name := path.Base(location)
	return strings.TrimSuffix(name, path.Ext(name))
}

// normalize turns local relative paths into absolute ones; URLs are kept as is
func normalize(location string) string {
	if location == "" || strings.Contains(location, "://") {
		return location
	}
	if abs, err := filepath.Abs(location); err == nil {
		return filepath.ToSlash(abs)
	}
	return location
}

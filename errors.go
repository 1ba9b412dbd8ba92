package ephys

import (
	"errors"
	"fmt"
)

// ErrNotLoaded is returned when session data is accessed before it was loaded
var ErrNotLoaded = errors.New("recording data not loaded")

// InvalidInputError reports an input path of the wrong kind (extension mismatch or directory)
type InvalidInputError struct {
	Path   string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Path, e.Reason)
}

// NotFoundError reports an input path missing on the backing store
type NotFoundError struct {
	Path string
	Kind string // artifact kind, e.g. "signal table"
}

func (e *NotFoundError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("not found: %s", e.Path)
	}
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Path)
}

// MissingFieldError reports a required metadata field absent from a record
type MissingFieldError struct {
	Field  string
	Record string // identity of the enclosing record (signal or channel name)
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q in %s", e.Field, e.Record)
}

// ConfigurationError reports a present field whose value cannot be used
type ConfigurationError struct {
	Field  string
	Record string
	Value  string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("invalid %s=%q in %s: %s", e.Field, e.Value, e.Record, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

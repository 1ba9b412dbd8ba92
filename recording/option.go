package recording

import (
	"github.com/rs/zerolog"
	"github.com/viant/afs"
)

// Option configures a Descriptor
type Option func(*Descriptor)

// WithFS sets the backing store used to validate and read session files
func WithFS(fs afs.Service) Option {
	return func(d *Descriptor) {
		d.fs = fs
	}
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Descriptor) {
		d.logger = logger
	}
}

// WithEagerLoad controls whether New loads signal data and metadata right away (default true).
// A descriptor created with eager load disabled holds validated paths only until Load is called.
func WithEagerLoad(eager bool) Option {
	return func(d *Descriptor) {
		d.eager = eager
	}
}

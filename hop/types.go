package hop

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/treevec/treevec"
)

// ErrLeafSetMismatch indicates the two vectors do not encode trees over the
// same leaves in the same order.
var ErrLeafSetMismatch = errors.New("hop: leaf sets differ")

// Match is one element of an alignment: an internal label of A matched in
// B, or the leaf closing a segment.
type Match struct {
	Label treevec.Label
	Leaf  bool
}

// Option configures optional behavior of the comparison functions.
type Option func(*Options)

// Options holds configurable parameters for Similarity, Alignment,
// Distance and Matrix.
type Options struct {
	// Workers bounds how many segments (or, in Matrix, pairs) are evaluated
	// at once. Values below 2 keep evaluation sequential.
	Workers int

	// Logger receives debug traces; defaults to a discarding logger.
	Logger *slog.Logger
}

// DefaultOptions returns sequential evaluation and no logging.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		Logger:  slog.New(slog.DiscardHandler),
	}
}

// WithWorkers returns an Option that evaluates up to n segments concurrently.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithLogger returns an Option that installs l for debug traces.
// Passing nil has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

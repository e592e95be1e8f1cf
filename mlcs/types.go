package mlcs

import (
	"context"
	"errors"
)

// ErrNoSequences indicates LCS was called without any input sequence.
var ErrNoSequences = errors.New("mlcs: at least one sequence is required")

// Result is a longest common subsequence and its length.
type Result struct {
	// Length equals len(Path).
	Length int

	// Path lists the values in the order they occur in every sequence.
	Path []int
}

// Option configures optional behavior of LCS.
type Option func(*Options)

// Options holds configurable parameters for LCS.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Package exact provides tunable options and error definitions for the
// exact treewidth solver.
package exact

import (
	"context"
	"errors"
	"fmt"
)

// DefaultMaxVertices is the vertex-count guard applied when no
// WithMaxVertices option is given. Exact treewidth is exponential; past
// a few dozen vertices the memo table stops fitting in memory.
const DefaultMaxVertices = 32

// Sentinel errors for the exact solver.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("exact: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("exact: invalid option supplied")

	// ErrTooLarge is returned when the graph exceeds MaxVertices.
	ErrTooLarge = errors.New("exact: graph exceeds the vertex limit")
)

// Option configures the exact solver via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the solver is invoked.
type Option func(*Options)

// Options holds parameters customizing the exact solver.
type Options struct {
	// Ctx allows cancellation and deadlines; checked on every recursion step.
	Ctx context.Context

	// MaxVertices rejects graphs with more vertices (ErrTooLarge).
	MaxVertices int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - MaxVertices = DefaultMaxVertices.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxVertices: DefaultMaxVertices,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxVertices raises or lowers the vertex-count guard.
//
//	m > 0: allow up to m vertices
//	m ≤ 0: invalid option → ErrOptionViolation
func WithMaxVertices(m int) Option {
	return func(o *Options) {
		if m <= 0 {
			o.err = fmt.Errorf("%w: MaxVertices must be positive (%d)", ErrOptionViolation, m)
			return
		}
		o.MaxVertices = m
	}
}

// buildOptions folds opts over the defaults and surfaces recorded errors.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	return o, nil
}

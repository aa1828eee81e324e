// Package elim provides tunable options and error definitions for the
// elimination-order solvers.
package elim

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for elimination-order computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("elim: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("elim: invalid option supplied")

	// ErrOrderMismatch is returned when an elimination order is not a
	// permutation of the graph's vertices.
	ErrOrderMismatch = errors.New("elim: order is not a permutation of the vertices")
)

// Strategy selects the greedy scoring rule used by Order.
type Strategy int

const (
	// MinDegree eliminates a vertex of minimum current degree.
	MinDegree Strategy = iota

	// MinFill eliminates a vertex whose elimination adds the fewest fill edges.
	MinFill
)

// String renders the strategy name for logs and flags.
func (s Strategy) String() string {
	switch s {
	case MinDegree:
		return "min-degree"
	case MinFill:
		return "min-fill"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps a flag value ("min-degree", "min-fill") back to a
// Strategy. Unknown names return ErrOptionViolation.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "min-degree":
		return MinDegree, nil
	case "min-fill":
		return MinFill, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
	}
}

// Option configures elimination behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the solver is invoked.
type Option func(*Options)

// Options holds parameters customizing elimination-order computation.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per elimination step.
	Ctx context.Context

	// Strategy selects the greedy scoring rule. Default MinDegree.
	Strategy Strategy

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - MinDegree strategy.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Strategy: MinDegree,
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

// WithStrategy selects the greedy scoring rule.
// Unknown values are an option violation.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case MinDegree, MinFill:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, s)
		}
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

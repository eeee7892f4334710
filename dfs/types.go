// Package dfs defines types and options for the longest-path search,
// including the movement policy, cancellation, path tracing and goal hooks.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/longhike/gridgraph"
)

var (
	// ErrGridNil is returned when a nil *gridgraph.Grid is passed to LongestPath.
	ErrGridNil = errors.New("dfs: grid is nil")

	// ErrStartOutOfBounds indicates that the start position lies outside the grid.
	ErrStartOutOfBounds = errors.New("dfs: start position out of bounds")

	// ErrStartBlocked indicates that the start position is a forest tile.
	ErrStartBlocked = errors.New("dfs: start position is forest")

	// ErrNoPathFound indicates that no simple path from the start reaches the last row.
	ErrNoPathFound = errors.New("dfs: no path found")
)

// Policy selects how slope tiles constrain movement.
type Policy int

const (
	// SlopesEnabled forces the slope's direction when standing on a slope
	// and forbids entering a slope against its direction.
	SlopesEnabled Policy = iota
	// SlopesIgnored treats every slope as a plain path tile.
	SlopesIgnored
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case SlopesEnabled:
		return "slopes"
	case SlopesIgnored:
		return "noslopes"
	}
	return "unknown"
}

// Option configures optional behavior of LongestPath.
// Use with LongestPath(g, start, opts...).
type Option func(*Options)

// Options holds configurable parameters for the longest-path search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the search early.
	Ctx context.Context

	// Policy selects slope handling. Default is SlopesEnabled.
	Policy Policy

	// Trace, if true, records one longest path in Result.Path.
	Trace bool

	// OnGoal, if non-nil, is invoked each time a branch reaches the last row,
	// with the number of steps taken from the start.
	// Returning an error aborts the search with that error.
	OnGoal func(steps int) error
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - SlopesEnabled policy
//   - No path tracing
//   - No goal hook
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Policy: SlopesEnabled,
		Trace:  false,
		OnGoal: nil,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPolicy returns an Option that selects the movement policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithSlopes is shorthand for WithPolicy: true selects SlopesEnabled,
// false selects SlopesIgnored.
func WithSlopes(enabled bool) Option {
	if enabled {
		return WithPolicy(SlopesEnabled)
	}
	return WithPolicy(SlopesIgnored)
}

// WithTrace returns an Option that records one longest path in Result.Path.
func WithTrace() Option {
	return func(o *Options) {
		o.Trace = true
	}
}

// WithOnGoal returns an Option that installs fn as a goal-row hook.
func WithOnGoal(fn func(steps int) error) Option {
	return func(o *Options) {
		o.OnGoal = fn
	}
}

// Result captures the outcome of a longest-path search.
type Result struct {
	// Length is the number of steps (edges) of the longest path found.
	Length int

	// Path lists the cells of one longest path, start first and a last-row
	// cell last, so len(Path) == Length+1. Nil unless WithTrace was given.
	Path []gridgraph.Position

	// Explored counts search frames entered, a measure of the work done.
	Explored int

	// GoalsReached counts how many branches arrived at the last row.
	GoalsReached int
}

// Package traverse: tunable options and error definitions for graph walks.

package traverse

import (
	"context"
	"errors"

	"github.com/katalvlaran/graphio/core"
)

// Sentinel errors for traversal.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrStartNotFound is returned when the start node is absent.
	ErrStartNotFound = errors.New("traverse: start node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")

	// ErrUndirected is returned by ancestry queries on undirected graphs.
	ErrUndirected = errors.New("traverse: operation requires a directed graph")

	// ErrAncestryDepth is returned when an ancestor chain exceeds the node
	// count, which can only happen on a cyclic graph.
	ErrAncestryDepth = errors.New("traverse: ancestor chain exceeds node count")
)

// Option configures BFS behavior via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a node. A non-nil error aborts the
	// walk and is propagated to the caller.
	OnVisit func(id core.NodeID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// Zero disables the limit.
	MaxDepth int

	// Filter can skip edges by returning false.
	// Called for each hop curr→next.
	Filter func(curr, next core.NodeID) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, no depth limit,
// no filtering, and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(core.NodeID, int) error { return nil },
		MaxDepth: 0,
		Filter:   func(_, _ core.NodeID) bool { return true },
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

// WithOnVisit registers a callback invoked per visited node.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the walk; negative values are an option violation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxDepth = d
	}
}

// WithFilter registers an edge predicate; hops it rejects are not taken.
func WithFilter(fn func(curr, next core.NodeID) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// Result aggregates the outcome of a BFS walk.
type Result struct {
	// Order lists node ids in visit order, start first.
	Order []core.NodeID

	// Depth maps each visited node to its distance from the start.
	Depth map[core.NodeID]int

	// Parent maps each visited node to the node it was discovered from.
	// The start node has no entry.
	Parent map[core.NodeID]core.NodeID
}

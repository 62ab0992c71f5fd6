package dfs

import (
	"context"
	"errors"
)

// VertexState marks how far a traversal got with a vertex. The zero value is
// White, so a fresh map[N]VertexState needs no initialisation.
type VertexState uint8

const (
	White VertexState = iota // not reached yet
	Gray                     // on the current path of the walk
	Black                    // finished together with all its predecessors
)

func (s VertexState) String() string {
	switch s {
	case White:
		return "white"
	case Gray:
		return "gray"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

var (
	// ErrGraphNil is returned by TopologicalSort for a nil graph.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected is returned by TopologicalSort when a predecessor walk
	// comes back to a Gray vertex.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// TopoOption configures TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext makes TopologicalSort stop with ctx.Err() once ctx is
// done. A nil ctx is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

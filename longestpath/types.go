// SPDX-License-Identifier: MIT

package longestpath

import (
	"errors"

	"github.com/katalvlaran/dagpath/dfs"
	"github.com/katalvlaran/dagpath/graph"
)

// ErrNilGraph indicates that a nil graph was passed to the solver.
var ErrNilGraph = errors.New("longestpath: graph is nil")

// Number is the set of weight types the solver accepts: the zero value is
// the additive identity, + accumulates and > orders. NaN breaks the ordering
// contract and yields an unspecified (non-panicking) result.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// WeightFunc evaluates the weight of one edge. A non-nil error aborts the
// solve and is returned to the caller unchanged.
type WeightFunc[E any, W Number] func(edge E) (W, error)

// UnitWeight weighs every edge 1, turning the longest path into the path
// with the most edges.
func UnitWeight[E any, W Number](E) (W, error) { return 1, nil }

// Record is the best known path ending at a node: its cumulative Weight and
// the predecessor Prev that achieved it. Prev equals the node itself when
// the best path starts at the node.
type Record[N comparable, W Number] struct {
	Weight W
	Prev   N
}

// Result is a maximum-weight path in start→end order and its total weight.
type Result[N comparable, W Number] struct {
	Path   []N
	Weight W
}

// Sorter produces a topological order of every node of g, or an error when
// none exists. Any error is read as "g has a cycle".
type Sorter[N comparable, E any] func(g graph.Digraph[N, E]) ([]N, error)

// Options configures a solve.
//
// Sorter – topological order primitive; defaults to dfs.TopologicalSort.
type Options[N comparable, E any] struct {
	Sorter Sorter[N, E]
}

// Option represents a functional option for configuring the solver.
type Option[N comparable, E any] func(*Options[N, E])

// WithSorter replaces the topological sort. A nil sorter is ignored.
func WithSorter[N comparable, E any](s Sorter[N, E]) Option[N, E] {
	return func(o *Options[N, E]) {
		if s != nil {
			o.Sorter = s
		}
	}
}

// DefaultOptions returns Options using the depth-first topological sort.
func DefaultOptions[N comparable, E any]() Options[N, E] {
	return Options[N, E]{
		Sorter: func(g graph.Digraph[N, E]) ([]N, error) {
			return dfs.TopologicalSort[N, E](g)
		},
	}
}

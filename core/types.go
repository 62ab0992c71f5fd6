// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors. Callers compare with errors.Is.
var (
	ErrEmptyVertexID  = errors.New("core: vertex ID is empty")
	ErrVertexNotFound = errors.New("core: vertex not found")
	ErrEdgeNotFound   = errors.New("core: edge not found")

	// ErrBadWeight rejects a non-zero weight on a graph built without WithWeighted.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	ErrLoopNotAllowed      = errors.New("core: self-loop not allowed")
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed rejects EdgeOptions on a graph built without WithMixedEdges.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")
)

// Edge is one connection From→To. It is the E of graph.Digraph[string, *Edge],
// so weight functions receive it directly.
type Edge struct {
	ID       string // "e1", "e2", ... in creation order
	From     string
	To       string
	Weight   int64 // read by longestpath.EdgeWeight
	Directed bool  // false: traversable both ways
}

// Flags are the construction-time capabilities of a Graph. They never change
// after NewGraph.
type Flags struct {
	Directed   bool // default orientation of new edges
	Weighted   bool
	MultiEdges bool
	Loops      bool
	MixedEdges bool // honour WithEdgeDirected
}

// GraphOption sets Flags in NewGraph.
type GraphOption func(f *Flags)

// WithDirected sets the orientation of new edges.
func WithDirected(directed bool) GraphOption {
	return func(f *Flags) { f.Directed = directed }
}

func WithWeighted() GraphOption {
	return func(f *Flags) { f.Weighted = true }
}

func WithMultiEdges() GraphOption {
	return func(f *Flags) { f.MultiEdges = true }
}

func WithLoops() GraphOption {
	return func(f *Flags) { f.Loops = true }
}

func WithMixedEdges() GraphOption {
	return func(f *Flags) { f.MixedEdges = true }
}

// WithFlags replaces every flag at once; Transpose uses it to clone a
// configuration.
func WithFlags(flags Flags) GraphOption {
	return func(f *Flags) { *f = flags }
}

// EdgeOption adjusts one edge in AddEdge.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides Flags.Directed for one edge of a mixed graph.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// Graph is a string-keyed multigraph guarded by two locks: muVert for the
// vertex set and muEdgeAdj for edges, adjacency and the inbound index. When
// both are needed muVert is taken first.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	flags Flags

	nextEdgeID uint64 // atomic
	vertices   map[string]struct{}
	edges      map[string]*Edge

	// adjacencyList[from][to][edgeID]; undirected edges are mirrored.
	adjacencyList map[string]map[string]map[string]struct{}

	// inbound[to][edgeID]: every edge that can be traversed into "to".
	inbound map[string]map[string]struct{}
}

// NewGraph returns an empty Graph. Without options it is undirected and
// unweighted, with neither loops nor parallel edges.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]struct{}),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
		inbound:       make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(&g.flags)
	}

	return g
}

package dfs

import (
	"github.com/katalvlaran/dagpath/graph"
)

// topoSorter walks incoming arcs: a vertex is emitted only after all of its
// predecessors, so the post-order needs no final reversal.
type topoSorter[N comparable, E any] struct {
	graph graph.Digraph[N, E]
	opts  topoOptions
	state map[N]VertexState
	order []N // post-order, already topological
}

// TopologicalSort orders all vertices of g so that for every arc u→v, u comes
// before v. It fails with ErrGraphNil for a nil g, with ErrCycleDetected when
// g has a cycle and with ctx.Err() once a WithCancelContext context is done.
//
// Complexity: Time O(V + E), Memory O(V).
//
// Determinism: roots are started in g.Nodes() order and predecessors are
// explored in g.Incoming() order, so a fixed graph always yields the same order.
func TopologicalSort[N comparable, E any](g graph.Digraph[N, E], options ...TopoOption) ([]N, error) {
	// 1. Validate graph
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state
	verts := g.Nodes()
	sorter := &topoSorter[N, E]{
		graph: g,
		opts:  opts,
		state: make(map[N]VertexState, len(verts)),
		order: make([]N, 0, len(verts)),
	}
	// 4. Drive DFS from every unvisited vertex
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}

	return sorter.order, nil
}

// visit finishes every predecessor of id before id itself.
func (t *topoSorter[N, E]) visit(id N) error {
	// 1. Cancellation check at entry
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	// 2. Gray means id is on the current stack: back-arc, hence a cycle
	switch t.state[id] {
	case Gray:
		return ErrCycleDetected
	case Black:
		return nil
	}
	t.state[id] = Gray

	// 3. Predecessors first
	for _, arc := range t.graph.Incoming(id) {
		if err := t.visit(arc.From); err != nil {
			return err
		}
	}

	// 4. All predecessors emitted; id can follow
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}

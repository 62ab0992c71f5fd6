package longestpath

import (
	"github.com/katalvlaran/dagpath/graph"
)

// Solve returns a maximum-weight path of the DAG g and its weight.
//
// Returns:
//
//   - (Result, true, nil) on success. A graph without nodes yields an empty
//     path of weight 0; a graph without edges yields a single node.
//   - (Result{}, false, nil) when g has a cycle. This is a normal outcome.
//   - (Result{}, false, err) when weight fails; err is the evaluator's
//     error itself, so errors.Is and == both match it.
//   - ErrNilGraph when g is nil.
//
// A nil weight selects UnitWeight.
//
// Steps:
//  1. Topological order via Options.Sorter.
//  2. Forward pass: each node takes the best of its incoming candidates
//     record(p).Weight + weight(edge), or (0, itself) when it has no
//     incoming edges or every candidate is negative.
//  3. Terminal: the node with the greatest record.
//  4. Backtrack through Prev and reverse.
//
// Ties: among incoming arcs the first maximum in Incoming order wins; among
// terminals the first in topological order wins.
//
// Complexity: Time O(V + E) plus the sort, Memory O(V).
func Solve[N comparable, E any, W Number](g graph.Digraph[N, E], weight WeightFunc[E, W], opts ...Option[N, E]) (Result[N, W], bool, error) {
	t, ok, err := Distances[N, E, W](g, weight, opts...)
	if err != nil || !ok {
		return Result[N, W]{}, false, err
	}

	end, total, found := t.Terminal()
	if !found {
		return Result[N, W]{Path: []N{}}, true, nil
	}

	return Result[N, W]{Path: t.PathTo(end), Weight: total}, true, nil
}

// Length returns only the weight of a longest path. Results and errors
// follow Solve.
func Length[N comparable, E any, W Number](g graph.Digraph[N, E], weight WeightFunc[E, W], opts ...Option[N, E]) (W, bool, error) {
	t, ok, err := Distances[N, E, W](g, weight, opts...)
	if err != nil || !ok {
		var zero W
		return zero, false, err
	}
	_, total, _ := t.Terminal()

	return total, true, nil
}

// Distances runs the forward pass only and returns the per-node records.
// Results and errors follow Solve: (nil, false, nil) on a cycle.
func Distances[N comparable, E any, W Number](g graph.Digraph[N, E], weight WeightFunc[E, W], opts ...Option[N, E]) (*Table[N, W], bool, error) {
	// 1) Validate graph
	if g == nil {
		return nil, false, ErrNilGraph
	}

	// 2) Build options
	cfg := DefaultOptions[N, E]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if weight == nil {
		weight = UnitWeight[E, W]
	}

	// 3) Order, or no longest path at all
	order, err := cfg.Sorter(g)
	if err != nil {
		return nil, false, nil
	}

	// 4) Forward pass
	r := &runner[N, E, W]{
		g:      g,
		weight: weight,
		table: &Table[N, W]{
			order:   order,
			records: make(map[N]Record[N, W], len(order)),
		},
	}
	if err = r.forward(); err != nil {
		return nil, false, err
	}

	return r.table, true, nil
}

// runner holds the mutable state for a single forward pass.
type runner[N comparable, E any, W Number] struct {
	g      graph.Digraph[N, E]
	weight WeightFunc[E, W]
	table  *Table[N, W]
}

// forward writes one record per node in topological order, so every
// predecessor record is final before it is read.
func (r *runner[N, E, W]) forward() error {
	var zero W
	for _, n := range r.table.order {
		best := Record[N, W]{Prev: n}
		seen := false
		for _, arc := range r.g.Incoming(n) {
			w, err := r.weight(arc.Edge)
			if err != nil {
				return err
			}
			cand := r.table.records[arc.From].Weight + w
			if !seen || cand > best.Weight {
				best = Record[N, W]{Weight: cand, Prev: arc.From}
				seen = true
			}
		}
		// a path may start anywhere: a negative best restarts at n
		if best.Weight < zero {
			best = Record[N, W]{Prev: n}
		}
		r.table.records[n] = best
	}

	return nil
}

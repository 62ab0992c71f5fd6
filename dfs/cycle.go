package dfs

import (
	"github.com/katalvlaran/dagpath/graph"
)

// FindCycle returns one directed cycle of g as a closed walk in edge
// direction, e.g. [A B C A] for A→B→C→A, or (nil, false) when g is acyclic.
// A self-loop on v is reported as [v v]. A nil graph is treated as acyclic.
//
// The cycle found is the first back-arc met by a traversal that starts roots
// in g.Nodes() order, so the witness is deterministic for a fixed graph.
//
// Complexity: Time O(V + E), Memory O(V).
func FindCycle[N comparable, E any](g graph.Digraph[N, E]) ([]N, bool) {
	if g == nil {
		return nil, false
	}
	verts := g.Nodes()
	f := &cycleFinder[N, E]{
		graph: g,
		state: make(map[N]VertexState, len(verts)),
		pos:   make(map[N]int, len(verts)),
	}
	for _, v := range verts {
		if f.state[v] != White {
			continue
		}
		if f.visit(v) {
			return f.cycle, true
		}
	}

	return nil, false
}

// cycleFinder walks predecessor arcs; stack[i+1] is a predecessor of stack[i].
type cycleFinder[N comparable, E any] struct {
	graph graph.Digraph[N, E]
	state map[N]VertexState
	pos   map[N]int // index of a Gray vertex in stack
	stack []N
	cycle []N
}

func (f *cycleFinder[N, E]) visit(id N) bool {
	f.state[id] = Gray
	f.pos[id] = len(f.stack)
	f.stack = append(f.stack, id)

	for _, arc := range f.graph.Incoming(id) {
		switch f.state[arc.From] {
		case White:
			if f.visit(arc.From) {
				return true
			}
		case Gray:
			// arc.From → id closes the loop stack[j] → stack[k] → stack[k-1] → … → stack[j].
			j := f.pos[arc.From]
			k := len(f.stack) - 1
			f.cycle = make([]N, 0, k-j+2)
			f.cycle = append(f.cycle, arc.From)
			for i := k; i >= j; i-- {
				f.cycle = append(f.cycle, f.stack[i])
			}
			return true
		}
	}

	f.stack = f.stack[:len(f.stack)-1]
	delete(f.pos, id)
	f.state[id] = Black

	return false
}

package core

import "sync/atomic"

// Transpose returns a new Graph with every edge reversed (To→From), keeping
// edge IDs, weights, directedness and Flags. The source graph is only read.
// The edge ID counter is carried over so later AddEdge calls cannot collide
// with copied IDs.
//
// Longest distances *to a sink* in g are longest distances *from it* in
// Transpose(g); cpm uses this for the backward pass.
//
// Complexity: O(V + E).
func Transpose(g *Graph) *Graph {
	out := NewGraph(WithFlags(g.Flags()))

	g.muVert.RLock()
	for id := range g.vertices {
		out.vertices[id] = struct{}{}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	next := atomic.LoadUint64(&g.nextEdgeID)
	for eid, e := range g.edges {
		ne := &Edge{ID: eid, From: e.To, To: e.From, Weight: e.Weight, Directed: e.Directed}
		out.edges[eid] = ne
		linkEdge(out, ne)
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, next)

	return out
}

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// AddEdge adds an edge from→to and returns its ID. Missing endpoints are
// created. The edge takes Flags.Directed unless a WithEdgeDirected option
// overrides it, which requires WithMixedEdges.
//
// Errors: ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed,
// ErrMixedEdgesNotAllowed, ErrMultiEdgeNotAllowed.
func (g *Graph) AddEdge(from, to string, weight int64, opts ...EdgeOption) (string, error) {
	switch {
	case from == "" || to == "":
		return "", ErrEmptyVertexID
	case weight != 0 && !g.flags.Weighted:
		return "", ErrBadWeight
	case from == to && !g.flags.Loops:
		return "", ErrLoopNotAllowed
	case len(opts) > 0 && !g.flags.MixedEdges:
		return "", ErrMixedEdgesNotAllowed
	}

	// Endpoints and edge are inserted under both locks, so a concurrent
	// RemoveVertex cannot strand the edge.
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if !g.flags.MultiEdges && len(g.adjacencyList[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	addVertexLocked(g, from)
	addVertexLocked(g, to)
	e := &Edge{ID: nextEdgeID(g), From: from, To: to, Weight: weight, Directed: g.flags.Directed}
	for _, opt := range opts {
		opt(e)
	}
	g.edges[e.ID] = e
	linkEdge(g, e)

	return e.ID, nil
}

// RemoveEdge deletes the edge eid.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)
	cleanupAdjacency(g)

	return nil
}

// HasEdge reports whether an edge can be followed from→to; undirected edges
// count both ways.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// GetEdge returns the edge with the given ID. Callers must not modify it.
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if e, ok := g.edges[eid]; ok {
		return e, nil
	}

	return nil, ErrEdgeNotFound
}

// Edges returns all edges in creation order.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.muEdgeAdj.RUnlock()
	sortEdges(out)

	return out
}

func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

func nextEdgeID(g *Graph) string {
	return "e" + strconv.FormatUint(atomic.AddUint64(&g.nextEdgeID, 1), 10)
}

// edgeIDLess orders generated IDs by sequence number: "e2" < "e10".
func edgeIDLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}

func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return edgeIDLess(es[i].ID, es[j].ID) })
}

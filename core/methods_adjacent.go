// File: methods_adjacent.go
// Role: Adjacency queries (Neighbors, InNeighbors, NeighborIDs) and the
//       private helpers that keep adjacencyList and inbound consistent.
//
// Policy:
//   - A directed edge u→v is outgoing for u and incoming for v.
//   - An undirected edge {u,v} is both outgoing and incoming for u and for v.
//
// Concurrency:
//   - Queries take muVert then muEdgeAdj read locks.
//   - Helpers must be called under muEdgeAdj write lock.
package core

import "sort"

// Neighbors returns the edges leaving id, sorted by creation order.
//
// Directed edges are returned only from their From side; undirected edges
// appear for both endpoints; a self-loop appears once.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e == nil || (e.Directed && e.From != id) {
				continue
			}
			out = append(out, e)
		}
	}
	sortEdges(out)

	return out, nil
}

// InNeighbors returns the edges that can be traversed into id, sorted by
// creation order. It is the mirror of Neighbors.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) InNeighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return inboundEdges(g, id), nil
}

// NeighborIDs returns the unique IDs reachable from id over one edge,
// sorted lexicographically.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			set[e.To] = struct{}{}
		} else {
			set[e.From] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for nid := range set {
		out = append(out, nid)
	}
	sort.Strings(out)

	return out, nil
}

// inboundEdges collects the edges entering id; caller holds muEdgeAdj.
func inboundEdges(g *Graph, id string) []*Edge {
	set := g.inbound[id]
	if len(set) == 0 {
		return nil
	}
	out := make([]*Edge, 0, len(set))
	for eid := range set {
		if e := g.edges[eid]; e != nil {
			out = append(out, e)
		}
	}
	sortEdges(out)

	return out
}

// ensureAdjacency guarantees the nested bucket adjacencyList[from][to] exists.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// linkEdge registers e in adjacencyList and inbound.
func linkEdge(g *Graph, e *Edge) {
	ensureAdjacency(g, e.From, e.To)
	g.adjacencyList[e.From][e.To][e.ID] = struct{}{}
	addInbound(g, e.To, e.ID)

	if !e.Directed && e.From != e.To {
		ensureAdjacency(g, e.To, e.From)
		g.adjacencyList[e.To][e.From][e.ID] = struct{}{}
		addInbound(g, e.From, e.ID)
	}
}

func addInbound(g *Graph, to, eid string) {
	if g.inbound[to] == nil {
		g.inbound[to] = make(map[string]struct{})
	}
	g.inbound[to][eid] = struct{}{}
}

// removeAdjacency unlinks e from both indexes (and its mirror when undirected).
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	delete(g.inbound[e.To], e.ID)

	if !e.Directed && e.From != e.To {
		if m := g.adjacencyList[e.To][e.From]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacencyList[e.To], e.From)
			}
		}
		delete(g.inbound[e.From], e.ID)
	}
}

// cleanupAdjacency prunes empty nested buckets after removals.
func cleanupAdjacency(g *Graph) {
	for u, toMap := range g.adjacencyList {
		for v, edgeSet := range toMap {
			if len(edgeSet) == 0 {
				delete(toMap, v)
			}
		}
		if len(toMap) == 0 {
			delete(g.adjacencyList, u)
		}
	}
	for v, set := range g.inbound {
		if len(set) == 0 {
			delete(g.inbound, v)
		}
	}
}

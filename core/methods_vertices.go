package core

import "sort"

// AddVertex registers id. Adding an existing vertex is a no-op.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	addVertexLocked(g, id)

	return nil
}

// addVertexLocked registers id if absent; caller holds muVert and muEdgeAdj.
func addVertexLocked(g *Graph, id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	ensureAdjacency(g, id, id)
}

// HasVertex reports whether id is a vertex of g.
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes id together with every edge touching it, so no
// dangling arc is left in the inbound index.
//
// Complexity: O(E).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	for eid, e := range g.edges {
		if e.From != id && e.To != id {
			continue
		}
		delete(g.edges, eid)
		removeAdjacency(g, e)
	}
	delete(g.vertices, id)
	delete(g.adjacencyList, id)
	delete(g.inbound, id)
	cleanupAdjacency(g)

	return nil
}

// Vertices returns every vertex ID in ascending order. Nodes uses the same
// order, which makes traversals deterministic.
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()
	sort.Strings(ids)

	return ids
}

func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

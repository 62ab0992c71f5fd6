// SPDX-License-Identifier: MIT

package core

import "github.com/katalvlaran/dagpath/graph"

var _ graph.Digraph[string, *Edge] = (*Graph)(nil)

// Nodes returns all vertex IDs sorted ascending. A nil *Graph has no nodes.
func (g *Graph) Nodes() []string {
	if g == nil {
		return nil
	}

	return g.Vertices()
}

// Incoming returns the arcs entering id in edge creation order.
//
// For a directed edge u→id the arc source is u. An undirected edge {id,v}
// enters id from v, so undirected graphs read as having a 2-cycle per edge.
// An unknown id, or a nil *Graph, yields no arcs.
//
// Complexity: O(d log d).
func (g *Graph) Incoming(id string) []graph.Arc[string, *Edge] {
	if g == nil {
		return nil
	}
	g.muEdgeAdj.RLock()
	edges := inboundEdges(g, id)
	g.muEdgeAdj.RUnlock()

	arcs := make([]graph.Arc[string, *Edge], 0, len(edges))
	for _, e := range edges {
		from := e.From
		if !e.Directed && e.From == id {
			from = e.To
		}
		arcs = append(arcs, graph.Arc[string, *Edge]{From: from, Edge: e})
	}

	return arcs
}

package core_test

import (
	"fmt"

	"github.com/katalvlaran/dagpath/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create a directed, weighted graph:
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())

	// 2) Add edges (auto-adds vertices A, B, C):
	_, _ = g.AddEdge("A", "B", 4)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("A", "C", 2)

	// 3) Inspect vertices and edges:
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B→A exists?", g.HasEdge("B", "A"))
	for _, arc := range g.Incoming("C") {
		fmt.Printf("%s→C via %s (w=%d)\n", arc.From, arc.Edge.ID, arc.Edge.Weight)
	}

	// 4) Remove a vertex and its edges:
	_ = g.RemoveVertex("B")
	fmt.Println("After removing B:", g.Vertices(), g.EdgeCount())

	// Output:
	// Vertices: [A B C]
	// Edge B→A exists? false
	// B→C via e2 (w=1)
	// A→C via e3 (w=2)
	// After removing B: [A C] 1
}

// ExampleTranspose reverses a chain.
func ExampleTranspose() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("build", "test", 0)
	_, _ = g.AddEdge("test", "deploy", 0)

	tg := core.Transpose(g)
	for _, e := range tg.Edges() {
		fmt.Println(e.From, "→", e.To)
	}

	// Output:
	// test → build
	// deploy → test
}

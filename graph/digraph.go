// SPDX-License-Identifier: MIT
//
// File: digraph.go
// Role: Minimal read-only capability set consumed by dfs and longestpath.
// Policy:
//   - No storage here; concrete graphs (core.Graph, List) implement Digraph.
//   - Iteration order of Nodes and Incoming is part of the implementation's
//     contract and drives every deterministic tie-break downstream.

package graph

// Arc is one incoming edge as seen from its target node.
//
// From is the source node; Edge is the implementation-specific edge reference
// handed unchanged to weight evaluators.
type Arc[N comparable, E any] struct {
	// From is the node the edge leaves.
	From N

	// Edge identifies the edge for the caller (pointer, index, struct...).
	Edge E
}

// Digraph is the read-only view of a directed graph required by the
// algorithms in this module.
//
// Contract:
//   - Nodes returns every node exactly once, in a deterministic order.
//   - Incoming(n) returns every edge whose target is n, in a deterministic order.
//     Unknown nodes yield an empty result.
//   - Implementations must not be mutated while an algorithm holds them.
type Digraph[N comparable, E any] interface {
	Nodes() []N
	Incoming(n N) []Arc[N, E]
}

// Package longestpath finds a maximum-weight path in a directed acyclic graph.
//
// What:
//
//   - Solve:     the node sequence of a longest path and its total weight.
//   - Length:    the weight alone.
//   - Distances: the forward pass alone, as a Table of per-node Records
//     (best weight of a path ending at the node + predecessor on it).
//   - LongestPath: Solve specialised for *core.Graph and core.Edge.Weight.
//
// The solver is written only against graph.Digraph, so any representation
// exposing Nodes and Incoming works. Weights come from a caller-supplied
// WeightFunc that may fail; any Number type (integers or floats) is accepted.
//
// Why:
//
//   - Critical paths in task graphs (see package cpm), build-time estimates,
//     deepest chains in dependency graphs.
//
// Outcomes:
//
//   - ok == false, err == nil: the graph has a cycle; there is no longest path.
//   - err != nil: the WeightFunc failed. The error is returned as-is and no
//     further edges are evaluated.
//   - ErrNilGraph: g was nil.
//   - The reported weight is never negative: a record whose best incoming
//     candidate is below zero restarts at (0, n) instead of extending it.
//
// Algorithm:
//
//  1. Topological order (dfs.TopologicalSort unless WithSorter is given).
//  2. For each node n in order, over every incoming arc p→n:
//     candidate = rec[p].Weight + weight(edge); rec[n] keeps the greatest.
//     Nodes without incoming arcs, or whose best candidate is negative,
//     get (0, n) and start a path of their own.
//  3. Terminal = node with the greatest record.
//  4. Backtrack through Prev to a self-referencing record, then reverse.
//
// Complexity:
//
//   - Time:   O(V + E) weight evaluations and record writes, plus the sort.
//   - Memory: O(V) for the records.
//
// Negative weights are fine. A path never starts with a negative prefix, so
// for 0→1 (-3), 1→2 (5) the answer is [1 2] with weight 5, and when every
// edge is negative the answer is a single node with weight 0.
//
// Example:
//
//	res, ok, err := longestpath.Solve[string, *core.Edge, int64](g, longestpath.EdgeWeight)
//	if err != nil {
//	    return err
//	}
//	if !ok {
//	    fmt.Println("graph has a cycle")
//	}
//	fmt.Println(res.Path, res.Weight)
package longestpath

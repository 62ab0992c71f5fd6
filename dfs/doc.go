// Package dfs implements the depth-first primitives the longest-path solver
// relies on: topological sort and cycle witnessing, generic over any
// graph.Digraph.
//
// What:
//
//   - TopologicalSort: computes a linear ordering of vertices in a directed
//     acyclic graph (DAG), returning ErrCycleDetected if cycles exist.
//     Traversal follows incoming arcs, so only graph.Digraph is required.
//   - FindCycle: returns one directed cycle as a closed walk, for
//     diagnostics when a DAG was expected but a cycle exists.
//
// Why:
//   - Determine safe execution orders in DAGs (schedulers, build systems)
//   - Provide the trusted ordering consumed by longestpath and cpm
//   - Explain *why* a graph was rejected, not only *that* it was
//
// Key Types & Constants:
//
//   - VertexState: White, Gray, Black (visitation markers)
//   - TopoOption: functional options (WithCancelContext)
//
// Complexity:
//
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - FindCycle:       Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil       graph is nil
//   - ErrCycleDetected  cycle discovered in DAG operations
//   - context.Canceled  sort canceled via WithCancelContext
//
// Functions:
//
//   - TopologicalSort[N, E](g graph.Digraph[N, E], opts ...TopoOption) ([]N, error)
//   - FindCycle[N, E](g graph.Digraph[N, E]) ([]N, bool)
//
// Type parameters cannot be inferred from a concrete graph value, so call
// sites instantiate explicitly, e.g. dfs.TopologicalSort[string, *core.Edge](g).
package dfs

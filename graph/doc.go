// Package graph declares the capability interface shared by every algorithm
// in dagpath, plus a tiny generic implementation of it.
//
// What:
//
//   - Digraph[N, E]: node enumeration + incoming-edge enumeration. That is all
//     the longest-path solver and the topological sort ever ask of a graph.
//   - Arc[N, E]: an incoming edge, carrying its source node and an opaque
//     per-edge reference E handed to caller-supplied weight functions.
//   - List[N, D]: insertion-ordered directed multigraph over any comparable
//     node type, for callers that do not want core.Graph's string IDs.
//
// Why:
//
//   - Algorithms stay independent of storage: core.Graph, List, or any
//     caller-owned structure with two methods can be solved directly.
//
// Determinism:
//
//   - Algorithms break ties by the order of Nodes() and Incoming(); both must
//     be stable for repeatable results.
package graph

// Package core provides a thread-safe in-memory Graph with string vertex IDs
// and a minimal, composable API surface. It is the concrete graph behind the
// dagpath command line and the cpm scheduler.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Global vs. per-edge orientation in "mixed" graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}, plus an inbound index
//   - Atomic Edge.ID generation ("e1", "e2", ...), ordered by sequence number
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Graph implements graph.Digraph[string, *Edge] (Nodes, Incoming), so the
// generic algorithms in dfs and longestpath run on it directly:
//
//	order, err := dfs.TopologicalSort[string, *core.Edge](g)
//
// Incoming policy: a directed edge u→v enters v only; an undirected edge
// enters both endpoints. An undirected edge is therefore a 2-cycle for any
// algorithm that requires a DAG.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(E)
//
//	// Edge lifecycle
//	AddEdge(from,to string, weight int64, opts ...EdgeOption) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error    // O(1)†
//	HasEdge(from,to string) bool       // O(1)
//	GetEdge(edgeID string) (*Edge, error)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)    // outgoing, creation order
//	InNeighbors(id string) ([]*Edge, error)  // incoming, creation order
//	NeighborIDs(id string) ([]string, error) // unique, sorted
//	Vertices() []string                      // sorted
//	Edges() []*Edge                          // creation order
//	VertexCount() int; EdgeCount() int
//
//	// Views
//	Transpose(g *Graph) *Graph               // every edge reversed
//
// † plus cleanup of empty adjacency buckets.
//
// Errors:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound, ErrBadWeight,
//	ErrLoopNotAllowed, ErrMultiEdgeNotAllowed, ErrMixedEdgesNotAllowed
package core

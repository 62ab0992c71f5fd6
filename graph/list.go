package graph

// Link is a directed edge stored in a List.
//
// ID is the insertion index of the link (0, 1, 2, ...), stable for the
// lifetime of the List.
type Link[N comparable, D any] struct {
	ID   int
	From N
	To   N
	Data D
}

// List is a generic, insertion-ordered directed multigraph.
//
// It is the smallest useful Digraph: node IDs may be any comparable type
// (ints, structs, strings) and every edge carries an arbitrary payload D.
// Nodes() preserves first-insertion order; Incoming(n) preserves edge
// insertion order. List is not safe for concurrent mutation.
type List[N comparable, D any] struct {
	nodes []N
	index map[N]int
	links []*Link[N, D]
	in    map[N][]*Link[N, D]
}

// NewList returns an empty List.
func NewList[N comparable, D any]() *List[N, D] {
	return &List[N, D]{
		index: make(map[N]int),
		in:    make(map[N][]*Link[N, D]),
	}
}

// AddNode inserts n if absent and reports whether it was added.
// Complexity: O(1) amortized.
func (l *List[N, D]) AddNode(n N) bool {
	if _, ok := l.index[n]; ok {
		return false
	}
	l.index[n] = len(l.nodes)
	l.nodes = append(l.nodes, n)

	return true
}

// AddEdge appends a directed edge from→to, creating missing endpoints.
// Parallel edges and self-loops are kept as-is.
// Complexity: O(1) amortized.
func (l *List[N, D]) AddEdge(from, to N, data D) *Link[N, D] {
	l.AddNode(from)
	l.AddNode(to)
	link := &Link[N, D]{ID: len(l.links), From: from, To: to, Data: data}
	l.links = append(l.links, link)
	l.in[to] = append(l.in[to], link)

	return link
}

// HasNode reports whether n was added.
func (l *List[N, D]) HasNode(n N) bool {
	if l == nil {
		return false
	}
	_, ok := l.index[n]
	return ok
}

// Len returns the number of nodes.
func (l *List[N, D]) Len() int {
	if l == nil {
		return 0
	}

	return len(l.nodes)
}

// Links returns all edges in insertion order. The slice is a copy; the
// links themselves are shared and must be treated as read-only.
func (l *List[N, D]) Links() []*Link[N, D] {
	if l == nil {
		return nil
	}
	out := make([]*Link[N, D], len(l.links))
	copy(out, l.links)

	return out
}

// Nodes returns node IDs in first-insertion order. A nil *List has none.
func (l *List[N, D]) Nodes() []N {
	if l == nil {
		return nil
	}
	out := make([]N, len(l.nodes))
	copy(out, l.nodes)

	return out
}

// Incoming returns the arcs entering n in edge insertion order.
func (l *List[N, D]) Incoming(n N) []Arc[N, *Link[N, D]] {
	if l == nil {
		return nil
	}
	links := l.in[n]
	if len(links) == 0 {
		return nil
	}
	out := make([]Arc[N, *Link[N, D]], len(links))
	for i, link := range links {
		out[i] = Arc[N, *Link[N, D]]{From: link.From, Edge: link}
	}

	return out
}

var _ Digraph[int, *Link[int, struct{}]] = (*List[int, struct{}])(nil)

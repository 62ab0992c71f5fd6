package longestpath

// Table is the result of the forward pass: a topological order and the best
// Record of every node in it. A Table is immutable once returned.
type Table[N comparable, W Number] struct {
	order   []N
	records map[N]Record[N, W]
}

// Order returns the topological order the records were computed in.
func (t *Table[N, W]) Order() []N {
	out := make([]N, len(t.order))
	copy(out, t.order)

	return out
}

// Record returns the record of n and whether n is part of the table.
func (t *Table[N, W]) Record(n N) (Record[N, W], bool) {
	rec, ok := t.records[n]
	return rec, ok
}

// Terminal returns the node with the greatest record weight, the first such
// node in topological order on ties. found is false for an empty table.
func (t *Table[N, W]) Terminal() (end N, weight W, found bool) {
	for _, n := range t.order {
		rec := t.records[n]
		if !found || rec.Weight > weight {
			end, weight, found = n, rec.Weight, true
		}
	}

	return end, weight, found
}

// PathTo backtracks from n to the start of its best path and returns it in
// start→end order. Unknown nodes yield nil.
//
// Complexity: O(length of the path).
func (t *Table[N, W]) PathTo(n N) []N {
	rec, ok := t.records[n]
	if !ok {
		return nil
	}

	path := []N{n}
	cur := n
	for rec.Prev != cur {
		cur = rec.Prev
		path = append(path, cur)
		rec = t.records[cur]
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

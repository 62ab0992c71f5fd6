package longestpath

import (
	"github.com/katalvlaran/dagpath/core"
)

// EdgeWeight weighs a core edge by its stored Weight.
func EdgeWeight(e *core.Edge) (int64, error) { return e.Weight, nil }

// LongestPath is Solve specialised for *core.Graph, weighing every edge by
// core.Edge.Weight. An unweighted graph therefore has a longest path of
// weight 0; pass UnitWeight to Solve to count edges instead.
//
// Undirected edges enter both endpoints, so any graph holding one reports
// ok == false.
func LongestPath(g *core.Graph, opts ...Option[string, *core.Edge]) ([]string, int64, bool, error) {
	if g == nil {
		return nil, 0, false, ErrNilGraph
	}
	res, ok, err := Solve[string, *core.Edge, int64](g, EdgeWeight, opts...)
	if err != nil || !ok {
		return nil, 0, ok, err
	}

	return res.Path, res.Weight, true, nil
}

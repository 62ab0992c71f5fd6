package longestpath_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dagpath/core"
	"github.com/katalvlaran/dagpath/graph"
	"github.com/katalvlaran/dagpath/longestpath"
)

// ExampleLongestPath finds the slowest chain of a small build pipeline.
//
//	fetch ─3─► build ─5─► test ─2─► ship
//	  └──1──► lint ──1──────┘
func ExampleLongestPath() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("fetch", "build", 3)
	_, _ = g.AddEdge("build", "test", 5)
	_, _ = g.AddEdge("fetch", "lint", 1)
	_, _ = g.AddEdge("lint", "test", 1)
	_, _ = g.AddEdge("test", "ship", 2)

	path, weight, ok, err := longestpath.LongestPath(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ok, path, weight)

	// Output:
	// true [fetch build test ship] 10
}

// ExampleSolve runs the solver on integer node IDs with a fallible weight
// function and shows the three possible outcomes.
func ExampleSolve() {
	type hop = *graph.Link[int, float64]
	errNegative := errors.New("negative weight")
	strict := func(l hop) (float64, error) {
		if l.Data < 0 {
			return 0, errNegative
		}
		return l.Data, nil
	}

	dag := graph.NewList[int, float64]()
	dag.AddEdge(0, 1, 1.5)
	dag.AddEdge(1, 2, 2.5)
	dag.AddEdge(0, 2, 3)
	res, ok, err := longestpath.Solve[int, hop, float64](dag, strict)
	fmt.Println(res.Path, res.Weight, ok, err)

	cyclic := graph.NewList[int, float64]()
	cyclic.AddEdge(0, 1, 1)
	cyclic.AddEdge(1, 0, 1)
	_, ok, err = longestpath.Solve[int, hop, float64](cyclic, strict)
	fmt.Println(ok, err)

	bad := graph.NewList[int, float64]()
	bad.AddEdge(0, 1, -1)
	_, ok, err = longestpath.Solve[int, hop, float64](bad, strict)
	fmt.Println(ok, errors.Is(err, errNegative))

	// Output:
	// [0 1 2] 4 true <nil>
	// false <nil>
	// false true
}

package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dagpath/graph"
)

func TestList_AddNodeIdempotent(t *testing.T) {
	l := graph.NewList[int, struct{}]()
	assert.True(t, l.AddNode(3))
	assert.False(t, l.AddNode(3))
	assert.True(t, l.HasNode(3))
	assert.False(t, l.HasNode(4))
	assert.Equal(t, 1, l.Len())
}

func TestList_InsertionOrder(t *testing.T) {
	l := graph.NewList[int, string]()
	l.AddNode(2)
	l.AddEdge(0, 1, "a")
	l.AddEdge(1, 2, "b")
	l.AddEdge(0, 2, "c")

	assert.Equal(t, []int{2, 0, 1}, l.Nodes())

	in := l.Incoming(2)
	require.Len(t, in, 2)
	assert.Equal(t, 1, in[0].From)
	assert.Equal(t, "b", in[0].Edge.Data)
	assert.Equal(t, 0, in[1].From)
	assert.Equal(t, "c", in[1].Edge.Data)

	assert.Empty(t, l.Incoming(0))
	assert.Empty(t, l.Incoming(42))
}

func TestList_LinksAreStable(t *testing.T) {
	l := graph.NewList[string, int]()
	ab := l.AddEdge("a", "b", 7)
	ab2 := l.AddEdge("a", "b", 9) // parallel edge is kept
	loop := l.AddEdge("c", "c", 1)

	links := l.Links()
	require.Len(t, links, 3)
	assert.Same(t, ab, links[0])
	assert.Same(t, ab2, links[1])
	assert.Same(t, loop, links[2])
	assert.Equal(t, []int{0, 1, 2}, []int{ab.ID, ab2.ID, loop.ID})

	// mutating the returned slice must not affect the list
	links[0] = nil
	assert.NotNil(t, l.Links()[0])
}

func TestList_NilReceiver(t *testing.T) {
	var l *graph.List[string, int]
	assert.Nil(t, l.Nodes())
	assert.Nil(t, l.Incoming("a"))
	assert.Nil(t, l.Links())
	assert.False(t, l.HasNode("a"))
	assert.Zero(t, l.Len())
}

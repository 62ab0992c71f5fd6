// Package graphfile reads graph documents and turns them into core graphs,
// lazily evaluated edge weights and cpm tasks.
//
// A document lists variables, nodes (with an optional duration) and edges
// (with an optional weight). YAML and JSON documents are decoded with yaml.v3;
// HCL documents with hclparse/gohcl. Weights and durations are HCL
// expressions in every format, evaluated against the variables only when
// asked for, so a bad expression fails the solve that needs it rather than
// the load.
package graphfile

import (
	"math/big"
	"sync"

	"github.com/hashicorp/hcl/v2"
	"github.com/juju/errors"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/dagpath/core"
	"github.com/katalvlaran/dagpath/cpm"
)

// DefaultWeight is the weight of an edge that does not set one.
const DefaultWeight = 1.0

// Node is a declared vertex. Duration is nil when absent.
type Node struct {
	ID       string
	Duration hcl.Expression
}

// Edge is a directed dependency From → To. Weight is nil when absent.
type Edge struct {
	From   string
	To     string
	Weight hcl.Expression
}

// Document is a parsed graph file.
type Document struct {
	Name  string
	Vars  map[string]cty.Value
	Nodes []Node
	Edges []Edge

	once     sync.Once
	graph    *core.Graph
	byEdge   map[string]int // core edge ID → index in Edges
	graphErr error
}

// Graph builds (once) the directed core graph of the document. Loops and
// parallel edges are kept so that cycles reach the solver.
//
// When Nodes is non-empty every edge endpoint must be declared; otherwise
// endpoints are created on demand.
func (d *Document) Graph() (*core.Graph, error) {
	d.once.Do(func() { d.graph, d.byEdge, d.graphErr = d.build() })

	return d.graph, d.graphErr
}

func (d *Document) build() (*core.Graph, map[string]int, error) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops())
	declared := make(map[string]bool, len(d.Nodes))
	for _, n := range d.Nodes {
		if n.ID == "" {
			return nil, nil, errors.NotValidf("%s: node without id", d.Name)
		}
		if declared[n.ID] {
			return nil, nil, errors.NotValidf("%s: duplicate node %q", d.Name, n.ID)
		}
		declared[n.ID] = true
		if err := g.AddVertex(n.ID); err != nil {
			return nil, nil, errors.Trace(err)
		}
	}

	byEdge := make(map[string]int, len(d.Edges))
	for i, e := range d.Edges {
		if e.From == "" || e.To == "" {
			return nil, nil, errors.NotValidf("%s: edge #%d without endpoints", d.Name, i+1)
		}
		if len(d.Nodes) > 0 {
			for _, id := range []string{e.From, e.To} {
				if !declared[id] {
					return nil, nil, errors.NotFoundf("%s: node %q of edge %s -> %s", d.Name, id, e.From, e.To)
				}
			}
		}
		eid, err := g.AddEdge(e.From, e.To, 0)
		if err != nil {
			return nil, nil, errors.Annotatef(err, "%s: edge %s -> %s", d.Name, e.From, e.To)
		}
		byEdge[eid] = i
	}

	return g, byEdge, nil
}

// Weight evaluates the weight of a core edge produced by Graph. It is the
// fallible weight function handed to longestpath.
func (d *Document) Weight(e *core.Edge) (float64, error) {
	i, ok := d.byEdge[e.ID]
	if !ok {
		return 0, errors.NotFoundf("%s: edge %s", d.Name, e.ID)
	}
	edge := d.Edges[i]
	w, set, err := d.number(edge.Weight)
	if err != nil {
		return 0, errors.Annotatef(err, "weight of %s -> %s", edge.From, edge.To)
	}
	if !set {
		return DefaultWeight, nil
	}

	return w, nil
}

// Tasks converts the document into cpm tasks: every node is a task and
// every edge From → To makes To depend on From. Durations must be whole
// numbers; a missing duration is 0 (cpm.DefaultDuration applies).
func (d *Document) Tasks() ([]cpm.Task, error) {
	var (
		tasks []cpm.Task
		index = make(map[string]int)
	)
	add := func(id string) int {
		if i, ok := index[id]; ok {
			return i
		}
		index[id] = len(tasks)
		tasks = append(tasks, cpm.Task{ID: id})
		return len(tasks) - 1
	}

	for _, n := range d.Nodes {
		i := add(n.ID)
		f, set, err := d.number(n.Duration)
		if err != nil {
			return nil, errors.Annotatef(err, "%s: duration of %s", d.Name, n.ID)
		}
		if !set {
			continue
		}
		bf := big.NewFloat(f)
		if !bf.IsInt() {
			return nil, errors.NotValidf("%s: duration of %s is %v, not a whole number", d.Name, n.ID, f)
		}
		dur, acc := bf.Int64()
		if acc != big.Exact {
			return nil, errors.NotValidf("%s: duration of %s is out of range", d.Name, n.ID)
		}
		tasks[i].Duration = dur
	}
	for _, e := range d.Edges {
		add(e.From)
		i := add(e.To)
		tasks[i].DependsOn = append(tasks[i].DependsOn, e.From)
	}

	return tasks, nil
}

// number evaluates expr against Vars. set is false for a nil expression or
// a null result.
func (d *Document) number(expr hcl.Expression) (value float64, set bool, err error) {
	if expr == nil {
		return 0, false, nil
	}
	val, diags := expr.Value(d.evalContext())
	if diags.HasErrors() {
		return 0, false, diags
	}
	if val.IsNull() {
		return 0, false, nil
	}
	if !val.IsWhollyKnown() {
		return 0, false, errors.NotValidf("unknown value")
	}
	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, false, errors.NotValidf("%s is not a number", val.Type().FriendlyName())
	}
	if err = gocty.FromCtyValue(num, &value); err != nil {
		return 0, false, errors.Trace(err)
	}

	return value, true, nil
}

func (d *Document) evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{Variables: d.Vars}
}

package cpm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/dagpath/core"
	"github.com/katalvlaran/dagpath/dfs"
	"github.com/katalvlaran/dagpath/longestpath"
)

// Analyze computes the critical path schedule of tasks.
//
// Steps:
//  1. Validate tasks and build the dependency graph dep → task.
//  2. Forward pass: ES(t) is the longest path ending at t where an arc
//     weighs the duration of its source. EF = ES + duration.
//  3. TotalDuration = max EF; the critical path is backtracked from the
//     first task (topological order) finishing last.
//  4. Backward pass on the transposed graph with the same weights gives the
//     longest tail after each task: LF = TotalDuration - tail, LS = LF - duration.
//  5. Slack = LS - ES; Critical iff Slack == 0. Waves group tasks by ES.
//
// Errors: ErrEmptyTaskID, ErrDuplicateTask, ErrNegativeDuration,
// ErrUnknownDependency, ErrCycle (wrapped with the offending IDs).
//
// Complexity: O(V + E) plus sorting of waves.
func Analyze(tasks []Task) (*Schedule, error) {
	// 1) Graph and durations
	g, dur, err := buildGraph(tasks)
	if err != nil {
		return nil, err
	}
	weight := func(e *core.Edge) (int64, error) { return dur[e.From], nil }

	// 2) Forward pass
	fwd, ok, err := longestpath.Distances[string, *core.Edge, int64](g, weight)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, cycleError(g)
	}

	s := &Schedule{
		Tasks: make(map[string]*TaskSchedule, len(tasks)),
		Order: fwd.Order(),
	}
	var last string
	for _, id := range s.Order {
		rec, _ := fwd.Record(id)
		ts := &TaskSchedule{ID: id, Duration: dur[id], ES: rec.Weight, EF: rec.Weight + dur[id]}
		s.Tasks[id] = ts
		if ts.EF > s.TotalDuration {
			s.TotalDuration = ts.EF
			last = id
		}
	}
	if last != "" {
		s.CriticalPath = fwd.PathTo(last)
	}

	// 3) Backward pass
	bwd, ok, err := longestpath.Distances[string, *core.Edge, int64](core.Transpose(g), weight)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, cycleError(g)
	}
	for _, id := range s.Order {
		rec, _ := bwd.Record(id)
		ts := s.Tasks[id]
		ts.LF = s.TotalDuration - rec.Weight
		ts.LS = ts.LF - ts.Duration
		ts.Slack = ts.LS - ts.ES
		ts.Critical = ts.Slack == 0
	}

	// 4) Waves
	s.Waves = computeWaves(s)

	return s, nil
}

// buildGraph validates tasks and returns the dependency graph with one
// directed edge dep → task per listed dependency, plus effective durations.
func buildGraph(tasks []Task) (*core.Graph, map[string]int64, error) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops())
	dur := make(map[string]int64, len(tasks))

	for _, t := range tasks {
		if t.ID == "" {
			return nil, nil, ErrEmptyTaskID
		}
		if _, dup := dur[t.ID]; dup {
			return nil, nil, fmt.Errorf("%w: %s", ErrDuplicateTask, t.ID)
		}
		switch {
		case t.Duration < 0:
			return nil, nil, fmt.Errorf("%w: %s has %d", ErrNegativeDuration, t.ID, t.Duration)
		case t.Duration == 0:
			dur[t.ID] = DefaultDuration
		default:
			dur[t.ID] = t.Duration
		}
		if err := g.AddVertex(t.ID); err != nil {
			return nil, nil, err
		}
	}

	for _, t := range tasks {
		for _, dep := range t.DependsOn {
			if _, ok := dur[dep]; !ok {
				return nil, nil, fmt.Errorf("%w: %s depends on %q", ErrUnknownDependency, t.ID, dep)
			}
			if _, err := g.AddEdge(dep, t.ID, 0); err != nil {
				return nil, nil, err
			}
		}
	}

	return g, dur, nil
}

// cycleError wraps ErrCycle with one witness cycle.
func cycleError(g *core.Graph) error {
	if cycle, ok := dfs.FindCycle[string, *core.Edge](g); ok {
		return fmt.Errorf("%w: %s", ErrCycle, strings.Join(cycle, " -> "))
	}

	return ErrCycle
}

// computeWaves groups tasks by earliest start, critical tasks first.
func computeWaves(s *Schedule) []Wave {
	groups := make(map[int64][]string)
	for _, id := range s.Order {
		es := s.Tasks[id].ES
		groups[es] = append(groups[es], id)
	}

	starts := make([]int64, 0, len(groups))
	for es := range groups {
		starts = append(starts, es)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i] < starts[j] })

	waves := make([]Wave, len(starts))
	for i, es := range starts {
		ids := groups[es]
		sort.Slice(ids, func(a, b int) bool {
			ca, cb := s.Tasks[ids[a]].Critical, s.Tasks[ids[b]].Critical
			if ca != cb {
				return ca
			}
			return ids[a] < ids[b]
		})

		critical := false
		for _, id := range ids {
			s.Tasks[id].Wave = i
			critical = critical || s.Tasks[id].Critical
		}
		waves[i] = Wave{Index: i, Start: es, TaskIDs: ids, Critical: critical}
	}

	return waves
}

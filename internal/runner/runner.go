// Package runner connects graph documents, configuration and the solvers.
// Every command of dagpath is one call into this package.
package runner

import (
	"context"
	"io"
	"strings"

	"github.com/gammazero/workerpool"
	"github.com/google/uuid"
	"github.com/juju/errors"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/dagpath/core"
	"github.com/katalvlaran/dagpath/cpm"
	"github.com/katalvlaran/dagpath/dfs"
	"github.com/katalvlaran/dagpath/graph"
	"github.com/katalvlaran/dagpath/internal/config"
	"github.com/katalvlaran/dagpath/internal/graphfile"
	"github.com/katalvlaran/dagpath/longestpath"
)

// ErrCyclic is returned by SolvePath for a cyclic graph when
// Config.FailOnCycle is set.
var ErrCyclic = errors.New("graph has a cycle")

// PathReport is the outcome of a longest path solve on one document.
type PathReport struct {
	Name    string   `json:"name" yaml:"name"`
	Path    []string `json:"path" yaml:"path"`
	Weight  float64  `json:"weight" yaml:"weight"`
	Acyclic bool     `json:"acyclic" yaml:"acyclic"`
	Cycle   []string `json:"cycle,omitempty" yaml:"cycle,omitempty"`
}

// BatchItem is the result for one path of Batch. Exactly one of Report and
// Err is set.
type BatchItem struct {
	Path   string      `json:"path" yaml:"path"`
	Report *PathReport `json:"report,omitempty" yaml:"report,omitempty"`
	Err    error       `json:"-" yaml:"-"`
}

// ConfigureLogging applies the level and formatter of cfg to the standard
// logrus logger and sends its output to out.
func ConfigureLogging(cfg *config.Config, out io.Writer) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.NotValidf("log level %q", cfg.LogLevel)
	}
	log.SetLevel(level)
	if cfg.LogJSON {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	}
	log.SetOutput(out)

	return nil
}

// Load reads the document at path using the attribute keys of cfg.
func Load(path string, cfg *config.Config) (*graphfile.Document, error) {
	doc, err := graphfile.Load(path,
		graphfile.WithWeightKey(cfg.WeightKey),
		graphfile.WithDurationKey(cfg.DurationKey),
	)

	return doc, errors.Trace(err)
}

// SolvePath finds a longest path of doc. A cyclic graph yields a report
// with Acyclic false and a witness cycle, or ErrCyclic with FailOnCycle.
func SolvePath(doc *graphfile.Document, cfg *config.Config) (*PathReport, error) {
	return SolvePathContext(context.Background(), doc, cfg)
}

// SolvePathContext is SolvePath with a topological sort that stops once ctx
// is done, returning its error.
func SolvePathContext(ctx context.Context, doc *graphfile.Document, cfg *config.Config) (*PathReport, error) {
	g, err := doc.Graph()
	if err != nil {
		return nil, errors.Trace(err)
	}

	res, ok, err := longestpath.Solve[string, *core.Edge, float64](g, weightFunc(doc, cfg), sortWithin(ctx))
	if err != nil {
		return nil, errors.Annotatef(err, "%s", doc.Name)
	}
	if !ok {
		return cycleReport(ctx, g, doc.Name, cfg)
	}

	report := &PathReport{Name: doc.Name, Path: res.Path, Weight: res.Weight, Acyclic: true}
	log.Debugf("%s: longest path of %d nodes, weight %v", doc.Name, len(res.Path), res.Weight)

	return report, nil
}

// SolveLength is SolvePath without the path: only the weight is computed.
func SolveLength(doc *graphfile.Document, cfg *config.Config) (*PathReport, error) {
	g, err := doc.Graph()
	if err != nil {
		return nil, errors.Trace(err)
	}

	total, ok, err := longestpath.Length[string, *core.Edge, float64](g, weightFunc(doc, cfg))
	if err != nil {
		return nil, errors.Annotatef(err, "%s", doc.Name)
	}
	if !ok {
		return cycleReport(context.Background(), g, doc.Name, cfg)
	}
	log.Debugf("%s: longest path weight %v", doc.Name, total)

	return &PathReport{Name: doc.Name, Weight: total, Acyclic: true}, nil
}

func weightFunc(doc *graphfile.Document, cfg *config.Config) longestpath.WeightFunc[*core.Edge, float64] {
	if cfg.UnitWeights {
		return longestpath.UnitWeight[*core.Edge, float64]
	}

	return doc.Weight
}

// sortWithin makes the solver's topological sort honour ctx.
func sortWithin(ctx context.Context) longestpath.Option[string, *core.Edge] {
	return longestpath.WithSorter[string, *core.Edge](func(g graph.Digraph[string, *core.Edge]) ([]string, error) {
		return dfs.TopologicalSort[string, *core.Edge](g, dfs.WithCancelContext(ctx))
	})
}

// cycleReport explains a failed solve. The solver reads any sort error as a
// cycle, so a done ctx is checked first.
func cycleReport(ctx context.Context, g *core.Graph, name string, cfg *config.Config) (*PathReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Trace(err)
	}

	report := &PathReport{Name: name}
	report.Cycle, _ = dfs.FindCycle[string, *core.Edge](g)
	witness := strings.Join(report.Cycle, " -> ")
	if cfg.FailOnCycle {
		return report, errors.Annotatef(ErrCyclic, "%s: %s", name, witness)
	}
	log.Warnf("%s: no longest path, cycle %s", name, witness)

	return report, nil
}

// SolveSchedule runs the critical path method over the tasks of doc.
func SolveSchedule(doc *graphfile.Document) (*cpm.Schedule, error) {
	tasks, err := doc.Tasks()
	if err != nil {
		return nil, errors.Trace(err)
	}
	s, err := cpm.Analyze(tasks)
	if err != nil {
		return nil, errors.Annotatef(err, "%s", doc.Name)
	}
	log.Debugf("%s: %d tasks, total duration %d", doc.Name, len(tasks), s.TotalDuration)

	return s, nil
}

// FindCycle reports one cycle of doc, or (nil, false) when it is acyclic.
func FindCycle(doc *graphfile.Document) ([]string, bool, error) {
	g, err := doc.Graph()
	if err != nil {
		return nil, false, errors.Trace(err)
	}
	cycle, found := dfs.FindCycle[string, *core.Edge](g)

	return cycle, found, nil
}

// Batch loads and solves every path on a pool of cfg.Concurrency workers.
// Items keep the order of paths. Once ctx is done the remaining items fail
// with its error.
func Batch(ctx context.Context, paths []string, cfg *config.Config) []*BatchItem {
	logger := log.WithField("run", uuid.NewString()[:8])
	logger.Infof("solving %d documents with %d workers", len(paths), cfg.Concurrency)

	items := make([]*BatchItem, len(paths))
	wp := workerpool.New(cfg.Concurrency)
	for i, path := range paths {
		path := path
		item := &BatchItem{Path: path}
		items[i] = item
		wp.Submit(func() {
			if err := ctx.Err(); err != nil {
				item.Err = errors.Trace(err)
				return
			}
			doc, err := Load(path, cfg)
			if err == nil {
				item.Report, err = SolvePathContext(ctx, doc, cfg)
			}
			if err != nil {
				item.Report = nil
				item.Err = err
				logger.Errorf("%s failed: %v", path, err)
			}
		})
	}
	wp.StopWait()

	return items
}

// Package render writes solver results as text, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/juju/errors"
	"github.com/muesli/termenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dagpath/cpm"
	"github.com/katalvlaran/dagpath/internal/runner"
)

// Output formats.
const (
	Text = "text"
	JSON = "json"
	YAML = "yaml"
)

const arrow = " → "

var (
	colorCritical = lipgloss.Color("#2CD7C7")
	colorWarning  = lipgloss.Color("#F4D03F")
	colorError    = lipgloss.Color("#E74C3C")
)

type styles struct {
	title    lipgloss.Style
	critical lipgloss.Style
	warning  lipgloss.Style
	err      lipgloss.Style
}

// Printer writes results to one writer in one format.
type Printer struct {
	w      io.Writer
	format string
	styles styles
}

// New returns a Printer. color only affects the text format.
func New(w io.Writer, format string, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		w:      w,
		format: format,
		styles: styles{
			title:    r.NewStyle().Bold(true),
			critical: r.NewStyle().Foreground(colorCritical).Bold(true),
			warning:  r.NewStyle().Foreground(colorWarning),
			err:      r.NewStyle().Foreground(colorError),
		},
	}
}

// Path writes a longest path report.
func (p *Printer) Path(r *runner.PathReport) error {
	if p.format != Text {
		return p.encode(r)
	}
	if !r.Acyclic {
		return p.cycleLine(r.Name, r.Cycle)
	}

	_, err := fmt.Fprintf(p.w, "%s: %s (weight %s)\n",
		r.Name, p.styles.critical.Render(joinPath(r.Path)), cast.ToString(r.Weight))

	return errors.Trace(err)
}

// Length writes only the weight of a longest path.
func (p *Printer) Length(r *runner.PathReport) error {
	if p.format != Text {
		return p.encode(struct {
			Name    string  `json:"name" yaml:"name"`
			Weight  float64 `json:"weight" yaml:"weight"`
			Acyclic bool    `json:"acyclic" yaml:"acyclic"`
		}{r.Name, r.Weight, r.Acyclic})
	}
	if !r.Acyclic {
		return p.cycleLine(r.Name, r.Cycle)
	}

	_, err := fmt.Fprintln(p.w, cast.ToString(r.Weight))

	return errors.Trace(err)
}

// Cycle writes the outcome of a cycle search.
func (p *Printer) Cycle(name string, cycle []string, found bool) error {
	if p.format != Text {
		return p.encode(struct {
			Name    string   `json:"name" yaml:"name"`
			Acyclic bool     `json:"acyclic" yaml:"acyclic"`
			Cycle   []string `json:"cycle,omitempty" yaml:"cycle,omitempty"`
		}{name, !found, cycle})
	}
	if !found {
		_, err := fmt.Fprintf(p.w, "%s: acyclic\n", name)
		return errors.Trace(err)
	}

	return p.cycleLine(name, cycle)
}

// Schedule writes a critical path analysis. The text form is a task table
// in topological order followed by the waves.
func (p *Printer) Schedule(name string, s *cpm.Schedule) error {
	if p.format != Text {
		return p.encode(s)
	}

	if _, err := fmt.Fprintf(p.w, "%s: total duration %d, critical path %s\n",
		name, s.TotalDuration, p.styles.critical.Render(joinPath(s.CriticalPath))); err != nil {
		return errors.Trace(err)
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TASK\tDUR\tES\tEF\tLS\tLF\tSLACK\tWAVE")
	for _, id := range s.Order {
		ts := s.Tasks[id]
		mark := ""
		if ts.Critical {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			ts.ID, mark, ts.Duration, ts.ES, ts.EF, ts.LS, ts.LF, ts.Slack, ts.Wave)
	}
	if err := tw.Flush(); err != nil {
		return errors.Trace(err)
	}

	for _, w := range s.Waves {
		line := fmt.Sprintf("wave %d @%d: %s", w.Index, w.Start, strings.Join(w.TaskIDs, " "))
		if w.Critical {
			line = p.styles.title.Render(line)
		}
		if _, err := fmt.Fprintln(p.w, line); err != nil {
			return errors.Trace(err)
		}
	}

	return nil
}

type batchEntry struct {
	Path   string             `json:"path" yaml:"path"`
	Report *runner.PathReport `json:"report,omitempty" yaml:"report,omitempty"`
	Error  string             `json:"error,omitempty" yaml:"error,omitempty"`
}

// Batch writes one entry per item, failures included.
func (p *Printer) Batch(items []*runner.BatchItem) error {
	if p.format != Text {
		entries := make([]batchEntry, 0, len(items))
		for _, it := range items {
			e := batchEntry{Path: it.Path, Report: it.Report}
			if it.Err != nil {
				e.Error = it.Err.Error()
			}
			entries = append(entries, e)
		}
		return p.encode(entries)
	}

	for _, it := range items {
		var err error
		switch {
		case it.Err != nil:
			_, err = fmt.Fprintf(p.w, "%s: %s\n", it.Path, p.styles.err.Render("error: "+it.Err.Error()))
		default:
			err = p.Path(it.Report)
		}
		if err != nil {
			return errors.Trace(err)
		}
	}

	return nil
}

func (p *Printer) cycleLine(name string, cycle []string) error {
	_, err := fmt.Fprintf(p.w, "%s: %s\n", name, p.styles.warning.Render("cycle "+joinPath(cycle)))

	return errors.Trace(err)
}

func (p *Printer) encode(v interface{}) error {
	switch p.format {
	case JSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return errors.Trace(enc.Encode(v))
	case YAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Trace(err)
		}
		return errors.Trace(enc.Close())
	default:
		return errors.NotSupportedf("output format %q", p.format)
	}
}

func joinPath(path []string) string {
	return strings.Join(path, arrow)
}

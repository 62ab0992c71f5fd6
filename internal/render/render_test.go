package render_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	juju "github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dagpath/cpm"
	"github.com/katalvlaran/dagpath/internal/render"
	"github.com/katalvlaran/dagpath/internal/runner"
)

var (
	solved = &runner.PathReport{
		Name:    "release.yaml",
		Path:    []string{"design", "code", "release"},
		Weight:  8,
		Acyclic: true,
	}
	cyclic = &runner.PathReport{
		Name:  "loop.yaml",
		Cycle: []string{"a", "b", "a"},
	}
)

func schedule(t *testing.T) *cpm.Schedule {
	t.Helper()
	s, err := cpm.Analyze([]cpm.Task{
		{ID: "design", Duration: 3},
		{ID: "docs", Duration: 1, DependsOn: []string{"design"}},
		{ID: "code", Duration: 5, DependsOn: []string{"design"}},
		{ID: "release", Duration: 1, DependsOn: []string{"code", "docs"}},
	})
	require.NoError(t, err)

	return s
}

func TestPath_Text(t *testing.T) {
	var buf bytes.Buffer
	p := render.New(&buf, render.Text, false)
	require.NoError(t, p.Path(solved))
	require.NoError(t, p.Path(cyclic))

	assert.Equal(t,
		"release.yaml: design → code → release (weight 8)\n"+
			"loop.yaml: cycle a → b → a\n",
		buf.String())
}

func TestPath_Color(t *testing.T) {
	var plain, colored bytes.Buffer
	require.NoError(t, render.New(&plain, render.Text, false).Path(solved))
	require.NoError(t, render.New(&colored, render.Text, true).Path(solved))

	assert.NotContains(t, plain.String(), "\x1b[")
	assert.Contains(t, colored.String(), "\x1b[")
}

func TestPath_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.New(&buf, render.JSON, true).Path(solved))

	var got runner.PathReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *solved, got)
	assert.NotContains(t, buf.String(), "cycle", "empty cycle is omitted")
}

func TestLength(t *testing.T) {
	var buf bytes.Buffer
	p := render.New(&buf, render.Text, false)
	require.NoError(t, p.Length(&runner.PathReport{Name: "x", Weight: 2.5, Acyclic: true}))
	require.NoError(t, p.Length(cyclic))
	assert.Equal(t, "2.5\nloop.yaml: cycle a → b → a\n", buf.String())

	buf.Reset()
	require.NoError(t, render.New(&buf, render.YAML, false).Length(solved))
	assert.Equal(t, "name: release.yaml\nweight: 8\nacyclic: true\n", buf.String())
}

func TestCycle(t *testing.T) {
	var buf bytes.Buffer
	p := render.New(&buf, render.Text, false)
	require.NoError(t, p.Cycle("g.yaml", nil, false))
	require.NoError(t, p.Cycle("g.yaml", []string{"a", "a"}, true))
	assert.Equal(t, "g.yaml: acyclic\ng.yaml: cycle a → a\n", buf.String())

	buf.Reset()
	require.NoError(t, render.New(&buf, render.JSON, false).Cycle("g.yaml", []string{"a", "a"}, true))
	assert.JSONEq(t, `{"name":"g.yaml","acyclic":false,"cycle":["a","a"]}`, buf.String())
}

func TestSchedule_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.New(&buf, render.Text, false).Schedule("release.yaml", schedule(t)))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "release.yaml: total duration 9, critical path design → code → release", lines[0])
	assert.Equal(t, []string{"TASK", "DUR", "ES", "EF", "LS", "LF", "SLACK", "WAVE"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"design*", "3", "0", "3", "0", "3", "0", "0"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"code*", "5", "3", "8", "3", "8", "0", "1"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"docs", "1", "3", "4", "7", "8", "4", "1"}, strings.Fields(lines[4]))
	assert.Equal(t, []string{"release*", "1", "8", "9", "8", "9", "0", "2"}, strings.Fields(lines[5]))
	assert.Equal(t, "wave 0 @0: design", lines[6])
	assert.Equal(t, "wave 1 @3: code docs", lines[7])
	assert.Equal(t, "wave 2 @8: release", lines[8])
}

func TestSchedule_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.New(&buf, render.YAML, false).Schedule("release.yaml", schedule(t)))

	var got cpm.Schedule
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, int64(9), got.TotalDuration)
	assert.Equal(t, []string{"design", "code", "release"}, got.CriticalPath)
	assert.Equal(t, int64(4), got.Tasks["docs"].Slack)
	assert.Len(t, got.Waves, 3)
}

func TestBatch(t *testing.T) {
	items := []*runner.BatchItem{
		{Path: "release.yaml", Report: solved},
		{Path: "bad.toml", Err: errors.New("unsupported")},
	}

	var buf bytes.Buffer
	require.NoError(t, render.New(&buf, render.Text, false).Batch(items))
	assert.Equal(t,
		"release.yaml: design → code → release (weight 8)\n"+
			"bad.toml: error: unsupported\n",
		buf.String())

	buf.Reset()
	require.NoError(t, render.New(&buf, render.JSON, false).Batch(items))
	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "unsupported", got[1]["error"])
	assert.NotContains(t, got[0], "error")
	assert.NotContains(t, got[1], "report")
}

func TestUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := render.New(&buf, "xml", false).Path(solved)
	assert.True(t, juju.IsNotSupported(err), "got %v", err)
	assert.Empty(t, buf.String())
}

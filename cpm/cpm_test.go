package cpm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dagpath/cpm"
)

// assertSchedule checks ES, EF, LS, LF, slack and criticality of one task.
func assertSchedule(t *testing.T, ts *cpm.TaskSchedule, es, ef, ls, lf, slack int64, critical bool) {
	t.Helper()
	require.NotNil(t, ts)
	assert.Equalf(t, es, ts.ES, "%s ES", ts.ID)
	assert.Equalf(t, ef, ts.EF, "%s EF", ts.ID)
	assert.Equalf(t, ls, ts.LS, "%s LS", ts.ID)
	assert.Equalf(t, lf, ts.LF, "%s LF", ts.ID)
	assert.Equalf(t, slack, ts.Slack, "%s slack", ts.ID)
	assert.Equalf(t, critical, ts.Critical, "%s critical", ts.ID)
}

func TestAnalyze_Empty(t *testing.T) {
	s, err := cpm.Analyze(nil)
	require.NoError(t, err)
	assert.Zero(t, s.TotalDuration)
	assert.Empty(t, s.Tasks)
	assert.Empty(t, s.CriticalPath)
	assert.Empty(t, s.Waves)
}

func TestAnalyze_LinearChain(t *testing.T) {
	s, err := cpm.Analyze([]cpm.Task{
		{ID: "a"},
		{ID: "b", DependsOn: []string{"a"}},
		{ID: "c", DependsOn: []string{"b"}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), s.TotalDuration)
	assert.Equal(t, []string{"a", "b", "c"}, s.CriticalPath)
	assert.Len(t, s.Waves, 3)
	assertSchedule(t, s.Tasks["a"], 0, 1, 0, 1, 0, true)
	assertSchedule(t, s.Tasks["b"], 1, 2, 1, 2, 0, true)
	assertSchedule(t, s.Tasks["c"], 2, 3, 2, 3, 0, true)
}

func TestAnalyze_Diamond(t *testing.T) {
	s, err := cpm.Analyze([]cpm.Task{
		{ID: "a"},
		{ID: "b", DependsOn: []string{"a"}},
		{ID: "c", DependsOn: []string{"a"}},
		{ID: "d", DependsOn: []string{"b", "c"}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), s.TotalDuration)
	require.Len(t, s.Waves, 3)
	assert.Equal(t, []string{"b", "c"}, s.Waves[1].TaskIDs)
	assert.True(t, s.Waves[1].Critical)
	assert.Equal(t, int64(1), s.Waves[1].Start)
	assert.Equal(t, 1, s.Tasks["c"].Wave)
	// both branches are critical; the first maximal predecessor is kept
	assert.Equal(t, []string{"a", "b", "d"}, s.CriticalPath)
}

func TestAnalyze_Slack(t *testing.T) {
	s, err := cpm.Analyze([]cpm.Task{
		{ID: "a", Duration: 3},
		{ID: "b", Duration: 1},
		{ID: "c", Duration: 1, DependsOn: []string{"a", "b"}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4), s.TotalDuration)
	assert.Equal(t, []string{"a", "c"}, s.CriticalPath)
	assertSchedule(t, s.Tasks["a"], 0, 3, 0, 3, 0, true)
	assertSchedule(t, s.Tasks["b"], 0, 1, 2, 3, 2, false)
	assertSchedule(t, s.Tasks["c"], 3, 4, 3, 4, 0, true)

	require.Len(t, s.Waves, 2)
	assert.Equal(t, []string{"a", "b"}, s.Waves[0].TaskIDs, "critical tasks lead their wave")
	assert.Equal(t, []string{"c"}, s.Waves[1].TaskIDs)
}

// TestAnalyze_IndependentChains has two unrelated chains of different length.
func TestAnalyze_IndependentChains(t *testing.T) {
	s, err := cpm.Analyze([]cpm.Task{
		{ID: "x1", Duration: 2},
		{ID: "x2", Duration: 2, DependsOn: []string{"x1"}},
		{ID: "y1", Duration: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4), s.TotalDuration)
	assert.Equal(t, []string{"x1", "x2"}, s.CriticalPath)
	assertSchedule(t, s.Tasks["y1"], 0, 1, 3, 4, 3, false)
}

func TestAnalyze_DuplicateDependencyIsHarmless(t *testing.T) {
	s, err := cpm.Analyze([]cpm.Task{
		{ID: "a", Duration: 2},
		{ID: "b", DependsOn: []string{"a", "a"}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), s.TotalDuration)
}

func TestAnalyze_Errors(t *testing.T) {
	cases := []struct {
		name  string
		tasks []cpm.Task
		want  error
	}{
		{"empty id", []cpm.Task{{ID: ""}}, cpm.ErrEmptyTaskID},
		{"duplicate", []cpm.Task{{ID: "a"}, {ID: "a"}}, cpm.ErrDuplicateTask},
		{"negative", []cpm.Task{{ID: "a", Duration: -1}}, cpm.ErrNegativeDuration},
		{"unknown dep", []cpm.Task{{ID: "a", DependsOn: []string{"zz"}}}, cpm.ErrUnknownDependency},
		{"cycle", []cpm.Task{
			{ID: "a", DependsOn: []string{"c"}},
			{ID: "b", DependsOn: []string{"a"}},
			{ID: "c", DependsOn: []string{"b"}},
		}, cpm.ErrCycle},
		{"self dependency", []cpm.Task{{ID: "a", DependsOn: []string{"a"}}}, cpm.ErrCycle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := cpm.Analyze(tc.tasks)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAnalyze_CycleNamesTasks(t *testing.T) {
	_, err := cpm.Analyze([]cpm.Task{
		{ID: "a", DependsOn: []string{"b"}},
		{ID: "b", DependsOn: []string{"a"}},
	})
	require.ErrorIs(t, err, cpm.ErrCycle)
	assert.Contains(t, err.Error(), "a")
	assert.Contains(t, err.Error(), "->")
}

// SPDX-License-Identifier: MIT

package cpm

import "errors"

// DefaultDuration replaces a zero Task.Duration.
const DefaultDuration int64 = 1

// Sentinel errors returned by Analyze.
var (
	// ErrEmptyTaskID indicates a task without an identifier.
	ErrEmptyTaskID = errors.New("cpm: task ID is empty")

	// ErrDuplicateTask indicates two tasks sharing one identifier.
	ErrDuplicateTask = errors.New("cpm: duplicate task")

	// ErrUnknownDependency indicates a dependency on a task that was not given.
	ErrUnknownDependency = errors.New("cpm: unknown dependency")

	// ErrNegativeDuration indicates a task with Duration < 0.
	ErrNegativeDuration = errors.New("cpm: negative duration")

	// ErrCycle indicates circular dependencies; no schedule exists.
	ErrCycle = errors.New("cpm: dependency cycle")
)

// Task is one unit of work. DependsOn lists the tasks that must finish
// before this one starts.
type Task struct {
	ID        string
	Duration  int64
	DependsOn []string
}

// TaskSchedule holds the scheduling figures of one task.
type TaskSchedule struct {
	ID       string `json:"id" yaml:"id"`
	Duration int64  `json:"duration" yaml:"duration"`
	ES       int64  `json:"es" yaml:"es"` // earliest start
	EF       int64  `json:"ef" yaml:"ef"` // earliest finish
	LS       int64  `json:"ls" yaml:"ls"` // latest start
	LF       int64  `json:"lf" yaml:"lf"` // latest finish
	Slack    int64  `json:"slack" yaml:"slack"`
	Critical bool   `json:"critical" yaml:"critical"`
	Wave     int    `json:"wave" yaml:"wave"`
}

// Wave is a group of tasks sharing one earliest start; they can run in parallel.
type Wave struct {
	Index    int      `json:"index" yaml:"index"`
	Start    int64    `json:"start" yaml:"start"`
	TaskIDs  []string `json:"tasks" yaml:"tasks"` // critical tasks first, then by ID
	Critical bool     `json:"critical" yaml:"critical"`
}

// Schedule is the complete critical path analysis.
type Schedule struct {
	Tasks         map[string]*TaskSchedule `json:"tasks" yaml:"tasks"`
	Order         []string                 `json:"order" yaml:"order"`                 // topological order
	CriticalPath  []string                 `json:"critical_path" yaml:"critical_path"` // start→end
	TotalDuration int64                    `json:"total_duration" yaml:"total_duration"`
	Waves         []Wave                   `json:"waves" yaml:"waves"`
}

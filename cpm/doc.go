// Package cpm schedules dependent tasks with the critical path method.
//
// Every task has a duration and a list of tasks it depends on. Analyze
// returns, per task, the earliest and latest start and finish times, the
// slack, whether the task is critical (zero slack), and the parallel wave it
// belongs to, plus the overall duration and one critical path.
//
// Both passes are longest-path problems and are solved by package
// longestpath: the forward pass on the dependency graph, the backward pass on
// its transpose. An arc always weighs the duration of its source task.
//
// Durations of 0 are read as DefaultDuration. A dependency cycle makes the
// schedule undefined and is reported as ErrCycle.
package cpm

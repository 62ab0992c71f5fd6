package main

import (
	"github.com/juju/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dagpath/internal/config"
	"github.com/katalvlaran/dagpath/internal/graphfile"
	"github.com/katalvlaran/dagpath/internal/runner"
)

func (c *cli) pathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path FILE",
		Short: "Print a maximum-weight path",
		Long: `Print a maximum-weight path of the graph in FILE and its weight.

Edges without a weight weigh 1. A cyclic graph has no longest path: one
cycle is printed instead, or the command fails with --fail-on-cycle.

Examples:
  dagpath path pipeline.yaml
  dagpath path pipeline.yaml --unit
  dagpath path pipeline.hcl --fail-on-cycle --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := c.solve(args[0], func(doc *graphfile.Document, cfg *config.Config) (*runner.PathReport, error) {
				return runner.SolvePathContext(cmd.Context(), doc, cfg)
			})
			if report != nil {
				if perr := c.printer(cmd).Path(report); perr != nil {
					return errors.Trace(perr)
				}
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&c.unit, "unit", false, "Ignore weights and count edges")
	cmd.Flags().BoolVar(&c.failOnCycle, "fail-on-cycle", false, "Fail when the graph has a cycle")

	return cmd
}

func (c *cli) lengthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "length FILE",
		Short: "Print the weight of a maximum-weight path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := c.solve(args[0], runner.SolveLength)
			if err != nil {
				return err
			}
			return c.printer(cmd).Length(report)
		},
	}
	cmd.Flags().BoolVar(&c.unit, "unit", false, "Ignore weights and count edges")

	return cmd
}

func (c *cli) scheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule FILE",
		Short: "Print the critical-path schedule of the tasks in FILE",
		Long: `Treat every node as a task and every edge A -> B as "B depends on A",
then print earliest and latest start and finish, slack, the critical path
and the waves of tasks that may run in parallel.

Durations must be whole numbers; a missing or zero duration counts as 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := runner.Load(args[0], c.cfg)
			if err != nil {
				return err
			}
			s, err := runner.SolveSchedule(doc)
			if err != nil {
				return err
			}
			return c.printer(cmd).Schedule(doc.Name, s)
		},
	}
}

func (c *cli) batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch FILE...",
		Short: "Solve the longest path of many documents concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := runner.Batch(cmd.Context(), args, c.cfg)
			if err := c.printer(cmd).Batch(items); err != nil {
				return errors.Trace(err)
			}
			failed := 0
			for _, it := range items {
				if it.Err != nil {
					failed++
				}
			}
			if failed > 0 {
				return errors.Errorf("%d of %d documents failed", failed, len(items))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&c.concurrency, "concurrency", config.New().Concurrency, "Documents solved at once")
	cmd.Flags().BoolVar(&c.unit, "unit", false, "Ignore weights and count edges")

	return cmd
}

func (c *cli) cycleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cycle FILE",
		Short: "Print one cycle of the graph, or report it acyclic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := runner.Load(args[0], c.cfg)
			if err != nil {
				return err
			}
			cycle, found, err := runner.FindCycle(doc)
			if err != nil {
				return err
			}
			return c.printer(cmd).Cycle(doc.Name, cycle, found)
		},
	}
}

type solveFunc func(*graphfile.Document, *config.Config) (*runner.PathReport, error)

func (c *cli) solve(path string, fn solveFunc) (*runner.PathReport, error) {
	doc, err := runner.Load(path, c.cfg)
	if err != nil {
		return nil, err
	}

	return fn(doc, c.cfg)
}

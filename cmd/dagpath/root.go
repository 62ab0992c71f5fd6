package main

import (
	"io"
	"os"

	"github.com/juju/errors"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dagpath/internal/config"
	"github.com/katalvlaran/dagpath/internal/render"
	"github.com/katalvlaran/dagpath/internal/runner"
)

// cli holds the flag values of one command tree.
type cli struct {
	configPath  string
	logLevel    string
	logJSON     bool
	format      string
	color       string
	concurrency int
	unit        bool
	failOnCycle bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	defaults := config.New()

	rootCmd := &cobra.Command{
		Use:   "dagpath",
		Short: "Longest paths and critical-path schedules of dependency graphs",
		Long: `dagpath reads a graph document and reports its maximum-weight path,
its critical-path schedule or one of its cycles.

Documents are YAML (.yaml, .yml), JSON (.json) or HCL (.hcl):

  vars:  {base: 2}
  nodes: [{id: build, duration: 3}, {id: test, duration: base}]
  edges: [{from: build, to: test, weight: base * 2}]

Examples:
  dagpath path pipeline.yaml
  dagpath schedule release.hcl --format json
  dagpath batch graphs/*.yaml --concurrency 8`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "YAML configuration file")
	flags.StringVar(&c.logLevel, "log-level", defaults.LogLevel, "Log level: trace, debug, info, warn, error")
	flags.BoolVar(&c.logJSON, "log-json", defaults.LogJSON, "Write logs as JSON")
	flags.StringVar(&c.format, "format", defaults.Format, "Output format: text, json, yaml")
	flags.StringVar(&c.color, "color", defaults.Color, "Colors in text output: auto, always, never")

	rootCmd.AddCommand(
		c.pathCmd(),
		c.lengthCmd(),
		c.scheduleCmd(),
		c.batchCmd(),
		c.cycleCmd(),
	)

	return rootCmd
}

// setup resolves the configuration: defaults, then the --config file, then
// the flags given on the command line.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	var opts []config.Option
	changed := cmd.Flags().Changed
	if changed("log-level") {
		opts = append(opts, config.WithLogLevel(c.logLevel))
	}
	if changed("log-json") {
		opts = append(opts, config.WithLogJSON(c.logJSON))
	}
	if changed("format") {
		opts = append(opts, config.WithFormat(c.format))
	}
	if changed("color") {
		opts = append(opts, config.WithColor(c.color))
	}
	if changed("concurrency") {
		opts = append(opts, config.WithConcurrency(c.concurrency))
	}
	if changed("unit") {
		opts = append(opts, config.WithUnitWeights(c.unit))
	}
	if changed("fail-on-cycle") {
		opts = append(opts, config.WithFailOnCycle(c.failOnCycle))
	}

	cfg, err := config.Load(c.configPath, opts...)
	if err != nil {
		return errors.Trace(err)
	}
	if err = runner.ConfigureLogging(cfg, cmd.ErrOrStderr()); err != nil {
		return errors.Trace(err)
	}
	c.cfg = cfg

	return nil
}

func (c *cli) printer(cmd *cobra.Command) *render.Printer {
	out := cmd.OutOrStdout()

	return render.New(out, c.cfg.Format, useColor(c.cfg.Color, out))
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

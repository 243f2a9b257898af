package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tteague19/advent-of-code-2024/internal/runlog"
	"github.com/tteague19/advent-of-code-2024/pkg/config"
	"github.com/tteague19/advent-of-code-2024/pkg/dataset"
	"github.com/tteague19/advent-of-code-2024/pkg/exercise"
	"github.com/tteague19/advent-of-code-2024/pkg/surface"
)

func newDay01Cmd() *cobra.Command {
	var (
		outputFmt string
		noLog     bool
	)

	cmd := &cobra.Command{
		Use:   "day01 <input-file> <part>",
		Short: "Day 1: Historian Hysteria",
		Long: `Solves Day 1 over a two-column CSV of integers. Part 1 computes the
total distance between the sorted columns, part 2 the similarity score.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDay01(cmd, day01Opts{
				inputPath: args[0],
				part:      args[1],
				outputFmt: outputFmt,
				noLog:     noLog,
			})
		},
	}

	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&noLog, "no-log", false, "Do not record the answer in the run log")

	return cmd
}

type day01Opts struct {
	inputPath string
	part      string
	outputFmt string
	noLog     bool
}

func runDay01(cmd *cobra.Command, opts day01Opts) error {
	part, err := exercise.ParsePart(opts.part)
	if err != nil {
		return err
	}

	d, err := dataset.Load(opts.inputPath)
	if err != nil {
		return err
	}

	result, err := exercise.Solve(d, part)
	if err != nil {
		return err
	}

	var renderer surface.Renderer
	switch opts.outputFmt {
	case "json":
		renderer = &surface.JSONRenderer{}
	default:
		renderer = &surface.TerminalRenderer{}
	}
	if err := renderer.Render(cmd.OutOrStdout(), &result); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	if cfg := loadConfig(); !opts.noLog && !cfg.Runs.Disabled {
		saveRunRecord(runlog.NewRecord(result, opts.inputPath))
	}

	return nil
}

// saveRunRecord persists a run record to the cache. Best effort: a run-log
// failure never fails the run itself.
func saveRunRecord(rec runlog.Record) {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to resolve working directory: %v\n", err)
		return
	}
	if err := runlog.Save(config.RunDir(cwd), rec); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save run record: %v\n", err)
	}
}

func loadConfig() *config.Config {
	cwd, err := os.Getwd()
	if err != nil {
		return config.DefaultConfig()
	}
	cfgFile := config.FindConfigFile(cwd)
	if cfgFile == "" {
		return config.DefaultConfig()
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

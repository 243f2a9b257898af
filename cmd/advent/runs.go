package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tteague19/advent-of-code-2024/internal/runlog"
	"github.com/tteague19/advent-of-code-2024/pkg/config"
	"github.com/tteague19/advent-of-code-2024/pkg/surface"
)

func newRunsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded answers, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRuns(cmd, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of runs to show")

	return cmd
}

func runRuns(cmd *cobra.Command, limit int) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	records, err := runlog.List(config.RunDir(cwd))
	if err != nil {
		return err
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	entries := make([]surface.HistoryEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, surface.HistoryEntry{
			When:    rec.ComputedAt,
			Summary: fmt.Sprintf("day %d part %d: the %s is %d", rec.Day, rec.Part, rec.Label, rec.Answer),
			ID:      rec.ID,
		})
	}

	renderer := &surface.TerminalRenderer{}
	return renderer.RenderHistory(cmd.OutOrStdout(), entries)
}

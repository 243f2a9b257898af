// Package surface renders exercise results for the terminal.
package surface

import (
	"fmt"
	"io"
	"os"

	"github.com/tteague19/advent-of-code-2024/pkg/exercise"
)

// TerminalRenderer renders results and run history as terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorDim   = "\033[2m"
)

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

// Render writes the answer line for a result. The line is deliberately
// plain so it can be pasted straight into the puzzle answer box.
func (r *TerminalRenderer) Render(w io.Writer, result *exercise.Result) error {
	label := result.Label
	if label == "" {
		return fmt.Errorf("result has no label")
	}
	_, err := fmt.Fprintf(w, "The %s is: %d\n", label, result.Answer)
	return err
}

// HistoryEntry is one run-log line for display.
type HistoryEntry struct {
	When    string // RFC 3339 timestamp
	Summary string // e.g. "day 1 part 2: the similarity score is 31"
	ID      string
}

// RenderHistory writes recorded runs, most recent first.
func (r *TerminalRenderer) RenderHistory(w io.Writer, entries []HistoryEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No recorded runs.")
		return err
	}

	fmt.Fprintf(w, "%s\n\n", bold(fmt.Sprintf("Recorded runs (%d)", len(entries))))
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "  %s  %s  %s\n", dim(e.When), e.Summary, dim(e.ID)); err != nil {
			return err
		}
	}
	return nil
}

// Package surface defines output rendering for exercise results.
// Implementations handle different output targets: terminal and JSON.
package surface

import (
	"io"

	"github.com/tteague19/advent-of-code-2024/pkg/exercise"
)

// Renderer produces formatted output from a solved result.
type Renderer interface {
	// Render writes the formatted result to the writer.
	Render(w io.Writer, result *exercise.Result) error
}

package surface

import (
	"encoding/json"
	"io"

	"github.com/tteague19/advent-of-code-2024/pkg/exercise"
)

// JSONRenderer marshals a Result to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, result *exercise.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

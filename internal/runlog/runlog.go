// Package runlog records computed answers under the cache directory so
// earlier results can be reviewed without re-running the exercise.
package runlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tteague19/advent-of-code-2024/pkg/exercise"
)

// Record is one computed answer.
type Record struct {
	ID         string `json:"id"`
	Day        int    `json:"day"`
	Part       int    `json:"part"`
	Label      string `json:"label"`
	Answer     int64  `json:"answer"`
	Input      string `json:"input"`
	ComputedAt string `json:"computed_at"` // RFC 3339, UTC
}

// NewRecord builds a Record for a solved result.
func NewRecord(result exercise.Result, inputPath string) Record {
	return Record{
		ID:         uuid.NewString(),
		Day:        result.Day,
		Part:       int(result.Part),
		Label:      result.Label,
		Answer:     result.Answer,
		Input:      inputPath,
		ComputedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// Save writes a record to the run-log directory as JSON.
func Save(dir string, rec Record) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create run-log dir: %w", err)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal run record: %w", err)
	}

	path := filepath.Join(dir, rec.ID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write run record: %w", err)
	}
	return nil
}

// List reads all records in the run-log directory, most recent first.
// A missing directory is an empty log, not an error.
func List(dir string) ([]Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read run-log dir: %w", err)
	}

	var records []Record
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read run record %s: %w", e.Name(), err)
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("parse run record %s: %w", e.Name(), err)
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].ComputedAt > records[j].ComputedAt
	})
	return records, nil
}

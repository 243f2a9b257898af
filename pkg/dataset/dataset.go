// Package dataset loads and validates the two-column integer tables used as
// puzzle input. A valid input file is a UTF-8 CSV with exactly the columns
// "left" and "right" (in either order), every value a 64-bit signed integer.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Dataset is a validated two-column integer table. Left and Right always
// have equal length. Immutable once loaded.
type Dataset struct {
	Left  []int64
	Right []int64
}

// Rows returns the number of data rows.
func (d *Dataset) Rows() int {
	return len(d.Left)
}

// Load reads and validates a puzzle input file.
//
// Validation runs in a fixed order against a single read of the file:
// the ".csv" extension check (before any I/O), then the column-name check,
// then the per-column integer check (left column first). Each failure is
// reported with a typed error; content that cannot be parsed as CSV at all
// is wrapped and propagated unclassified.
func Load(path string) (*Dataset, error) {
	if ext := filepath.Ext(path); ext != ".csv" {
		return nil, &FileTypeError{Ext: ext}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if len(records) == 0 {
		return nil, &SchemaError{Columns: nil}
	}

	header := records[0]
	leftIdx, rightIdx := -1, -1
	for i, name := range header {
		switch name {
		case "left":
			leftIdx = i
		case "right":
			rightIdx = i
		}
	}
	if len(header) != 2 || leftIdx < 0 || rightIdx < 0 {
		return nil, &SchemaError{Columns: header}
	}

	rows := records[1:]
	left, err := parseColumn(rows, leftIdx, "left")
	if err != nil {
		return nil, err
	}
	right, err := parseColumn(rows, rightIdx, "right")
	if err != nil {
		return nil, err
	}

	return &Dataset{Left: left, Right: right}, nil
}

// parseColumn converts one column of raw CSV rows to int64s. The whole
// column is checked before the next one so the reported column is
// deterministic when both contain bad values.
func parseColumn(rows [][]string, idx int, name string) ([]int64, error) {
	vals := make([]int64, 0, len(rows))
	for _, row := range rows {
		v, err := strconv.ParseInt(row[idx], 10, 64)
		if err != nil {
			return nil, &DataTypeError{Column: name, Value: row[idx]}
		}
		vals = append(vals, v)
	}
	return vals, nil
}

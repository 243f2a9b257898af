package dataset_test

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tteague19/advent-of-code-2024/pkg/dataset"
)

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func TestLoadValidFile(t *testing.T) {
	path := writeInput(t, "day01.csv", "left,right\n3,4\n4,3\n2,5\n1,3\n3,9\n3,3\n")

	d, err := dataset.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if d.Rows() != 6 {
		t.Errorf("Rows = %d, want 6", d.Rows())
	}
	wantLeft := []int64{3, 4, 2, 1, 3, 3}
	wantRight := []int64{4, 3, 5, 3, 9, 3}
	if !reflect.DeepEqual(d.Left, wantLeft) {
		t.Errorf("Left = %v, want %v", d.Left, wantLeft)
	}
	if !reflect.DeepEqual(d.Right, wantRight) {
		t.Errorf("Right = %v, want %v", d.Right, wantRight)
	}
}

func TestLoadColumnsInEitherOrder(t *testing.T) {
	path := writeInput(t, "day01.csv", "right,left\n10,1\n20,2\n")

	d, err := dataset.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !reflect.DeepEqual(d.Left, []int64{1, 2}) {
		t.Errorf("Left = %v, want [1 2]", d.Left)
	}
	if !reflect.DeepEqual(d.Right, []int64{10, 20}) {
		t.Errorf("Right = %v, want [10 20]", d.Right)
	}
}

func TestLoadNegativeValues(t *testing.T) {
	path := writeInput(t, "day01.csv", "left,right\n-3,4\n4,-3\n")

	d, err := dataset.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Left[0] != -3 || d.Right[1] != -3 {
		t.Errorf("negative values not preserved: Left=%v Right=%v", d.Left, d.Right)
	}
}

func TestLoadHeaderOnly(t *testing.T) {
	path := writeInput(t, "day01.csv", "left,right\n")

	d, err := dataset.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Rows() != 0 {
		t.Errorf("Rows = %d, want 0", d.Rows())
	}
}

func TestLoadWrongExtension(t *testing.T) {
	// Content does not matter: the extension check runs before any I/O.
	path := writeInput(t, "day01.txt", "left,right\n1,2\n")

	_, err := dataset.Load(path)
	var fte *dataset.FileTypeError
	if !errors.As(err, &fte) {
		t.Fatalf("Load error = %v, want *FileTypeError", err)
	}
	if fte.Ext != ".txt" {
		t.Errorf("Ext = %q, want .txt", fte.Ext)
	}
}

func TestLoadWrongExtensionCaseSensitive(t *testing.T) {
	path := writeInput(t, "day01.CSV", "left,right\n1,2\n")

	_, err := dataset.Load(path)
	var fte *dataset.FileTypeError
	if !errors.As(err, &fte) {
		t.Fatalf("Load error = %v, want *FileTypeError", err)
	}
}

func TestLoadWrongColumnNames(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "unrelated names", header: "foo,bar"},
		{name: "one column", header: "left"},
		{name: "extra column", header: "left,right,extra"},
		{name: "duplicate column", header: "left,left"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeInput(t, "day01.csv", tc.header+"\n")

			_, err := dataset.Load(path)
			var se *dataset.SchemaError
			if !errors.As(err, &se) {
				t.Fatalf("Load error = %v, want *SchemaError", err)
			}
		})
	}
}

func TestLoadNonIntegerValue(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantColumn string
	}{
		{name: "left column", content: "left,right\nabc,2\n", wantColumn: "left"},
		{name: "right column", content: "left,right\n1,abc\n", wantColumn: "right"},
		{name: "both bad reports left first", content: "left,right\nabc,def\n", wantColumn: "left"},
		{name: "float value", content: "left,right\n1.5,2\n", wantColumn: "left"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeInput(t, "day01.csv", tc.content)

			_, err := dataset.Load(path)
			var dte *dataset.DataTypeError
			if !errors.As(err, &dte) {
				t.Fatalf("Load error = %v, want *DataTypeError", err)
			}
			if dte.Column != tc.wantColumn {
				t.Errorf("Column = %q, want %q", dte.Column, tc.wantColumn)
			}
		})
	}
}

func TestLoadMalformedFilePropagates(t *testing.T) {
	// A ragged row is a parse failure, not a classified validation failure.
	path := writeInput(t, "day01.csv", "left,right\n1,2\n3\n")

	_, err := dataset.Load(path)
	if err == nil {
		t.Fatal("expected error for ragged row")
	}
	var pe *csv.ParseError
	if !errors.As(err, &pe) {
		t.Errorf("Load error = %v, want wrapped *csv.ParseError", err)
	}
	var se *dataset.SchemaError
	if errors.As(err, &se) {
		t.Error("parse failure must not be classified as a schema error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := dataset.Load(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load error = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestLoadIsRepeatable(t *testing.T) {
	path := writeInput(t, "day01.csv", "left,right\n3,4\n4,3\n")

	first, err := dataset.Load(path)
	if err != nil {
		t.Fatalf("first Load: %v", err)
	}
	second, err := dataset.Load(path)
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated loads differ: %v vs %v", first, second)
	}
}

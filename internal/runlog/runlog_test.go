package runlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tteague19/advent-of-code-2024/pkg/exercise"
)

func TestNewRecord(t *testing.T) {
	result := exercise.Result{Day: 1, Part: exercise.Part2, Label: "similarity score", Answer: 31}
	rec := NewRecord(result, "inputs/day01.csv")

	if rec.ID == "" {
		t.Error("expected a generated ID")
	}
	if rec.Day != 1 || rec.Part != 2 {
		t.Errorf("Day/Part = %d/%d, want 1/2", rec.Day, rec.Part)
	}
	if rec.Answer != 31 {
		t.Errorf("Answer = %d, want 31", rec.Answer)
	}
	if rec.ComputedAt == "" {
		t.Error("expected ComputedAt to be set")
	}
}

func TestSaveAndList(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "runs")

	first := Record{ID: "a1", Day: 1, Part: 1, Label: "total distance", Answer: 11, ComputedAt: "2024-12-01T10:00:00Z"}
	second := Record{ID: "b2", Day: 1, Part: 2, Label: "similarity score", Answer: 31, ComputedAt: "2024-12-01T11:00:00Z"}

	if err := Save(dir, first); err != nil {
		t.Fatalf("Save first: %v", err)
	}
	if err := Save(dir, second); err != nil {
		t.Fatalf("Save second: %v", err)
	}

	// Verify file layout
	if _, err := os.Stat(filepath.Join(dir, "a1.json")); err != nil {
		t.Errorf("expected record file a1.json: %v", err)
	}

	records, err := List(dir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("List returned %d records, want 2", len(records))
	}

	// Most recent first
	if records[0].ID != "b2" || records[1].ID != "a1" {
		t.Errorf("List order = [%s %s], want [b2 a1]", records[0].ID, records[1].ID)
	}
	if records[0].Answer != 31 {
		t.Errorf("Answer = %d, want 31", records[0].Answer)
	}
}

func TestListMissingDirectory(t *testing.T) {
	records, err := List(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty log, got %d records", len(records))
	}
}

func TestListSkipsNonRecordFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("scratch"), 0o644); err != nil {
		t.Fatalf("write stray file: %v", err)
	}
	if err := Save(dir, Record{ID: "c3", ComputedAt: "2024-12-02T09:00:00Z"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	records, err := List(dir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 1 || records[0].ID != "c3" {
		t.Errorf("List = %v, want single record c3", records)
	}
}

package pool

import (
	"path/filepath"
	"testing"
)

func TestWriteAndReadFile(t *testing.T) {
	f := File{
		Document: "cells.md",
		Questions: []Question{
			makeQuestion("q1", 3, 80),
			makeQuestion("q2", 6, 45),
		},
	}

	path := filepath.Join(t.TempDir(), "pool.json")
	if err := WriteFile(path, f); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, p, err := ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Document != "cells.md" {
		t.Errorf("document = %q", got.Document)
	}
	if p.Len() != 2 {
		t.Fatalf("pool len = %d", p.Len())
	}

	q, ok := p.ByID("q2")
	if !ok {
		t.Fatal("q2 missing")
	}
	if q.Tier != 6 || q.PredictedCorrect != 45 {
		t.Errorf("roundtrip mismatch: %+v", q)
	}
}

func TestReadFile_InvalidPool(t *testing.T) {
	bad := makeQuestion("q1", 3, 80)
	bad.CorrectIndex = 9

	path := filepath.Join(t.TempDir(), "pool.json")
	if err := WriteFile(path, File{Questions: []Question{bad}}); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, _, err := ReadFile(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestReadFile_Missing(t *testing.T) {
	if _, _, err := ReadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

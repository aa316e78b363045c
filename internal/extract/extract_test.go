package extract

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFromText_Normalizes(t *testing.T) {
	in := "First line  \r\n\r\n\r\n\r\nSecond line\t\n\n\n"
	doc, err := FromText("notes.txt", in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "First line\n\nSecond line"
	if doc.Text != want {
		t.Errorf("text = %q, want %q", doc.Text, want)
	}
	if doc.Name != "notes.txt" {
		t.Errorf("name = %q", doc.Name)
	}
}

func TestFromText_Empty(t *testing.T) {
	_, err := FromText("blank.txt", "  \n\n\t\n")
	if !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestFromText_InvalidUTF8(t *testing.T) {
	_, err := FromText("bin.txt", string([]byte{0xff, 0xfe, 0x00}))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Biology Notes.md")
	content := "# Cells\n\nThe mitochondrion produces ATP.\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := FromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Name != "Biology Notes.md" {
		t.Errorf("name = %q", doc.Name)
	}
	if !strings.Contains(doc.Text, "mitochondrion") {
		t.Errorf("text missing content: %q", doc.Text)
	}
}

func TestFromFile_UnsupportedExtension(t *testing.T) {
	_, err := FromFile("slides.pdf")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestFromFile_Missing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

// Package extract turns study documents into plain text suitable for
// question generation. Supported inputs are plain text and markdown
// files; binary formats are rejected rather than garbled.
package extract

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// MaxFileSize caps how much of a document is read. Anything past the
// cap is silently ignored; the generator truncates further anyway.
const MaxFileSize = 2 << 20 // 2 MiB

var (
	// ErrUnsupportedFormat indicates the file extension is not one we
	// can extract text from.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrEmptyDocument indicates the file contained no usable text.
	ErrEmptyDocument = errors.New("document contains no text")
)

// Document is the extracted result.
type Document struct {
	// Name is the base filename, used to label sessions in history.
	Name string

	// Text is the normalized document text.
	Text string
}

// supportedExtensions maps lowercase file extensions we accept.
var supportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".text":     true,
}

// FromFile reads and normalizes a document from disk.
func FromFile(path string) (Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		return Document{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, MaxFileSize))
	if err != nil {
		return Document{}, fmt.Errorf("failed to read document: %w", err)
	}

	return FromText(filepath.Base(path), string(raw))
}

// FromText normalizes already-loaded text into a Document.
func FromText(name, text string) (Document, error) {
	if !utf8.ValidString(text) {
		return Document{}, fmt.Errorf("%w: not valid UTF-8", ErrUnsupportedFormat)
	}

	normalized := normalize(text)
	if normalized == "" {
		return Document{}, ErrEmptyDocument
	}

	return Document{Name: name, Text: normalized}, nil
}

// normalize collapses runs of blank lines and trims trailing space so
// the prompt budget is spent on content, not whitespace.
func normalize(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var out []string
	blank := true // swallow leading blanks
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			if !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, line)
	}

	// Drop a trailing blank left by the loop.
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}

	return strings.Join(out, "\n")
}

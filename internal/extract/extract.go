// Package extract turns uploaded documents into analyzable plain text.
// Only plain-text files are supported; binary formats are rejected rather
// than partially decoded.
package extract

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Extraction failure modes surfaced to API callers.
var (
	ErrTooLarge        = errors.New("file exceeds the maximum allowed size")
	ErrUnsupportedType = errors.New("unsupported file type, only plain text is accepted")
	ErrBinaryContent   = errors.New("file content is not text")
	ErrEmpty           = errors.New("file contains no text")
)

// DefaultMaxBytes caps uploads when no limit is configured.
const DefaultMaxBytes = 1 << 20

// binaryProbeThreshold is the fraction of replacement runes above which the
// content is treated as binary rather than mis-encoded text.
const binaryProbeThreshold = 0.10

var textExtensions = map[string]bool{
	".txt":  true,
	".text": true,
	".md":   true,
	"":      true, // pasted content arrives without a name
}

// Extractor reads uploaded files into sanitized UTF-8 text.
type Extractor struct {
	maxBytes int64
}

// New creates an extractor. A non-positive maxBytes falls back to
// DefaultMaxBytes.
func New(maxBytes int64) *Extractor {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Extractor{maxBytes: maxBytes}
}

// Extract reads r into plain text. The filename is used only for type
// checking and may be empty.
func (e *Extractor) Extract(filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !textExtensions[ext] {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}

	// Read one byte past the limit to distinguish at-limit from over it.
	data, err := io.ReadAll(io.LimitReader(r, e.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > e.maxBytes {
		return "", fmt.Errorf("%w: limit %d bytes", ErrTooLarge, e.maxBytes)
	}

	text := sanitize(string(data))
	if looksBinary(string(data), text) {
		return "", ErrBinaryContent
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmpty
	}
	return text, nil
}

// sanitize replaces invalid UTF-8 sequences and strips control characters
// other than whitespace.
func sanitize(s string) string {
	s = strings.ToValidUTF8(s, string(utf8.RuneError))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\t' || r == '\r':
			b.WriteRune(r)
		case r < 0x20 || r == 0x7f:
			// Dropped; NUL and friends break downstream matching.
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// looksBinary reports whether decoding produced enough replacement runes
// that the input was probably not text.
func looksBinary(original, sanitized string) bool {
	if original == "" {
		return false
	}
	replacements := strings.Count(sanitized, string(utf8.RuneError))
	total := utf8.RuneCountInString(sanitized)
	if total == 0 {
		return strings.Contains(original, "\x00")
	}
	return float64(replacements)/float64(total) > binaryProbeThreshold
}

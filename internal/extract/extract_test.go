//nolint:testpackage // exercises unexported sanitize helpers
package extract

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestExtractPlainText(t *testing.T) {
	e := New(1024)

	got, err := e.Extract("notice.txt", strings.NewReader("Government of Nepal budget notice"))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != "Government of Nepal budget notice" {
		t.Errorf("Extract() = %q", got)
	}
}

func TestExtractNepaliText(t *testing.T) {
	e := New(1024)

	text := "नेपाल सरकारले बजेट घोषणा गरेको छ"
	got, err := e.Extract("notice.txt", strings.NewReader(text))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != text {
		t.Errorf("Extract() = %q, want %q", got, text)
	}
}

func TestExtractUnsupportedType(t *testing.T) {
	e := New(1024)

	for _, name := range []string{"report.pdf", "doc.docx", "image.png"} {
		_, err := e.Extract(name, strings.NewReader("content"))
		if !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("Extract(%q) error = %v, want ErrUnsupportedType", name, err)
		}
	}
}

func TestExtractEmptyFilenameAllowed(t *testing.T) {
	e := New(1024)

	got, err := e.Extract("", strings.NewReader("pasted text body"))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != "pasted text body" {
		t.Errorf("Extract() = %q", got)
	}
}

func TestExtractTooLarge(t *testing.T) {
	e := New(10)

	_, err := e.Extract("big.txt", strings.NewReader(strings.Repeat("a", 11)))
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("Extract() error = %v, want ErrTooLarge", err)
	}

	// Exactly at the limit passes.
	if _, err := e.Extract("ok.txt", strings.NewReader(strings.Repeat("a", 10))); err != nil {
		t.Errorf("Extract() at limit error = %v", err)
	}
}

func TestExtractBinaryContent(t *testing.T) {
	e := New(1024)

	binary := bytes.Repeat([]byte{0x00, 0xff, 0xfe, 0x89, 0x50}, 20)
	_, err := e.Extract("data.txt", bytes.NewReader(binary))
	if !errors.Is(err, ErrBinaryContent) {
		t.Fatalf("Extract() error = %v, want ErrBinaryContent", err)
	}
}

func TestExtractEmptyContent(t *testing.T) {
	e := New(1024)

	for _, content := range []string{"", "   \n\t  "} {
		_, err := e.Extract("empty.txt", strings.NewReader(content))
		if !errors.Is(err, ErrEmpty) {
			t.Errorf("Extract(%q) error = %v, want ErrEmpty", content, err)
		}
	}
}

func TestSanitizeStripsControlCharacters(t *testing.T) {
	got := sanitize("line one\x00\x01\nline\ttwo\x7f")
	if got != "line one\nline\ttwo" {
		t.Errorf("sanitize() = %q", got)
	}
}

func TestSanitizeReplacesInvalidUTF8(t *testing.T) {
	got := sanitize("ok\xff\xfeok")
	if !strings.Contains(got, "�") {
		t.Errorf("sanitize() = %q, want replacement rune present", got)
	}
	if !strings.HasPrefix(got, "ok") || !strings.HasSuffix(got, "ok") {
		t.Errorf("sanitize() = %q, surrounding text lost", got)
	}
}

//nolint:testpackage // exercises the unexported excerpt helper
package database

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/niticheck/classifier/internal/domain"
)

func newTestRepo(t *testing.T) *AnalysisHistoryRepository {
	t.Helper()
	db, err := NewSQLiteConnection(Config{Path: ":memory:", MaxConnections: 1})
	if err != nil {
		t.Fatalf("NewSQLiteConnection() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewAnalysisHistoryRepository(db)
}

func testResult(label domain.Label, confidence int) *domain.ClassificationResult {
	return &domain.ClassificationResult{
		Classification:   label,
		Confidence:       confidence,
		ProcessingTimeMs: 12,
		AnalyzedAt:       time.Now().UTC(),
	}
}

func TestCreateAndGetByID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, "Government of Nepal budget announcement", testResult(domain.LabelReal, 85))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == 0 {
		t.Error("Create() did not assign an ID")
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Classification != domain.LabelReal {
		t.Errorf("Classification = %q, want %q", got.Classification, domain.LabelReal)
	}
	if got.Confidence != 85 {
		t.Errorf("Confidence = %d, want 85", got.Confidence)
	}
	if got.TextExcerpt != "Government of Nepal budget announcement" {
		t.Errorf("TextExcerpt = %q", got.TextExcerpt)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByID(context.Background(), 12345)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	labels := []domain.Label{domain.LabelReal, domain.LabelFake, domain.LabelNotPolicy}
	for i, label := range labels {
		result := testResult(label, 50+i)
		result.AnalyzedAt = time.Now().UTC().Add(time.Duration(i) * time.Second)
		if _, err := repo.Create(ctx, "text", result); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	records, err := repo.List(ctx, 10)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("List() returned %d records, want 3", len(records))
	}
	if records[0].Classification != domain.LabelNotPolicy {
		t.Errorf("newest record = %q, want %q", records[0].Classification, domain.LabelNotPolicy)
	}

	limited, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("List(2) returned %d records, want 2", len(limited))
	}
}

func TestCount(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Count() = %d, want 0", count)
	}

	if _, err := repo.Create(ctx, "text", testResult(domain.LabelReal, 80)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	count, err = repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Count() = %d, want 1", count)
	}
}

func TestExcerptTruncation(t *testing.T) {
	long := strings.Repeat("नेपाल ", 100)
	got := excerpt(long)
	if utf8.RuneCountInString(got) != excerptRunes {
		t.Errorf("excerpt rune count = %d, want %d", utf8.RuneCountInString(got), excerptRunes)
	}
	if !utf8.ValidString(got) {
		t.Error("excerpt produced invalid UTF-8")
	}

	short := "short text"
	if excerpt(short) != short {
		t.Errorf("excerpt(%q) = %q, want unchanged", short, excerpt(short))
	}
}

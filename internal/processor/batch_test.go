//nolint:testpackage // exercises worker pool internals
package processor

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/niticheck/classifier/internal/domain"
	"github.com/niticheck/classifier/internal/testhelpers"
)

// echoAnalyzer returns a result whose explanation carries the input text,
// so ordering can be asserted.
type echoAnalyzer struct {
	calls atomic.Int64
}

func (e *echoAnalyzer) Analyze(_ context.Context, text string) *domain.ClassificationResult {
	e.calls.Add(1)
	return &domain.ClassificationResult{
		Classification: domain.LabelNotPolicy,
		Explanation:    text,
	}
}

func TestBatchKeepsInputOrder(t *testing.T) {
	analyzer := &echoAnalyzer{}
	b := New(analyzer, 8, testhelpers.NewMockLogger(), nil)

	texts := make([]string, 50)
	for i := range texts {
		texts[i] = fmt.Sprintf("text-%03d", i)
	}

	results := b.Analyze(context.Background(), texts)

	if len(results) != len(texts) {
		t.Fatalf("got %d results, want %d", len(results), len(texts))
	}
	for i, r := range results {
		if r.Explanation != texts[i] {
			t.Errorf("results[%d] = %q, want %q", i, r.Explanation, texts[i])
		}
	}
	if got := analyzer.calls.Load(); got != int64(len(texts)) {
		t.Errorf("analyzer called %d times, want %d", got, len(texts))
	}
}

func TestBatchEmptyInput(t *testing.T) {
	b := New(&echoAnalyzer{}, 4, testhelpers.NewMockLogger(), nil)

	results := b.Analyze(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestBatchMoreWorkersThanTexts(t *testing.T) {
	b := New(&echoAnalyzer{}, 100, testhelpers.NewMockLogger(), nil)

	results := b.Analyze(context.Background(), []string{"one", "two"})
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
}

func TestBatchDefaultConcurrency(t *testing.T) {
	b := New(&echoAnalyzer{}, 0, testhelpers.NewMockLogger(), nil)
	if b.concurrency != defaultConcurrency {
		t.Errorf("concurrency = %d, want %d", b.concurrency, defaultConcurrency)
	}
}

func TestBatchLogsCompletion(t *testing.T) {
	log := testhelpers.NewMockLogger()
	b := New(&echoAnalyzer{}, 2, log, nil)

	b.Analyze(context.Background(), []string{"a", "b", "c"})

	if !log.HasMessage("Batch analysis complete") {
		var messages []string
		for _, e := range log.Entries() {
			messages = append(messages, e.Message)
		}
		t.Errorf("completion log missing, got: %s", strings.Join(messages, ", "))
	}
}

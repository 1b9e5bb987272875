// Package processor runs analyses over multiple texts with a bounded
// worker pool.
package processor

import (
	"context"
	"sync"
	"time"

	"github.com/niticheck/classifier/internal/domain"
	"github.com/niticheck/classifier/internal/logger"
	"github.com/niticheck/classifier/internal/telemetry"
)

const defaultConcurrency = 4

// Analyzer classifies a single text.
type Analyzer interface {
	Analyze(ctx context.Context, text string) *domain.ClassificationResult
}

// BatchAnalyzer fans texts out to a worker pool. Results keep input order.
type BatchAnalyzer struct {
	analyzer    Analyzer
	concurrency int
	logger      logger.Logger
	telemetry   *telemetry.Provider
}

// New creates a batch analyzer. Non-positive concurrency falls back to a
// small default.
func New(analyzer Analyzer, concurrency int, log logger.Logger, tp *telemetry.Provider) *BatchAnalyzer {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &BatchAnalyzer{
		analyzer:    analyzer,
		concurrency: concurrency,
		logger:      log,
		telemetry:   tp,
	}
}

// Analyze classifies every text and returns results in input order.
func (b *BatchAnalyzer) Analyze(ctx context.Context, texts []string) []*domain.ClassificationResult {
	if len(texts) == 0 {
		return []*domain.ClassificationResult{}
	}

	if b.telemetry != nil {
		b.telemetry.RecordBatch(len(texts))
	}

	start := time.Now()
	results := make([]*domain.ClassificationResult, len(texts))

	type job struct {
		index int
		text  string
	}
	jobs := make(chan job)

	workers := b.concurrency
	if workers > len(texts) {
		workers = len(texts)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.index] = b.analyzer.Analyze(ctx, j.text)
			}
		}()
	}

	for i, text := range texts {
		jobs <- job{index: i, text: text}
	}
	close(jobs)
	wg.Wait()

	b.logger.Info("Batch analysis complete",
		logger.Int("batch_size", len(texts)),
		logger.Int("workers", workers),
		logger.Duration("duration", time.Since(start)),
	)

	return results
}

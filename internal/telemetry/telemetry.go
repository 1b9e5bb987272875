// Package telemetry provides OpenTelemetry instrumentation for the policy
// triage service. It exports Prometheus metrics and provides tracing
// capabilities.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "policy-classifier"

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	// Analysis metrics
	AnalysesTotal    *prometheus.CounterVec
	AnalysisDuration prometheus.Histogram
	BatchSize        prometheus.Histogram
	ShortCircuited   prometheus.Counter

	// Similarity ranking metrics
	RankingDuration prometheus.Histogram

	// Collaborator metrics
	SearchRequests       prometheus.Counter
	SearchFailures       prometheus.Counter
	ExtractionFailures   prometheus.Counter
	HistoryWriteFailures prometheus.Counter
}

// Provider wraps telemetry providers.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics.
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	m := &Metrics{}
	initAnalysisMetrics(m)
	initRankingMetrics(m)
	initCollaboratorMetrics(m)
	return m
}

func initAnalysisMetrics(m *Metrics) {
	m.AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "policy_analyses_total",
		Help: "Total texts analyzed, by resulting classification",
	}, []string{"classification"})

	m.AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "policy_analysis_duration_seconds",
		Help:    "Time to analyze a single text",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 2.5, 5.0},
	})

	m.BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "policy_analysis_batch_size",
		Help:    "Number of texts per batch request",
		Buckets: []float64{1, 5, 10, 25, 50, 100},
	})

	m.ShortCircuited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "policy_analyses_short_circuited_total",
		Help: "Analyses rejected before ranking because the text was too short",
	})
}

func initRankingMetrics(m *Metrics) {
	m.RankingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "policy_similarity_ranking_duration_seconds",
		Help:    "Time spent ranking the corpus (Aho-Corasick + Jaccard)",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
	})
}

func initCollaboratorMetrics(m *Metrics) {
	m.SearchRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "policy_search_requests_total",
		Help: "Total advanced-search requests sent to the generative AI service",
	})

	m.SearchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "policy_search_failures_total",
		Help: "Advanced-search requests that failed",
	})

	m.ExtractionFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "policy_extraction_failures_total",
		Help: "File uploads rejected by the text-extraction stage",
	})

	m.HistoryWriteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "policy_history_write_failures_total",
		Help: "Analysis history rows that failed to persist",
	})
}

// RecordAnalysis records a completed analysis.
func (p *Provider) RecordAnalysis(ctx context.Context, classification string, duration time.Duration) {
	p.Metrics.AnalysesTotal.WithLabelValues(classification).Inc()
	p.Metrics.AnalysisDuration.Observe(duration.Seconds())

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(
			attribute.String("analysis.classification", classification),
			attribute.Int64("analysis.duration_ms", duration.Milliseconds()),
		)
	}
}

// RecordShortCircuit records an analysis rejected by the too-short check.
func (p *Provider) RecordShortCircuit() {
	p.Metrics.ShortCircuited.Inc()
}

// RecordRanking records one similarity ranking pass over the corpus.
func (p *Provider) RecordRanking(duration time.Duration) {
	p.Metrics.RankingDuration.Observe(duration.Seconds())
}

// RecordBatch records the size of a batch analysis request.
func (p *Provider) RecordBatch(size int) {
	p.Metrics.BatchSize.Observe(float64(size))
}

// RecordSearch records an advanced-search request and its outcome.
func (p *Provider) RecordSearch(err error) {
	p.Metrics.SearchRequests.Inc()
	if err != nil {
		p.Metrics.SearchFailures.Inc()
	}
}

// RecordExtractionFailure records a rejected file upload.
func (p *Provider) RecordExtractionFailure() {
	p.Metrics.ExtractionFailures.Inc()
}

// RecordHistoryWriteFailure records a failed history insert.
func (p *Provider) RecordHistoryWriteFailure() {
	p.Metrics.HistoryWriteFailures.Inc()
}

// StartSpan starts a tracing span for an operation.
func (p *Provider) StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return p.Tracer.Start(ctx, name)
}

// Package classifier implements the hybrid rule-based + corpus-similarity
// policy classifier. Ordered keyword rules fire first; label-weighted
// similarity voting over the reference corpus acts as fallback and
// confidence adjustment.
package classifier

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/niticheck/classifier/internal/domain"
	"github.com/niticheck/classifier/internal/logger"
	"github.com/niticheck/classifier/internal/telemetry"
)

// Classification thresholds and confidence constants.
const (
	minAnalyzableRunes = 10 // below this the text is rejected outright
	shortTextRunes     = 30 // below this the not-policy rule fires on length alone

	topSimilarCount     = 5 // examples retrieved from the ranker
	displaySimilarCount = 3 // examples surfaced in the result

	similarityNoiseFloor = 0.1 // per-example similarity below this is ignored
	votingMinSimilarity  = 0.5 // accumulated similarity needed for a dataset prediction
	agreementMin         = 1.0 // accumulated similarity needed to adjust confidence
	disagreementMin      = 1.5 // accumulated similarity needed to penalize disagreement

	confidenceFloor        = 25
	confidenceCeiling      = 95
	shortTextConfidence    = 95
	fallbackConfidence     = 45
	disagreementFloor      = 30
	agreementBonus         = 10
	disagreementPenalty    = 15
	reasoningConfidenceCap = 80 // reasoning is appended only below this
)

// Explanations returned to callers. Reasoning notes may be appended when
// confidence is low.
const (
	explanationTooShort = "Text too short to analyze meaningfully."
	explanationFake     = "This text contains multiple indicators commonly found in misinformation or fake policy documents, including urgency tactics and social sharing appeals."
	explanationNotPol   = "This appears to be general news, entertainment, sports, or other non-policy content rather than a government policy document."
	explanationRealHigh = "This document contains official government terminology and institutional references consistent with authentic policy documents."
	explanationRealLow  = "The document shows some characteristics of official policy but may be incomplete or informal."
	explanationFallback = "Unable to determine clear classification patterns. The text may be ambiguous or require manual verification."
)

// Ranker retrieves similar labeled examples and corpus statistics.
type Ranker interface {
	FindSimilar(text string, limit int) []domain.SimilarityResult
	Stats() domain.DatasetStats
}

// Config holds configuration for the policy classifier.
type Config struct {
	Version string

	// LatencyMin/LatencyMax inject an artificial processing delay to
	// emulate a remote analysis service. Zero max disables the delay.
	// The delay never affects the computed result.
	LatencyMin time.Duration
	LatencyMax time.Duration
}

// PolicyClassifier classifies raw text as real policy, fake policy, or
// unrelated content. Stateless apart from the read-only ranker; safe for
// concurrent use.
type PolicyClassifier struct {
	ranker     Ranker
	logger     logger.Logger
	telemetry  *telemetry.Provider
	version    string
	latencyMin time.Duration
	latencyMax time.Duration
}

// New creates a policy classifier. The telemetry provider may be nil.
func New(ranker Ranker, log logger.Logger, tp *telemetry.Provider, cfg Config) *PolicyClassifier {
	return &PolicyClassifier{
		ranker:     ranker,
		logger:     log,
		telemetry:  tp,
		version:    cfg.Version,
		latencyMin: cfg.LatencyMin,
		latencyMax: cfg.LatencyMax,
	}
}

// Analyze classifies a single text. It never fails: malformed, mixed-script,
// and empty inputs all produce a defined result.
func (p *PolicyClassifier) Analyze(ctx context.Context, text string) *domain.ClassificationResult {
	start := time.Now()

	p.simulateLatency(ctx)

	stats := p.ranker.Stats()
	trimmed := strings.TrimSpace(text)
	trimmedRunes := utf8.RuneCountInString(trimmed)

	if trimmedRunes < minAnalyzableRunes {
		if p.telemetry != nil {
			p.telemetry.RecordShortCircuit()
		}
		return p.finish(ctx, start, &domain.ClassificationResult{
			Classification:       domain.LabelNotPolicy,
			Confidence:           shortTextConfidence,
			Explanation:          explanationTooShort,
			SimilarExamples:      []domain.SimilarityResult{},
			DatasetStats:         stats,
			ClassificationMethod: domain.MethodShortCircuit,
		})
	}

	rankStart := time.Now()
	similar := p.ranker.FindSimilar(text, topSimilarCount)
	if p.telemetry != nil {
		p.telemetry.RecordRanking(time.Since(rankStart))
	}

	v := classify(text, trimmedRunes, similar)

	display := similar
	if len(display) > displaySimilarCount {
		display = display[:displaySimilarCount]
	}

	return p.finish(ctx, start, &domain.ClassificationResult{
		Classification:       v.label,
		Confidence:           v.confidence,
		Explanation:          v.explanation,
		Reasons:              v.reasons,
		SimilarExamples:      display,
		DatasetStats:         stats,
		ClassificationMethod: v.method,
	})
}

// finish stamps result metadata, records telemetry, and logs the outcome.
func (p *PolicyClassifier) finish(ctx context.Context, start time.Time, result *domain.ClassificationResult) *domain.ClassificationResult {
	result.ClassifierVersion = p.version
	result.ProcessingTimeMs = time.Since(start).Milliseconds()
	result.AnalyzedAt = time.Now()

	if p.telemetry != nil {
		p.telemetry.RecordAnalysis(ctx, string(result.Classification), time.Since(start))
	}

	p.logger.Info("analysis complete",
		logger.String("classification", string(result.Classification)),
		logger.Int("confidence", result.Confidence),
		logger.String("method", result.ClassificationMethod),
		logger.Int64("processing_time_ms", result.ProcessingTimeMs),
	)

	return result
}

// simulateLatency sleeps for a random duration in [LatencyMin, LatencyMax],
// honoring context cancellation. Disabled when LatencyMax is zero.
func (p *PolicyClassifier) simulateLatency(ctx context.Context) {
	if p.latencyMax <= 0 {
		return
	}
	delay := p.latencyMin
	if jitter := p.latencyMax - p.latencyMin; jitter > 0 {
		delay += time.Duration(rand.Int63n(int64(jitter)))
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// verdict is the internal outcome of the decision rules before result
// assembly.
type verdict struct {
	label       domain.Label
	confidence  int
	explanation string
	reasons     []domain.Reason
	method      string
}

// classify applies the ordered decision rules to the indicator counts and
// the similarity ranking. Pure function: no I/O, no shared state.
func classify(text string, trimmedRunes int, similar []domain.SimilarityResult) verdict {
	counts := countIndicators(text)
	vote := tallyVotes(similar)

	label, confidence, explanation, method, reasons := applyRules(counts, trimmedRunes, vote)

	// Dataset agreement adjustment, applied whichever rule fired.
	switch {
	case vote.prediction == label && vote.total > agreementMin:
		confidence = math.Min(confidenceCeiling, confidence+agreementBonus)
		reasons = append(reasons, domain.Reason{
			Code: domain.ReasonDatasetConfirms,
			Note: "Dataset confirms classification",
		})
	case vote.prediction != "" && vote.prediction != label && vote.total > disagreementMin:
		confidence = math.Max(disagreementFloor, confidence-disagreementPenalty)
		reasons = append(reasons, domain.Reason{
			Code: domain.ReasonDatasetDisagrees,
			Note: fmt.Sprintf("Dataset suggests %s instead", vote.prediction),
		})
	}

	// Render reasoning into the explanation only when confidence is low
	// enough that the caller benefits from seeing the internals.
	if len(reasons) > 0 && confidence < reasoningConfidenceCap {
		notes := make([]string, len(reasons))
		for i, r := range reasons {
			notes[i] = r.Note
		}
		explanation += fmt.Sprintf(" (Analysis: %s)", strings.Join(notes, ", "))
	}

	return verdict{
		label:       label,
		confidence:  int(math.Round(clamp(confidence, confidenceFloor, confidenceCeiling))),
		explanation: explanation,
		reasons:     reasons,
		method:      method,
	}
}

// applyRules evaluates the ordered decision rules; the first match wins.
func applyRules(counts indicatorCounts, trimmedRunes int, vote datasetVote) (
	label domain.Label, confidence float64, explanation, method string, reasons []domain.Reason,
) {
	method = domain.MethodRuleBased

	switch {
	case counts.fake >= 2:
		label = domain.LabelFake
		confidence = math.Min(confidenceCeiling, 70+float64(counts.fake)*8)
		explanation = explanationFake
		reasons = append(reasons, domain.Reason{
			Code: domain.ReasonFakeIndicators,
			Note: fmt.Sprintf("Found %d fake indicators", counts.fake),
		})

	case counts.notPolicy > 0 || trimmedRunes < shortTextRunes:
		label = domain.LabelNotPolicy
		confidence = 65 + float64(counts.notPolicy)*10
		if trimmedRunes < shortTextRunes {
			confidence += 20
		}
		confidence = math.Min(confidenceCeiling, confidence)
		explanation = explanationNotPol
		reasons = append(reasons, domain.Reason{
			Code: domain.ReasonNotPolicyIndicators,
			Note: fmt.Sprintf("Found %d non-policy indicators", counts.notPolicy),
		})

	case counts.real >= 3:
		label = domain.LabelReal
		confidence = math.Min(confidenceCeiling, 75+float64(counts.real)*5)
		explanation = explanationRealHigh
		reasons = append(reasons, domain.Reason{
			Code: domain.ReasonOfficialTerms,
			Note: fmt.Sprintf("Found %d official government terms", counts.real),
		})

	case counts.real >= 1:
		label = domain.LabelReal
		confidence = 55 + float64(counts.real)*10 // capped in the final clamp
		explanation = explanationRealLow
		reasons = append(reasons, domain.Reason{
			Code: domain.ReasonGovernmentTerms,
			Note: fmt.Sprintf("Found %d government-related terms", counts.real),
		})

	case vote.prediction != "" && vote.total > agreementMin:
		label = vote.prediction
		share := vote.totals[vote.prediction] / vote.total
		confidence = math.Round(45 + share*35)
		explanation = fmt.Sprintf(
			"Classification based on similarity to examples in our dataset. This text closely resembles %s from our training data.",
			describeLabel(vote.prediction))
		method = domain.MethodDatasetVoting
		reasons = append(reasons, domain.Reason{
			Code: domain.ReasonDatasetSimilarity,
			Note: fmt.Sprintf("Dataset similarity: %d%%", int(math.Round(share*100))),
		})

	default:
		label = domain.LabelNotPolicy
		confidence = fallbackConfidence
		explanation = explanationFallback
		method = domain.MethodInconclusive
		reasons = append(reasons, domain.Reason{
			Code: domain.ReasonInconclusive,
			Note: "Inconclusive pattern matching",
		})
	}

	return label, confidence, explanation, method, reasons
}

// datasetVote aggregates similarity mass per label from the ranking.
type datasetVote struct {
	totals     map[domain.Label]float64
	total      float64
	prediction domain.Label // "" when the vote is too weak
}

// tallyVotes accumulates similarity per label over examples above the noise
// floor and picks a prediction when the accumulated mass is meaningful.
// Ties resolve by traversal order real, fake, not-policy: a later label
// replaces an earlier one only with a strictly greater total.
func tallyVotes(similar []domain.SimilarityResult) datasetVote {
	vote := datasetVote{totals: make(map[domain.Label]float64)}

	for _, s := range similar {
		if s.Similarity > similarityNoiseFloor {
			vote.totals[s.Example.Label] += s.Similarity
			vote.total += s.Similarity
		}
	}

	if vote.total > votingMinSimilarity {
		best := math.Inf(-1)
		for _, l := range domain.Labels {
			if vote.totals[l] > best {
				best = vote.totals[l]
				vote.prediction = l
			}
		}
	}

	return vote
}

func describeLabel(l domain.Label) string {
	if l == domain.LabelNotPolicy {
		return "non-policy content"
	}
	return string(l) + " policy documents"
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

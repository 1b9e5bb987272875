package domain

import (
	"fmt"
	"time"
)

// Label is the classification assigned to a piece of text.
// The set is closed: switches over Label must handle all three values.
type Label string

const (
	LabelReal      Label = "real"
	LabelFake      Label = "fake"
	LabelNotPolicy Label = "not-policy"
)

// Labels lists all labels in canonical order. The order matters: it is the
// tie-break order for dataset voting (earlier label wins on equal totals).
var Labels = []Label{LabelReal, LabelFake, LabelNotPolicy}

// Valid reports whether l is one of the three known labels.
func (l Label) Valid() bool {
	switch l {
	case LabelReal, LabelFake, LabelNotPolicy:
		return true
	}
	return false
}

// ParseLabel converts a string to a Label, rejecting unknown values.
func ParseLabel(s string) (Label, error) {
	l := Label(s)
	if !l.Valid() {
		return "", fmt.Errorf("unknown label %q", s)
	}
	return l, nil
}

// ReasonCode identifies a single step of the classifier's reasoning.
// Reasons are accumulated in order and rendered to prose only at the
// response boundary, so tests can assert on codes instead of substrings.
type ReasonCode string

const (
	ReasonFakeIndicators      ReasonCode = "fake_indicators"
	ReasonNotPolicyIndicators ReasonCode = "not_policy_indicators"
	ReasonOfficialTerms       ReasonCode = "official_terms"
	ReasonGovernmentTerms     ReasonCode = "government_terms"
	ReasonDatasetSimilarity   ReasonCode = "dataset_similarity"
	ReasonInconclusive        ReasonCode = "inconclusive"
	ReasonDatasetConfirms     ReasonCode = "dataset_confirms"
	ReasonDatasetDisagrees    ReasonCode = "dataset_disagrees"
)

// Reason is one structured reasoning note.
type Reason struct {
	Code ReasonCode `json:"code"`
	Note string     `json:"note"`
}

// SimilarityResult pairs a corpus example with its computed similarity to
// some input text. Created fresh per request, never cached.
type SimilarityResult struct {
	Example    LabeledExample `json:"example"`
	Similarity float64        `json:"similarity"`
}

// DatasetStats holds per-label counts of the reference corpus.
// The corpus never changes at runtime, so these are constant.
type DatasetStats struct {
	Total     int `json:"total"`
	Real      int `json:"real"`
	Fake      int `json:"fake"`
	NotPolicy int `json:"notPolicy"`
}

// ClassificationResult is the outcome of analyzing one piece of text.
type ClassificationResult struct {
	Classification  Label              `json:"classification"`
	Confidence      int                `json:"confidence"` // always within [25, 95]
	Explanation     string             `json:"explanation"`
	Reasons         []Reason           `json:"reasons,omitempty"`
	SimilarExamples []SimilarityResult `json:"similarExamples"`
	DatasetStats    DatasetStats       `json:"datasetStats"`

	// Classification metadata
	ClassifierVersion    string    `json:"classifier_version"`
	ClassificationMethod string    `json:"classification_method"`
	ProcessingTimeMs     int64     `json:"processing_time_ms"`
	AnalyzedAt           time.Time `json:"analyzed_at"`
}

// ClassificationMethod constants
const (
	MethodRuleBased     = "rule_based"
	MethodDatasetVoting = "dataset_voting"
	MethodShortCircuit  = "short_circuit"
	MethodInconclusive  = "inconclusive"
)

// AnalysisRecord is one row of stored analysis history.
type AnalysisRecord struct {
	ID               int64     `db:"id"              json:"id"`
	TextExcerpt      string    `db:"text_excerpt"    json:"text_excerpt"`
	Classification   Label     `db:"classification"  json:"classification"`
	Confidence       int       `db:"confidence"      json:"confidence"`
	ProcessingTimeMs int64     `db:"processing_ms"   json:"processing_time_ms"`
	CreatedAt        time.Time `db:"created_at"      json:"created_at"`
}

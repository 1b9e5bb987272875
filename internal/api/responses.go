package api

import (
	"time"

	"github.com/niticheck/classifier/internal/domain"
)

// AnalyzeRequest carries one text to classify.
type AnalyzeRequest struct {
	Text string `json:"text" binding:"required"`
}

// AnalyzeBatchRequest carries multiple texts to classify.
type AnalyzeBatchRequest struct {
	Texts []string `json:"texts" binding:"required,min=1,max=100"`
}

// AnalyzeBatchResponse wraps batch results with summary counts.
type AnalyzeBatchResponse struct {
	Results []*domain.ClassificationResult `json:"results"`
	Total   int                            `json:"total"`
}

// DatasetStatsResponse describes the reference corpus.
type DatasetStatsResponse struct {
	domain.DatasetStats
	Languages  []string `json:"languages"`
	Categories []string `json:"categories"`
}

// SimilarResponse wraps a similarity query result.
type SimilarResponse struct {
	Results []domain.SimilarityResult `json:"results"`
	Total   int                       `json:"total"`
}

// HistoryListResponse wraps stored analysis records.
type HistoryListResponse struct {
	Records []domain.AnalysisRecord `json:"records"`
	Total   int64                   `json:"total"`
}

// SearchRequest asks for verification guidance on an analyzed text.
type SearchRequest struct {
	Text           string `json:"text" binding:"required"`
	Classification string `json:"classification"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status  string    `json:"status"`
	Service string    `json:"service"`
	Version string    `json:"version"`
	Time    time.Time `json:"time"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

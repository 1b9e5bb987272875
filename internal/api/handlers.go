// Package api exposes the policy classifier over HTTP.
package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/niticheck/classifier/internal/classifier"
	"github.com/niticheck/classifier/internal/corpus"
	"github.com/niticheck/classifier/internal/database"
	"github.com/niticheck/classifier/internal/domain"
	"github.com/niticheck/classifier/internal/extract"
	"github.com/niticheck/classifier/internal/logger"
	"github.com/niticheck/classifier/internal/processor"
	"github.com/niticheck/classifier/internal/searchclient"
	"github.com/niticheck/classifier/internal/telemetry"
)

const (
	defaultSimilarLimit = 5
	maxSimilarLimit     = 50
	maxHistoryLimit     = 200
)

// Handler handles HTTP requests for the classifier API.
type Handler struct {
	classifier  *classifier.PolicyClassifier
	batch       *processor.BatchAnalyzer
	corpus      *corpus.Corpus
	historyRepo *database.AnalysisHistoryRepository
	extractor   *extract.Extractor
	search      *searchclient.Client // nil when disabled
	telemetry   *telemetry.Provider
	logger      logger.Logger

	serviceName    string
	serviceVersion string
}

// HandlerConfig wires the handler dependencies.
type HandlerConfig struct {
	Classifier     *classifier.PolicyClassifier
	Batch          *processor.BatchAnalyzer
	Corpus         *corpus.Corpus
	HistoryRepo    *database.AnalysisHistoryRepository
	Extractor      *extract.Extractor
	Search         *searchclient.Client
	Telemetry      *telemetry.Provider
	Logger         logger.Logger
	ServiceName    string
	ServiceVersion string
}

// NewHandler creates a new API handler.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		classifier:     cfg.Classifier,
		batch:          cfg.Batch,
		corpus:         cfg.Corpus,
		historyRepo:    cfg.HistoryRepo,
		extractor:      cfg.Extractor,
		search:         cfg.Search,
		telemetry:      cfg.Telemetry,
		logger:         cfg.Logger,
		serviceName:    cfg.ServiceName,
		serviceVersion: cfg.ServiceVersion,
	}
}

// Analyze handles POST /api/v1/analyze.
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result := h.classifier.Analyze(c.Request.Context(), req.Text)
	h.recordHistory(c, req.Text, result)

	c.JSON(http.StatusOK, result)
}

// AnalyzeBatch handles POST /api/v1/analyze/batch.
func (h *Handler) AnalyzeBatch(c *gin.Context) {
	var req AnalyzeBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	results := h.batch.Analyze(c.Request.Context(), req.Texts)
	for i, result := range results {
		h.recordHistory(c, req.Texts[i], result)
	}

	c.JSON(http.StatusOK, AnalyzeBatchResponse{
		Results: results,
		Total:   len(results),
	})
}

// AnalyzeFile handles POST /api/v1/analyze/file. The upload arrives as
// multipart form field "file".
func (h *Handler) AnalyzeFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file field is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot read upload"})
		return
	}
	defer file.Close()

	text, err := h.extractor.Extract(fileHeader.Filename, file)
	if err != nil {
		if h.telemetry != nil {
			h.telemetry.RecordExtractionFailure()
		}
		status := http.StatusUnprocessableEntity
		if errors.Is(err, extract.ErrTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	result := h.classifier.Analyze(c.Request.Context(), text)
	h.recordHistory(c, text, result)

	c.JSON(http.StatusOK, result)
}

// GetDatasetStats handles GET /api/v1/dataset/stats.
func (h *Handler) GetDatasetStats(c *gin.Context) {
	c.JSON(http.StatusOK, DatasetStatsResponse{
		DatasetStats: h.corpus.Stats(),
		Languages:    h.corpus.Languages(),
		Categories:   h.corpus.Categories(),
	})
}

// GetSimilar handles GET /api/v1/dataset/similar.
func (h *Handler) GetSimilar(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "text query parameter is required"})
		return
	}

	limit := defaultSimilarLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = parsed
	}
	if limit > maxSimilarLimit {
		limit = maxSimilarLimit
	}

	results := h.corpus.FindSimilar(text, limit)
	c.JSON(http.StatusOK, SimilarResponse{
		Results: results,
		Total:   len(results),
	})
}

// ListHistory handles GET /api/v1/history.
func (h *Handler) ListHistory(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = parsed
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	records, err := h.historyRepo.List(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to list history", logger.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load history"})
		return
	}

	total, err := h.historyRepo.Count(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to count history", logger.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load history"})
		return
	}

	c.JSON(http.StatusOK, HistoryListResponse{
		Records: records,
		Total:   total,
	})
}

// GetHistoryRecord handles GET /api/v1/history/:id.
func (h *Handler) GetHistoryRecord(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id must be an integer"})
		return
	}

	record, err := h.historyRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "record not found"})
			return
		}
		h.logger.Error("Failed to get history record", logger.Int64("id", id), logger.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load record"})
		return
	}

	c.JSON(http.StatusOK, record)
}

// Search handles POST /api/v1/search.
func (h *Handler) Search(c *gin.Context) {
	if h.search == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: searchclient.ErrDisabled.Error()})
		return
	}

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	guidance, err := h.search.Search(c.Request.Context(), req.Text, req.Classification)
	if err != nil {
		h.logger.Error("Advanced search failed", logger.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "advanced search failed"})
		return
	}

	c.JSON(http.StatusOK, guidance)
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: h.serviceName,
		Version: h.serviceVersion,
		Time:    time.Now().UTC(),
	})
}

// ReadyCheck handles GET /ready. The service is ready when the history
// database answers.
func (h *Handler) ReadyCheck(c *gin.Context) {
	if h.historyRepo != nil {
		if _, err := h.historyRepo.Count(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"error":  "history database unavailable",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// recordHistory persists an analysis outcome. Failures are logged and
// counted but never fail the request.
func (h *Handler) recordHistory(c *gin.Context, text string, result *domain.ClassificationResult) {
	if h.historyRepo == nil {
		return
	}
	if _, err := h.historyRepo.Create(c.Request.Context(), text, result); err != nil {
		if h.telemetry != nil {
			h.telemetry.RecordHistoryWriteFailure()
		}
		h.logger.Warn("Failed to record analysis history", logger.Error(err))
	}
}

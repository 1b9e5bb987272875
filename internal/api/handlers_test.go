//nolint:testpackage // wires handlers with real internal components
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/niticheck/classifier/internal/classifier"
	"github.com/niticheck/classifier/internal/corpus"
	"github.com/niticheck/classifier/internal/database"
	"github.com/niticheck/classifier/internal/domain"
	"github.com/niticheck/classifier/internal/extract"
	"github.com/niticheck/classifier/internal/logger"
	"github.com/niticheck/classifier/internal/processor"
)

func newTestRouter(t *testing.T, maxUploadBytes int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewSQLiteConnection(database.Config{Path: ":memory:", MaxConnections: 1})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	ranker := corpus.New()
	engine := classifier.New(ranker, logger.NewNop(), nil, classifier.Config{Version: "test"})
	handler := NewHandler(HandlerConfig{
		Classifier:     engine,
		Batch:          processor.New(engine, 2, logger.NewNop(), nil),
		Corpus:         ranker,
		HistoryRepo:    database.NewAnalysisHistoryRepository(db),
		Extractor:      extract.New(maxUploadBytes),
		Logger:         logger.NewNop(),
		ServiceName:    "policy-classifier",
		ServiceVersion: "test",
	})

	router := gin.New()
	SetupRoutes(router, handler, nil)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAnalyzeEndpoint(t *testing.T) {
	router := newTestRouter(t, 0)

	w := doJSON(t, router, http.MethodPost, "/api/v1/analyze", AnalyzeRequest{
		Text: "The Government of Nepal Ministry of Finance announced the annual budget with cabinet approval for the fiscal year.",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var result domain.ClassificationResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if result.Classification != domain.LabelReal {
		t.Errorf("classification = %q, want %q", result.Classification, domain.LabelReal)
	}
	if result.Confidence < 25 || result.Confidence > 95 {
		t.Errorf("confidence = %d out of range", result.Confidence)
	}
	if result.ClassifierVersion != "test" {
		t.Errorf("classifier version = %q", result.ClassifierVersion)
	}
}

func TestAnalyzeEndpointBadRequest(t *testing.T) {
	router := newTestRouter(t, 0)

	for _, body := range []string{`{}`, `{"text": ""}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, w.Code)
		}
	}
}

func TestAnalyzeBatchEndpoint(t *testing.T) {
	router := newTestRouter(t, 0)

	w := doJSON(t, router, http.MethodPost, "/api/v1/analyze/batch", AnalyzeBatchRequest{
		Texts: []string{
			"URGENT! Share this message immediately! Forward this to everyone before it gets deleted!",
			"Hello",
		},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp AnalyzeBatchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Total != 2 || len(resp.Results) != 2 {
		t.Fatalf("total = %d, results = %d, want 2", resp.Total, len(resp.Results))
	}
	if resp.Results[0].Classification != domain.LabelFake {
		t.Errorf("results[0] = %q, want %q", resp.Results[0].Classification, domain.LabelFake)
	}
	if resp.Results[1].Classification != domain.LabelNotPolicy {
		t.Errorf("results[1] = %q, want %q", resp.Results[1].Classification, domain.LabelNotPolicy)
	}
}

func TestAnalyzeBatchTooLarge(t *testing.T) {
	router := newTestRouter(t, 0)

	texts := make([]string, 101)
	for i := range texts {
		texts[i] = fmt.Sprintf("text number %d", i)
	}
	w := doJSON(t, router, http.MethodPost, "/api/v1/analyze/batch", AnalyzeBatchRequest{Texts: texts})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for oversized batch", w.Code)
	}
}

func TestAnalyzeFileEndpoint(t *testing.T) {
	router := newTestRouter(t, 0)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "notice.txt")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	fmt.Fprint(fw, "The Government of Nepal Ministry of Finance announced the annual budget with cabinet approval.")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var result domain.ClassificationResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if result.Classification != domain.LabelReal {
		t.Errorf("classification = %q, want %q", result.Classification, domain.LabelReal)
	}
}

func TestAnalyzeFileUnsupportedType(t *testing.T) {
	router := newTestRouter(t, 0)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("file", "report.pdf")
	fmt.Fprint(fw, "%PDF-1.4 fake")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}
}

func TestAnalyzeFileTooLarge(t *testing.T) {
	router := newTestRouter(t, 20)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("file", "big.txt")
	fmt.Fprint(fw, strings.Repeat("a", 100))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", w.Code)
	}
}

func TestDatasetStatsEndpoint(t *testing.T) {
	router := newTestRouter(t, 0)

	w := doJSON(t, router, http.MethodGet, "/api/v1/dataset/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp DatasetStatsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Total != resp.Real+resp.Fake+resp.NotPolicy {
		t.Errorf("label counts %d+%d+%d do not sum to total %d", resp.Real, resp.Fake, resp.NotPolicy, resp.Total)
	}
	if resp.Total == 0 {
		t.Error("total = 0, want populated corpus")
	}
	if len(resp.Languages) == 0 {
		t.Error("languages empty")
	}
}

func TestSimilarEndpoint(t *testing.T) {
	router := newTestRouter(t, 0)

	w := doJSON(t, router, http.MethodGet, "/api/v1/dataset/similar?text=budget+announcement&limit=3", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp SimilarResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Results) != 3 {
		t.Errorf("results = %d, want 3", len(resp.Results))
	}
	for i := 1; i < len(resp.Results); i++ {
		if resp.Results[i].Similarity > resp.Results[i-1].Similarity {
			t.Errorf("results not sorted at index %d", i)
		}
	}
}

func TestSimilarEndpointValidation(t *testing.T) {
	router := newTestRouter(t, 0)

	if w := doJSON(t, router, http.MethodGet, "/api/v1/dataset/similar", nil); w.Code != http.StatusBadRequest {
		t.Errorf("missing text: status = %d, want 400", w.Code)
	}
	if w := doJSON(t, router, http.MethodGet, "/api/v1/dataset/similar?text=x&limit=abc", nil); w.Code != http.StatusBadRequest {
		t.Errorf("bad limit: status = %d, want 400", w.Code)
	}
}

func TestHistoryEndpoints(t *testing.T) {
	router := newTestRouter(t, 0)

	// Seed one record through the analyze endpoint.
	w := doJSON(t, router, http.MethodPost, "/api/v1/analyze", AnalyzeRequest{
		Text: "Nepal cricket team won the final match yesterday in Kirtipur against UAE.",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("analyze status = %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/history", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("history status = %d", w.Code)
	}

	var list HistoryListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if list.Total != 1 || len(list.Records) != 1 {
		t.Fatalf("total = %d, records = %d, want 1", list.Total, len(list.Records))
	}

	record := list.Records[0]
	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/history/%d", record.ID), nil)
	if w.Code != http.StatusOK {
		t.Errorf("get record status = %d", w.Code)
	}

	if w := doJSON(t, router, http.MethodGet, "/api/v1/history/99999", nil); w.Code != http.StatusNotFound {
		t.Errorf("unknown record status = %d, want 404", w.Code)
	}
	if w := doJSON(t, router, http.MethodGet, "/api/v1/history/abc", nil); w.Code != http.StatusBadRequest {
		t.Errorf("bad id status = %d, want 400", w.Code)
	}
}

func TestSearchEndpointDisabled(t *testing.T) {
	router := newTestRouter(t, 0)

	w := doJSON(t, router, http.MethodPost, "/api/v1/search", SearchRequest{Text: "some policy text"})
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 when search is not configured", w.Code)
	}
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t, 0)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Errorf("health status = %d", w.Code)
	}
	var health HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &health); err != nil {
		t.Fatalf("unmarshal health: %v", err)
	}
	if health.Status != "healthy" || health.Service != "policy-classifier" {
		t.Errorf("health = %+v", health)
	}

	if w := doJSON(t, router, http.MethodGet, "/ready", nil); w.Code != http.StatusOK {
		t.Errorf("ready status = %d", w.Code)
	}
}

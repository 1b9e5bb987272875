package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/jmoiron/sqlx"

	"github.com/niticheck/classifier/internal/domain"
)

// ErrNotFound is returned when a requested history record does not exist.
var ErrNotFound = errors.New("analysis record not found")

// excerptRunes bounds how much of the analyzed text is stored. Full texts
// may carry personal data and are not needed for history browsing.
const excerptRunes = 200

const defaultListLimit = 50

// AnalysisHistoryRepository handles database operations for analysis history.
type AnalysisHistoryRepository struct {
	db *sqlx.DB
}

// NewAnalysisHistoryRepository creates a new analysis history repository.
func NewAnalysisHistoryRepository(db *sqlx.DB) *AnalysisHistoryRepository {
	return &AnalysisHistoryRepository{db: db}
}

// Create stores one analysis outcome and fills in the record ID.
func (r *AnalysisHistoryRepository) Create(ctx context.Context, text string, result *domain.ClassificationResult) (*domain.AnalysisRecord, error) {
	record := &domain.AnalysisRecord{
		TextExcerpt:      excerpt(text),
		Classification:   result.Classification,
		Confidence:       result.Confidence,
		ProcessingTimeMs: result.ProcessingTimeMs,
		CreatedAt:        result.AnalyzedAt,
	}

	query := `
		INSERT INTO analysis_history (text_excerpt, classification, confidence, processing_ms, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query,
		record.TextExcerpt,
		record.Classification,
		record.Confidence,
		record.ProcessingTimeMs,
		record.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis record: %w", err)
	}

	record.ID, err = res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted id: %w", err)
	}

	return record, nil
}

// GetByID retrieves a single analysis record.
func (r *AnalysisHistoryRepository) GetByID(ctx context.Context, id int64) (*domain.AnalysisRecord, error) {
	var record domain.AnalysisRecord
	query := `
		SELECT id, text_excerpt, classification, confidence, processing_ms, created_at
		FROM analysis_history
		WHERE id = ?
	`

	if err := r.db.GetContext(ctx, &record, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get analysis record: %w", err)
	}

	return &record, nil
}

// List retrieves the most recent analysis records, newest first.
func (r *AnalysisHistoryRepository) List(ctx context.Context, limit int) ([]domain.AnalysisRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	records := []domain.AnalysisRecord{}
	query := `
		SELECT id, text_excerpt, classification, confidence, processing_ms, created_at
		FROM analysis_history
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	if err := r.db.SelectContext(ctx, &records, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list analysis records: %w", err)
	}

	return records, nil
}

// Count returns the total number of stored records.
func (r *AnalysisHistoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM analysis_history`); err != nil {
		return 0, fmt.Errorf("failed to count analysis records: %w", err)
	}
	return count, nil
}

// excerpt truncates text to excerptRunes runes.
func excerpt(text string) string {
	if utf8.RuneCountInString(text) <= excerptRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:excerptRunes])
}

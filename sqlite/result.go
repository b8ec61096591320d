package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/hqanh/vanban"
)

// Compile-time interface verification.
var _ vanban.ResultService = (*ResultService)(nil)

// ResultService implements vanban.ResultService using SQLite.
// Segmented articles and diff changes are stored as JSON columns; the
// diff totals are kept in dedicated columns so Stats can aggregate them
// without decoding every row.
type ResultService struct {
	db *DB
}

// NewResultService creates a new ResultService.
func NewResultService(db *DB) *ResultService {
	return &ResultService{db: db}
}

// SaveResult stores the results for one document, replacing any previous
// results for the same document.
func (s *ResultService) SaveResult(ctx context.Context, seg *vanban.SegmentationResult, diff *vanban.DiffReport) error {
	if seg == nil || seg.DocID == "" {
		return vanban.Errorf(vanban.EINVALID, "segmentation result with document ID required")
	}

	articles, err := json.Marshal(seg.Articles)
	if err != nil {
		return vanban.Errorf(vanban.EINTERNAL, "failed to encode articles: %v", err)
	}

	changes := []byte("[]")
	var added, deleted int
	if diff != nil {
		if changes, err = json.Marshal(diff.Changes); err != nil {
			return vanban.Errorf(vanban.EINTERNAL, "failed to encode changes: %v", err)
		}
		added = diff.Totals.Added
		deleted = diff.Totals.Deleted
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO results (doc_id, strategy, found, articles, changes, added, deleted, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, seg.DocID, string(seg.Strategy), seg.Found, string(articles), string(changes),
		added, deleted, time.Now().UTC().Format(time.RFC3339))

	return err
}

// FindResultByDocID retrieves stored results for a document.
func (s *ResultService) FindResultByDocID(ctx context.Context, docID string) (*vanban.SegmentationResult, *vanban.DiffReport, error) {
	var strategy, articles, changes string
	var found bool
	var added, deleted int

	err := s.db.QueryRowContext(ctx, `
		SELECT strategy, found, articles, changes, added, deleted
		FROM results
		WHERE doc_id = ?
	`, docID).Scan(&strategy, &found, &articles, &changes, &added, &deleted)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, vanban.Errorf(vanban.ENOTFOUND, "no results for document %s", docID)
	}
	if err != nil {
		return nil, nil, err
	}

	seg := &vanban.SegmentationResult{
		DocID:    docID,
		Strategy: vanban.Strategy(strategy),
		Found:    found,
	}
	if err := json.Unmarshal([]byte(articles), &seg.Articles); err != nil {
		return nil, nil, vanban.Errorf(vanban.EINTERNAL, "failed to decode articles: %v", err)
	}

	diff := &vanban.DiffReport{
		DocID:  docID,
		Totals: vanban.DiffTotals{Added: added, Deleted: deleted},
	}
	if err := json.Unmarshal([]byte(changes), &diff.Changes); err != nil {
		return nil, nil, vanban.Errorf(vanban.EINTERNAL, "failed to decode changes: %v", err)
	}

	return seg, diff, nil
}

// DeleteResult removes stored results for a document.
func (s *ResultService) DeleteResult(ctx context.Context, docID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM results WHERE doc_id = ?", docID)
	return err
}

// Stats folds over all stored results.
func (s *ResultService) Stats(ctx context.Context) (*vanban.CorpusStats, error) {
	stats := &vanban.CorpusStats{ByStrategy: make(map[vanban.Strategy]int)}

	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
			COALESCE(SUM(found), 0),
			COALESCE(SUM(added), 0),
			COALESCE(SUM(deleted), 0)
		FROM results
	`).Scan(&stats.Documents, &stats.WithArticles, &stats.TotalAdded, &stats.TotalDeleted)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, "SELECT strategy, COUNT(*) FROM results GROUP BY strategy")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var strategy string
		var count int
		if err := rows.Scan(&strategy, &count); err != nil {
			return nil, err
		}
		stats.ByStrategy[vanban.Strategy(strategy)] = count
	}

	return stats, rows.Err()
}

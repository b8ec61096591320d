package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hqanh/vanban"
)

// Compile-time interface verification.
var _ vanban.DocumentService = (*DocumentService)(nil)

// DocumentService implements vanban.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// CreateDocument creates a new document. An ID is assigned when the
// document does not carry one. The content hash is always recomputed.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *vanban.Document) error {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	if doc.CrawledAt.IsZero() {
		doc.CrawledAt = time.Now().UTC()
	}
	doc.ContentHash = hashContent(doc.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, number, title, agency, issue_date, source_url, content, content_hash, crawled_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.Number, doc.Title, doc.Agency, doc.IssueDate, doc.SourceURL,
		doc.Content, doc.ContentHash, doc.CrawledAt.Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*vanban.Document, error) {
	var doc vanban.Document
	var crawledAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, number, title, agency, issue_date, source_url, content, content_hash, crawled_at
		FROM documents
		WHERE id = ?
	`, id).Scan(&doc.ID, &doc.Number, &doc.Title, &doc.Agency, &doc.IssueDate,
		&doc.SourceURL, &doc.Content, &doc.ContentHash, &crawledAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, vanban.Errorf(vanban.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	doc.CrawledAt, err = parseRFC3339(crawledAt, "crawled_at")
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// FindDocuments retrieves documents matching the filter.
func (s *DocumentService) FindDocuments(ctx context.Context, filter vanban.DocumentFilter) ([]*vanban.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, number, title, agency, issue_date, source_url, content, content_hash, crawled_at FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Number != nil {
		query.WriteString(" AND number = ?")
		args = append(args, *filter.Number)
	}

	query.WriteString(" ORDER BY crawled_at DESC, id ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*vanban.Document
	for rows.Next() {
		var doc vanban.Document
		var crawledAt string

		if err := rows.Scan(&doc.ID, &doc.Number, &doc.Title, &doc.Agency, &doc.IssueDate,
			&doc.SourceURL, &doc.Content, &doc.ContentHash, &crawledAt); err != nil {
			return nil, err
		}

		doc.CrawledAt, err = parseRFC3339(crawledAt, "crawled_at")
		if err != nil {
			return nil, err
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// DeleteDocument permanently removes a document and its results.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return vanban.Errorf(vanban.ENOTFOUND, "document not found")
	}

	_, err = s.db.ExecContext(ctx, "DELETE FROM results WHERE doc_id = ?", id)
	return err
}

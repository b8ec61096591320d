package vanban

import (
	"context"
	"time"
)

// Document represents a crawled legal document. It is owned by the ingestion
// collaborator; the pipeline only reads it and never mutates it. Metadata
// fields beyond ID and Content are opaque pass-through.
type Document struct {
	ID          string    `json:"id"`
	Number      string    `json:"number"` // issuing number, e.g. "36/2024/QH15"
	Title       string    `json:"title"`
	Agency      string    `json:"agency"`
	IssueDate   string    `json:"issueDate"`
	SourceURL   string    `json:"sourceUrl"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	CrawledAt   time.Time `json:"crawledAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.ID == "" {
		return Errorf(EINVALID, "document ID required")
	}
	if d.Number == "" && d.SourceURL == "" {
		return Errorf(EINVALID, "document number or source URL required")
	}
	return nil
}

// DocumentService represents a service for managing documents.
type DocumentService interface {
	// CreateDocument creates a new document.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if the document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocument permanently removes a document and its results.
	// Returns ENOTFOUND if the document does not exist.
	DeleteDocument(ctx context.Context, id string) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID     *string `json:"id"`
	Number *string `json:"number"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

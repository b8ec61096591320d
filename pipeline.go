package vanban

import "context"

// TextExtractor strips residual markup from crawled document content,
// returning plain text. Plain-text input passes through unchanged.
type TextExtractor interface {
	ExtractText(content string) (string, error)
}

// ResultWriter writes per-document pipeline outputs to storage.
type ResultWriter interface {
	WriteResult(ctx context.Context, seg *SegmentationResult, diff *DiffReport) error
}

// CorpusStats aggregates pipeline outcomes across all stored documents.
// The fraction resolved by the primary strategy is the headline
// segmentation-accuracy metric.
type CorpusStats struct {
	Documents    int              `json:"documents"`
	ByStrategy   map[Strategy]int `json:"byStrategy"`
	WithArticles int              `json:"withArticles"`
	TotalAdded   int              `json:"totalAdded"`
	TotalDeleted int              `json:"totalDeleted"`
}

// ResultService persists segmentation and diff results.
type ResultService interface {
	// SaveResult stores the results for one document, replacing any
	// previous results for the same document.
	SaveResult(ctx context.Context, seg *SegmentationResult, diff *DiffReport) error

	// FindResultByDocID retrieves stored results for a document.
	// Returns ENOTFOUND if no results exist.
	FindResultByDocID(ctx context.Context, docID string) (*SegmentationResult, *DiffReport, error)

	// DeleteResult removes stored results for a document.
	DeleteResult(ctx context.Context, docID string) error

	// Stats folds over all stored results.
	Stats(ctx context.Context) (*CorpusStats, error)
}

// DocumentResult pairs the two pipeline outputs for one document.
type DocumentResult struct {
	Segmentation *SegmentationResult `json:"segmentation"`
	Diff         *DiffReport         `json:"diff"`
}

// SkippedDocument records a document the batch could not process. Skips are
// per-document and never abort the batch.
type SkippedDocument struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// BatchResult maps document ids to their results. A batch run always returns
// an entry for every input document, either here or in Skipped.
type BatchResult struct {
	Results map[string]*DocumentResult `json:"results"`
	Skipped []SkippedDocument          `json:"skipped"`
}

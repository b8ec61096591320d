package mock

import (
	"context"

	"github.com/hqanh/vanban"
)

var _ vanban.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of vanban.Normalizer.
type Normalizer struct {
	NormalizeFn func(text string) string
}

func (n *Normalizer) Normalize(text string) string {
	return n.NormalizeFn(text)
}

var _ vanban.Segmenter = (*Segmenter)(nil)

// Segmenter is a mock implementation of vanban.Segmenter.
type Segmenter struct {
	SegmentFn func(docID, text string) *vanban.SegmentationResult
}

func (s *Segmenter) Segment(docID, text string) *vanban.SegmentationResult {
	return s.SegmentFn(docID, text)
}

var _ vanban.Differ = (*Differ)(nil)

// Differ is a mock implementation of vanban.Differ.
type Differ struct {
	DiffFn func(docID, originalText string, doc *vanban.StructuredDocument) *vanban.DiffReport
}

func (d *Differ) Diff(docID, originalText string, doc *vanban.StructuredDocument) *vanban.DiffReport {
	return d.DiffFn(docID, originalText, doc)
}

var _ vanban.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of vanban.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(content string) (string, error)
}

func (e *TextExtractor) ExtractText(content string) (string, error) {
	return e.ExtractTextFn(content)
}

var _ vanban.ResultWriter = (*ResultWriter)(nil)

// ResultWriter is a mock implementation of vanban.ResultWriter.
type ResultWriter struct {
	WriteResultFn func(ctx context.Context, seg *vanban.SegmentationResult, diff *vanban.DiffReport) error
}

func (w *ResultWriter) WriteResult(ctx context.Context, seg *vanban.SegmentationResult, diff *vanban.DiffReport) error {
	return w.WriteResultFn(ctx, seg, diff)
}

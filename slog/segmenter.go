// Package slog provides logging decorators for vanban services.
package slog

import (
	"log/slog"
	"time"

	"github.com/hqanh/vanban"
)

// Ensure LoggingSegmenter implements vanban.Segmenter.
var _ vanban.Segmenter = (*LoggingSegmenter)(nil)

// LoggingSegmenter wraps a Segmenter with debug logging of the strategy
// outcome for each document.
type LoggingSegmenter struct {
	next   vanban.Segmenter
	logger *slog.Logger
}

// NewLoggingSegmenter creates a new LoggingSegmenter.
func NewLoggingSegmenter(next vanban.Segmenter, logger *slog.Logger) *LoggingSegmenter {
	return &LoggingSegmenter{next: next, logger: logger}
}

// Segment delegates to the wrapped segmenter and logs the outcome.
func (s *LoggingSegmenter) Segment(docID, text string) *vanban.SegmentationResult {
	begin := time.Now()
	result := s.next.Segment(docID, text)
	s.logger.Debug("segmentation",
		"doc_id", docID,
		"strategy", string(result.Strategy),
		"found", result.Found,
		"articles", len(result.Articles),
		"clauses", result.ClauseCount(),
		"duration", time.Since(begin),
	)
	return result
}

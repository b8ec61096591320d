package slog

import (
	"log/slog"
	"time"

	"github.com/hqanh/vanban"
)

// Ensure LoggingDiffer implements vanban.Differ.
var _ vanban.Differ = (*LoggingDiffer)(nil)

// LoggingDiffer wraps a Differ with debug logging of change totals.
type LoggingDiffer struct {
	next   vanban.Differ
	logger *slog.Logger
}

// NewLoggingDiffer creates a new LoggingDiffer.
func NewLoggingDiffer(next vanban.Differ, logger *slog.Logger) *LoggingDiffer {
	return &LoggingDiffer{next: next, logger: logger}
}

// Diff delegates to the wrapped differ and logs the report totals.
func (d *LoggingDiffer) Diff(docID, originalText string, doc *vanban.StructuredDocument) *vanban.DiffReport {
	begin := time.Now()
	report := d.next.Diff(docID, originalText, doc)
	d.logger.Debug("diff",
		"doc_id", docID,
		"added", report.Totals.Added,
		"deleted", report.Totals.Deleted,
		"duration", time.Since(begin),
	)
	return report
}

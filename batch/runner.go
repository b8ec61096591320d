// Package batch runs the document processing pipeline over a corpus
// with bounded concurrency. Each document flows through normalization,
// segmentation, and diffing independently; one bad document never
// aborts the run.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/hqanh/vanban"
	"github.com/hqanh/vanban/bloom"
	"golang.org/x/sync/errgroup"
)

const defaultMaxBytes = 10 << 20

// Runner orchestrates batch processing of documents.
type Runner struct {
	Normalizer vanban.Normalizer
	Segmenter  vanban.Segmenter
	Differ     vanban.Differ
	Writer     vanban.ResultWriter
	Results    vanban.ResultService
	Dedup      *bloom.Filter
	Logger     *slog.Logger

	Concurrency int
	MaxBytes    int
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	DocID     string
	Reason    string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// docResult holds the outcome of processing a single document.
type docResult struct {
	id   string
	seg  *vanban.SegmentationResult
	diff *vanban.DiffReport
}

// Run processes all documents and returns per-document results keyed by
// document ID. Documents that cannot be processed are reported in
// Skipped rather than failing the batch. If the context is cancelled,
// results completed so far are returned together with the context error.
func (r *Runner) Run(ctx context.Context, docs []*vanban.Document, progress ProgressFunc) (*vanban.BatchResult, error) {
	if r.Segmenter == nil {
		return nil, vanban.Errorf(vanban.EINVALID, "segmenter required")
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 8
	}
	maxBytes := r.MaxBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}

	out := &vanban.BatchResult{Results: make(map[string]*vanban.DocumentResult, len(docs))}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(docs)})
	}

	// Admission checks run sequentially so the dedup filter sees
	// documents in input order.
	var work []*vanban.Document
	for _, doc := range docs {
		if reason := r.skipReason(doc, maxBytes); reason != "" {
			out.Skipped = append(out.Skipped, vanban.SkippedDocument{ID: doc.ID, Reason: reason})
			if progress != nil {
				progress(ProgressEvent{
					Type:   ProgressSkipped,
					Total:  len(docs),
					DocID:  doc.ID,
					Reason: reason,
				})
			}
			continue
		}
		work = append(work, doc)
	}

	resultCh := make(chan docResult, len(work))

	var completed atomic.Int64
	total := len(docs)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, doc := range work {
			doc := doc
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				resultCh <- r.process(doc)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Persist sequentially as results arrive. SQLite allows only one
	// writer, so funneling writes through the collector avoids lock
	// contention in the workers.
	for res := range resultCh {
		completed.Add(1)

		if reason := r.persist(ctx, res); reason != "" {
			out.Skipped = append(out.Skipped, vanban.SkippedDocument{ID: res.id, Reason: reason})
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressSkipped,
					Completed: int(completed.Load()),
					Total:     total,
					DocID:     res.id,
					Reason:    reason,
				})
			}
			continue
		}

		out.Results[res.id] = &vanban.DocumentResult{Segmentation: res.seg, Diff: res.diff}
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				DocID:     res.id,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: int(completed.Load()),
			Total:     total,
		})
	}

	if err := ctx.Err(); err != nil {
		return out, err
	}
	return out, nil
}

// skipReason returns a non-empty reason if the document cannot be processed.
func (r *Runner) skipReason(doc *vanban.Document, maxBytes int) string {
	if doc.ID == "" {
		return "missing document ID"
	}
	if strings.ContainsRune(doc.Content, '\x00') {
		return "content contains NUL bytes"
	}
	if len(doc.Content) > maxBytes {
		return fmt.Sprintf("content exceeds %d bytes", maxBytes)
	}
	if r.Dedup != nil {
		hash := fmt.Sprintf("%016x", xxhash.Sum64String(doc.Content))
		if r.Dedup.Seen(hash) {
			return "duplicate content"
		}
	}
	return ""
}

// process runs the pipeline stages for a single document.
func (r *Runner) process(doc *vanban.Document) docResult {
	start := time.Now()

	text := doc.Content
	if r.Normalizer != nil {
		text = r.Normalizer.Normalize(text)
	}

	seg := r.Segmenter.Segment(doc.ID, text)

	// The diff's original side is the raw content, not the normalized
	// text: drift introduced by normalization and segmentation must
	// itself show up in the report.
	var diff *vanban.DiffReport
	if r.Differ != nil {
		diff = r.Differ.Diff(doc.ID, doc.Content, &seg.StructuredDocument)
	}

	if r.Logger != nil {
		r.Logger.Debug("document processed",
			slog.String("doc_id", doc.ID),
			slog.String("strategy", string(seg.Strategy)),
			slog.Int("articles", len(seg.Articles)),
			slog.Duration("duration", time.Since(start)),
		)
	}

	return docResult{id: doc.ID, seg: seg, diff: diff}
}

// persist writes the result through the configured sinks. A non-empty
// return is the skip reason.
func (r *Runner) persist(ctx context.Context, res docResult) string {
	if r.Writer != nil {
		if err := r.Writer.WriteResult(ctx, res.seg, res.diff); err != nil {
			return fmt.Sprintf("failed to write result: %v", err)
		}
	}
	if r.Results != nil {
		if err := r.Results.SaveResult(ctx, res.seg, res.diff); err != nil {
			return fmt.Sprintf("failed to save result: %v", err)
		}
	}
	return ""
}

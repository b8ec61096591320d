package batch_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/hqanh/vanban"
	"github.com/hqanh/vanban/batch"
	"github.com/hqanh/vanban/bloom"
	"github.com/hqanh/vanban/diff"
	"github.com/hqanh/vanban/mock"
	"github.com/hqanh/vanban/norm"
	"github.com/hqanh/vanban/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passthroughSegmenter() *mock.Segmenter {
	return &mock.Segmenter{
		SegmentFn: func(docID, text string) *vanban.SegmentationResult {
			return &vanban.SegmentationResult{
				DocID:    docID,
				Strategy: vanban.StrategyPrimary,
				Found:    true,
				StructuredDocument: vanban.StructuredDocument{
					Articles: []vanban.Article{
						{Clauses: []vanban.Clause{{No: "1", Text: text}}},
					},
				},
			}
		},
	}
}

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	t.Run("processes all documents", func(t *testing.T) {
		t.Parallel()

		r := &batch.Runner{Segmenter: passthroughSegmenter(), Concurrency: 4}

		var docs []*vanban.Document
		for i := 0; i < 10; i++ {
			docs = append(docs, &vanban.Document{
				ID:      fmt.Sprintf("doc%d", i),
				Content: fmt.Sprintf("Điều %d. Nội dung", i),
			})
		}

		out, err := r.Run(context.Background(), docs, nil)
		require.NoError(t, err)

		assert.Len(t, out.Results, 10)
		assert.Empty(t, out.Skipped)
		for _, doc := range docs {
			res, ok := out.Results[doc.ID]
			require.True(t, ok, "missing result for %s", doc.ID)
			assert.Equal(t, doc.ID, res.Segmentation.DocID)
		}
	})

	t.Run("normalizes for segmenting but diffs against raw content", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var segInput, diffInput string

		r := &batch.Runner{
			Normalizer: &mock.Normalizer{
				NormalizeFn: func(text string) string { return strings.TrimSpace(text) },
			},
			Segmenter: &mock.Segmenter{
				SegmentFn: func(docID, text string) *vanban.SegmentationResult {
					mu.Lock()
					segInput = text
					mu.Unlock()
					return &vanban.SegmentationResult{DocID: docID, Strategy: vanban.StrategyFallback}
				},
			},
			Differ: &mock.Differ{
				DiffFn: func(docID, originalText string, doc *vanban.StructuredDocument) *vanban.DiffReport {
					mu.Lock()
					diffInput = originalText
					mu.Unlock()
					return &vanban.DiffReport{DocID: docID}
				},
			},
		}

		docs := []*vanban.Document{{ID: "doc1", Content: "  Điều 1. Nội dung  "}}
		out, err := r.Run(context.Background(), docs, nil)
		require.NoError(t, err)

		require.Len(t, out.Results, 1)
		assert.Equal(t, "Điều 1. Nội dung", segInput)
		assert.Equal(t, "  Điều 1. Nội dung  ", diffInput)
		assert.NotNil(t, out.Results["doc1"].Diff)
	})

	t.Run("diff surfaces drift caused by normalization", func(t *testing.T) {
		t.Parallel()

		segmenter := segment.New(nil)
		r := &batch.Runner{
			Normalizer: norm.NewNormalizer(),
			Segmenter:  segmenter,
			Differ:     diff.NewEngine(segmenter),
		}

		// NBSP between the marker keyword and the number: only the
		// normalized text segments into an article, so the raw side
		// falls back to a single synthetic clause.
		raw := "Điều 1. Phạm vi điều chỉnh\n1. Nội dung thứ nhất."
		docs := []*vanban.Document{{ID: "doc1", Content: raw}}

		out, err := r.Run(context.Background(), docs, nil)
		require.NoError(t, err)

		res := out.Results["doc1"]
		require.NotNil(t, res)
		assert.Equal(t, vanban.StrategyPrimary, res.Segmentation.Strategy)

		require.NotNil(t, res.Diff)
		assert.Greater(t, res.Diff.Totals.Added, 0)
		assert.Greater(t, res.Diff.Totals.Deleted, 0)
	})

	t.Run("skips documents with NUL bytes", func(t *testing.T) {
		t.Parallel()

		r := &batch.Runner{Segmenter: passthroughSegmenter()}

		docs := []*vanban.Document{
			{ID: "good", Content: "Điều 1."},
			{ID: "bad", Content: "Điều 1.\x00x"},
		}

		out, err := r.Run(context.Background(), docs, nil)
		require.NoError(t, err)

		assert.Len(t, out.Results, 1)
		require.Len(t, out.Skipped, 1)
		assert.Equal(t, "bad", out.Skipped[0].ID)
		assert.Contains(t, out.Skipped[0].Reason, "NUL")
	})

	t.Run("skips oversize documents", func(t *testing.T) {
		t.Parallel()

		r := &batch.Runner{Segmenter: passthroughSegmenter(), MaxBytes: 10}

		docs := []*vanban.Document{
			{ID: "small", Content: "Điều 1."},
			{ID: "big", Content: strings.Repeat("x", 11)},
		}

		out, err := r.Run(context.Background(), docs, nil)
		require.NoError(t, err)

		assert.Contains(t, out.Results, "small")
		require.Len(t, out.Skipped, 1)
		assert.Equal(t, "big", out.Skipped[0].ID)
	})

	t.Run("skips duplicate content when dedup filter is set", func(t *testing.T) {
		t.Parallel()

		r := &batch.Runner{
			Segmenter: passthroughSegmenter(),
			Dedup:     bloom.NewFilter(1000, 0.001),
		}

		docs := []*vanban.Document{
			{ID: "first", Content: "Điều 1. Nội dung"},
			{ID: "copy", Content: "Điều 1. Nội dung"},
			{ID: "other", Content: "Điều 2. Nội dung khác"},
		}

		out, err := r.Run(context.Background(), docs, nil)
		require.NoError(t, err)

		assert.Contains(t, out.Results, "first")
		assert.Contains(t, out.Results, "other")
		require.Len(t, out.Skipped, 1)
		assert.Equal(t, "copy", out.Skipped[0].ID)
		assert.Contains(t, out.Skipped[0].Reason, "duplicate")
	})

	t.Run("persistence failure skips the document", func(t *testing.T) {
		t.Parallel()

		r := &batch.Runner{
			Segmenter: passthroughSegmenter(),
			Writer: &mock.ResultWriter{
				WriteResultFn: func(ctx context.Context, seg *vanban.SegmentationResult, diff *vanban.DiffReport) error {
					if seg.DocID == "doc1" {
						return vanban.Errorf(vanban.EINTERNAL, "disk full")
					}
					return nil
				},
			},
		}

		docs := []*vanban.Document{
			{ID: "doc0", Content: "a"},
			{ID: "doc1", Content: "b"},
		}

		out, err := r.Run(context.Background(), docs, nil)
		require.NoError(t, err)

		assert.Contains(t, out.Results, "doc0")
		assert.NotContains(t, out.Results, "doc1")
		require.Len(t, out.Skipped, 1)
		assert.Equal(t, "doc1", out.Skipped[0].ID)
		assert.Contains(t, out.Skipped[0].Reason, "disk full")
	})

	t.Run("saves results through the result service", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		saved := make(map[string]bool)

		r := &batch.Runner{
			Segmenter: passthroughSegmenter(),
			Results: &mock.ResultService{
				SaveResultFn: func(ctx context.Context, seg *vanban.SegmentationResult, diff *vanban.DiffReport) error {
					mu.Lock()
					saved[seg.DocID] = true
					mu.Unlock()
					return nil
				},
			},
		}

		docs := []*vanban.Document{
			{ID: "doc0", Content: "a"},
			{ID: "doc1", Content: "b"},
		}

		_, err := r.Run(context.Background(), docs, nil)
		require.NoError(t, err)

		assert.True(t, saved["doc0"])
		assert.True(t, saved["doc1"])
	})

	t.Run("reports progress events", func(t *testing.T) {
		t.Parallel()

		r := &batch.Runner{Segmenter: passthroughSegmenter(), Concurrency: 2}

		docs := []*vanban.Document{
			{ID: "doc0", Content: "a"},
			{ID: "doc1", Content: "b"},
			{ID: "bad", Content: "x\x00"},
		}

		var mu sync.Mutex
		counts := make(map[batch.ProgressType]int)
		_, err := r.Run(context.Background(), docs, func(event batch.ProgressEvent) {
			mu.Lock()
			counts[event.Type]++
			mu.Unlock()
		})
		require.NoError(t, err)

		assert.Equal(t, 1, counts[batch.ProgressStarted])
		assert.Equal(t, 2, counts[batch.ProgressCompleted])
		assert.Equal(t, 1, counts[batch.ProgressSkipped])
		assert.Equal(t, 1, counts[batch.ProgressFinished])
	})

	t.Run("cancellation keeps completed results", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())

		var once sync.Once
		r := &batch.Runner{
			Concurrency: 1,
			Segmenter: &mock.Segmenter{
				SegmentFn: func(docID, text string) *vanban.SegmentationResult {
					once.Do(cancel)
					return &vanban.SegmentationResult{DocID: docID, Strategy: vanban.StrategyFallback}
				},
			},
		}

		var docs []*vanban.Document
		for i := 0; i < 20; i++ {
			docs = append(docs, &vanban.Document{ID: fmt.Sprintf("doc%d", i), Content: "x"})
		}

		out, err := r.Run(ctx, docs, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.NotNil(t, out)
		assert.Less(t, len(out.Results), 20)
	})

	t.Run("requires a segmenter", func(t *testing.T) {
		t.Parallel()

		r := &batch.Runner{}
		_, err := r.Run(context.Background(), nil, nil)

		require.Error(t, err)
		assert.Equal(t, vanban.EINVALID, vanban.ErrorCode(err))
	})
}

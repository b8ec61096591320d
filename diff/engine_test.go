package diff_test

import (
	"testing"

	"github.com/hqanh/vanban"
	"github.com/hqanh/vanban/diff"
	"github.com/hqanh/vanban/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() (*diff.Engine, *segment.Segmenter) {
	seg := segment.New(nil)
	return diff.NewEngine(seg), seg
}

func TestEngine_Diff(t *testing.T) {
	t.Parallel()

	t.Run("identical original and processed sides produce no records", func(t *testing.T) {
		t.Parallel()

		engine, seg := newEngine()
		text := "Điều 1. Quy định chung\n1. Nội dung A\n2. Nội dung B\nĐiều 2. Đối tượng\n1. Nội dung C"
		processed := seg.Segment("doc-1", text)

		report := engine.Diff("doc-1", text, &processed.StructuredDocument)

		assert.Empty(t, report.Changes)
		assert.Equal(t, 0, report.Totals.Added)
		assert.Equal(t, 0, report.Totals.Deleted)
	})

	t.Run("empty original yields one added record per clause", func(t *testing.T) {
		t.Parallel()

		engine, seg := newEngine()
		processed := seg.Segment("doc-2", "Điều 1. T\n1. A\n2. B")

		report := engine.Diff("doc-2", "", &processed.StructuredDocument)

		require.Len(t, report.Changes, 2)
		for _, rec := range report.Changes {
			assert.Equal(t, vanban.ChangeAdded, rec.Type)
			assert.Equal(t, vanban.GranularityClause, rec.Granularity)
		}
		assert.Equal(t, 2, report.Totals.Added)
		assert.Equal(t, 0, report.Totals.Deleted)
	})

	t.Run("empty processed side yields only deleted records", func(t *testing.T) {
		t.Parallel()

		engine, _ := newEngine()

		report := engine.Diff("doc-3", "Điều 1. T\n1. A\n2. B", nil)

		require.Len(t, report.Changes, 2)
		for _, rec := range report.Changes {
			assert.Equal(t, vanban.ChangeDeleted, rec.Type)
		}
		assert.Equal(t, 2, report.Totals.Deleted)
	})

	t.Run("both sides empty yields an empty report", func(t *testing.T) {
		t.Parallel()

		engine, _ := newEngine()

		report := engine.Diff("doc-4", "", nil)

		assert.Empty(t, report.Changes)
		assert.Equal(t, vanban.DiffTotals{}, report.Totals)
	})

	t.Run("missing article collapses to one article-granularity deletion", func(t *testing.T) {
		t.Parallel()

		engine, seg := newEngine()
		processed := seg.Segment("doc-5", "Điều 1. A")

		report := engine.Diff("doc-5", "Điều 1. A\nĐiều 2. B", &processed.StructuredDocument)

		require.Len(t, report.Changes, 1)
		rec := report.Changes[0]
		assert.Equal(t, vanban.ChangeDeleted, rec.Type)
		assert.Equal(t, vanban.GranularityArticle, rec.Granularity)
		assert.Equal(t, "articles[1]", rec.Location)
		assert.Equal(t, "B", rec.Text)
	})

	t.Run("changed clause surfaces as one deleted plus one added", func(t *testing.T) {
		t.Parallel()

		engine, seg := newEngine()
		processed := seg.Segment("doc-6", "Điều 1. T\n1. giữ nguyên\n2. đã sửa đổi")

		report := engine.Diff("doc-6", "Điều 1. T\n1. giữ nguyên\n2. nội dung cũ", &processed.StructuredDocument)

		require.Len(t, report.Changes, 2)
		assert.Equal(t, vanban.ChangeDeleted, report.Changes[0].Type)
		assert.Equal(t, "nội dung cũ", report.Changes[0].Text)
		assert.Equal(t, vanban.ChangeAdded, report.Changes[1].Type)
		assert.Equal(t, "đã sửa đổi", report.Changes[1].Text)
		assert.Equal(t, vanban.DiffTotals{Added: 1, Deleted: 1}, report.Totals)
	})

	t.Run("deleted records precede added records", func(t *testing.T) {
		t.Parallel()

		engine, seg := newEngine()
		processed := seg.Segment("doc-7", "Điều 1. T\n1. chung\n2. mới")

		report := engine.Diff("doc-7", "Điều 1. T\n1. cũ\n2. chung", &processed.StructuredDocument)

		require.Len(t, report.Changes, 2)
		assert.Equal(t, vanban.ChangeDeleted, report.Changes[0].Type)
		assert.Equal(t, vanban.ChangeAdded, report.Changes[1].Type)
	})

	t.Run("whitespace differences do not register as changes", func(t *testing.T) {
		t.Parallel()

		engine, seg := newEngine()
		processed := seg.Segment("doc-8", "Điều 1. T\n1. nội dung a")

		report := engine.Diff("doc-8", "Điều 1. T\n1. nội   dung\na", &processed.StructuredDocument)

		assert.Empty(t, report.Changes)
	})

	t.Run("reordered clause reports as delete plus add", func(t *testing.T) {
		t.Parallel()

		engine, seg := newEngine()
		processed := seg.Segment("doc-9", "Điều 1. T\n1. B\n2. A\n3. C")

		report := engine.Diff("doc-9", "Điều 1. T\n1. A\n2. B\n3. C", &processed.StructuredDocument)

		// Earliest-match-wins alignment cannot tell a move from a
		// delete/add pair at the same content: "A" matches forward,
		// leaving "B" unmatched on both sides.
		require.Len(t, report.Changes, 2)
		assert.Equal(t, vanban.ChangeDeleted, report.Changes[0].Type)
		assert.Equal(t, "B", report.Changes[0].Text)
		assert.Equal(t, vanban.ChangeAdded, report.Changes[1].Type)
		assert.Equal(t, "B", report.Changes[1].Text)
	})

	t.Run("unstructured original compares against fallback unit", func(t *testing.T) {
		t.Parallel()

		engine, seg := newEngine()
		text := "Văn bản không có cấu trúc rõ ràng."
		processed := seg.Segment("doc-10", text)

		report := engine.Diff("doc-10", text, &processed.StructuredDocument)

		assert.Empty(t, report.Changes)
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		engine, seg := newEngine()
		processed := seg.Segment("doc-11", "Điều 1. T\n1. A")
		original := "Điều 1. T\n1. B\n2. A"

		first := engine.Diff("doc-11", original, &processed.StructuredDocument)
		second := engine.Diff("doc-11", original, &processed.StructuredDocument)

		assert.Equal(t, first, second)
	})

	t.Run("added article collapses to article granularity", func(t *testing.T) {
		t.Parallel()

		engine, seg := newEngine()
		processed := seg.Segment("doc-12", "Điều 1. A\nĐiều 2. B")

		report := engine.Diff("doc-12", "Điều 1. A", &processed.StructuredDocument)

		require.Len(t, report.Changes, 1)
		rec := report.Changes[0]
		assert.Equal(t, vanban.ChangeAdded, rec.Type)
		assert.Equal(t, vanban.GranularityArticle, rec.Granularity)
		assert.Equal(t, "articles[1]", rec.Location)
		assert.Equal(t, "B", rec.Text)
	})
}

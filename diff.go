package vanban

// ChangeType classifies a diff record. There is no "modified": a changed unit
// is represented as one deleted plus one added record, since clause text is
// compared as opaque strings rather than versioned objects.
type ChangeType string

// Change types.
const (
	ChangeAdded   ChangeType = "added"
	ChangeDeleted ChangeType = "deleted"
)

// Granularity is the structural level a diff record refers to.
type Granularity string

// Granularities.
const (
	GranularityArticle Granularity = "article"
	GranularityClause  Granularity = "clause"
)

// DiffRecord describes one structural change between the original text and
// the segmented output. Location is a path into the structured document,
// e.g. "articles[1]" or "articles[1].clauses[0]".
type DiffRecord struct {
	Type        ChangeType  `json:"type"`
	Granularity Granularity `json:"granularity"`
	Location    string      `json:"location"`
	Text        string      `json:"text"`
}

// DiffTotals aggregates record counts for one document.
type DiffTotals struct {
	Added   int `json:"added"`
	Deleted int `json:"deleted"`
}

// DiffReport is the ordered change list for one document: deleted records in
// original-document order, then added records in processed-document order.
type DiffReport struct {
	DocID   string       `json:"doc_id"`
	Changes []DiffRecord `json:"changes"`
	Totals  DiffTotals   `json:"totals"`
}

// Differ computes the structural difference between original document text
// and a segmented document. It is total and deterministic: empty inputs
// produce an all-added or all-deleted report, never an error.
type Differ interface {
	Diff(docID, originalText string, doc *StructuredDocument) *DiffReport
}

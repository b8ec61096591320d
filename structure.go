package vanban

import "strings"

// Strategy identifies which marker-recognition tier produced a segmentation.
type Strategy string

// Strategy tiers, tried in order by the segmenter.
const (
	StrategyPrimary  Strategy = "primary"
	StrategyLoose    Strategy = "loose"
	StrategyFallback Strategy = "fallback"
)

// Point is a labeled subdivision of a clause (điểm), e.g. "a) ...".
type Point struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Clause is a numbered subdivision of an article (khoản). The number is an
// opaque string: documents use "1", "1a", "2b" and collisions are possible.
// Clauses are unique by position, never by number.
type Clause struct {
	No     string  `json:"no"`
	Text   string  `json:"text"`
	Points []Point `json:"points"`
}

// FlatText returns the clause text including its points, one line per node.
func (c Clause) FlatText() string {
	if len(c.Points) == 0 {
		return c.Text
	}
	parts := make([]string, 0, len(c.Points)+1)
	if c.Text != "" {
		parts = append(parts, c.Text)
	}
	for _, p := range c.Points {
		parts = append(parts, p.Label+") "+p.Text)
	}
	return strings.Join(parts, "\n")
}

// Article is a top-level numbered unit of a legal document (điều). Section
// carries the enclosing chương/phần/mục heading when one was recognized.
type Article struct {
	Section *string  `json:"section"`
	Title   *string  `json:"title"`
	Clauses []Clause `json:"clauses"`
}

// FlatText returns the text of all clauses of the article, in order.
func (a Article) FlatText() string {
	parts := make([]string, 0, len(a.Clauses))
	for _, c := range a.Clauses {
		parts = append(parts, c.FlatText())
	}
	return strings.Join(parts, "\n")
}

// StructuredDocument is the ordered article sequence extracted from one
// document. Article order matches first appearance in the text; article
// numbers need not be contiguous.
type StructuredDocument struct {
	Articles []Article `json:"articles"`
}

// ClauseCount returns the total number of clauses across all articles.
func (d *StructuredDocument) ClauseCount() int {
	var n int
	for _, a := range d.Articles {
		n += len(a.Clauses)
	}
	return n
}

// SegmentationResult is the output of the segmenter for one document.
// Found reports whether any article was recognized; when false the strategy
// is always StrategyFallback.
type SegmentationResult struct {
	DocID    string   `json:"doc_id"`
	Strategy Strategy `json:"strategy"`
	Found    bool     `json:"found"`
	StructuredDocument
}

// Segmenter converts normalized text into a structured document. It is total:
// it never fails, only degrades through strategy tiers. Implementations must
// be deterministic and safe for concurrent use.
type Segmenter interface {
	Segment(docID, text string) *SegmentationResult
}

// Normalizer canonicalizes raw document text. Implementations must be pure,
// total and idempotent: any input produces an output, and normalizing twice
// equals normalizing once.
type Normalizer interface {
	Normalize(text string) string
}

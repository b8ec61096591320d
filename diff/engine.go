// Package diff quantifies what normalization and segmentation added or
// removed relative to the source text, at article and clause granularity.
//
// Both sides of the comparison are flattened to ordered clause-level units:
// the processed side directly from its structured document, the original side
// by running the same marker-aware segmentation over the raw text, so the two
// sides are comparable at equal granularity.
package diff

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hqanh/vanban"
)

// Ensure Engine implements vanban.Differ at compile time.
var _ vanban.Differ = (*Engine)(nil)

// Engine computes structural diffs. The segmenter must use the same marker
// config as the one that produced the processed documents.
type Engine struct {
	seg vanban.Segmenter
}

// NewEngine returns an Engine that flattens the original side with seg.
func NewEngine(seg vanban.Segmenter) *Engine {
	return &Engine{seg: seg}
}

// unit is one clause-level text unit on either side of the comparison.
// clause is -1 for an article that carries only a title and no clauses.
type unit struct {
	article int
	clause  int
	text    string // whitespace-collapsed, used for matching
	snippet string // original text, used in records
}

func (u unit) location() string {
	if u.clause < 0 {
		return fmt.Sprintf("articles[%d]", u.article)
	}
	return fmt.Sprintf("articles[%d].clauses[%d]", u.article, u.clause)
}

// Diff implements vanban.Differ. Unmatched original units become deleted
// records in original order, unmatched processed units become added records
// in processed order. When every clause of an article on one side is
// unmatched the article collapses to a single article-granularity record.
func (e *Engine) Diff(docID, originalText string, doc *vanban.StructuredDocument) *vanban.DiffReport {
	var orig []unit
	if strings.TrimSpace(originalText) != "" {
		orig = flatten(&e.seg.Segment(docID, originalText).StructuredDocument)
	}
	var proc []unit
	if doc != nil {
		proc = flatten(doc)
	}

	matchedOrig, matchedProc := align(orig, proc)

	report := &vanban.DiffReport{DocID: docID, Changes: []vanban.DiffRecord{}}
	for _, rec := range collect(orig, matchedOrig, vanban.ChangeDeleted, len(proc) > 0) {
		report.Changes = append(report.Changes, rec)
		report.Totals.Deleted++
	}
	for _, rec := range collect(proc, matchedProc, vanban.ChangeAdded, len(orig) > 0) {
		report.Changes = append(report.Changes, rec)
		report.Totals.Added++
	}
	return report
}

// flatten converts a structured document into ordered clause units.
func flatten(doc *vanban.StructuredDocument) []unit {
	var units []unit
	for ai, a := range doc.Articles {
		if len(a.Clauses) == 0 {
			text := ""
			if a.Title != nil {
				text = *a.Title
			}
			if collapse(text) == "" {
				continue
			}
			units = append(units, unit{article: ai, clause: -1, text: collapse(text), snippet: text})
			continue
		}
		for ci, c := range a.Clauses {
			flat := c.FlatText()
			units = append(units, unit{article: ai, clause: ci, text: collapse(flat), snippet: flat})
		}
	}
	return units
}

var wsRe = regexp.MustCompile(`\s+`)

func collapse(s string) string {
	return strings.TrimSpace(wsRe.ReplaceAllString(s, " "))
}

// align matches units by exact text equality, greedy by first available
// match scanning forward, preserving relative order. Ties break to the
// earliest position. Returns matched flags for each side.
func align(orig, proc []unit) ([]bool, []bool) {
	matchedOrig := make([]bool, len(orig))
	matchedProc := make([]bool, len(proc))

	next := 0
	for i, o := range orig {
		for j := next; j < len(proc); j++ {
			if proc[j].text == o.text {
				matchedOrig[i] = true
				matchedProc[j] = true
				next = j + 1
				break
			}
		}
	}
	return matchedOrig, matchedProc
}

// collect turns unmatched units into records. When collapseArticles is set,
// an article whose clauses are all unmatched becomes a single
// article-granularity record; it is unset when the other side of the
// comparison is empty, so that a fully skewed diff stays one record per
// clause.
func collect(units []unit, matched []bool, typ vanban.ChangeType, collapseArticles bool) []vanban.DiffRecord {
	// Tally matches per article to decide granularity.
	hit := map[int]int{}
	for i, u := range units {
		if matched[i] {
			hit[u.article]++
		}
	}

	var records []vanban.DiffRecord
	emitted := map[int]bool{}
	for i, u := range units {
		if matched[i] {
			continue
		}
		if collapseArticles && hit[u.article] == 0 {
			if emitted[u.article] {
				continue
			}
			emitted[u.article] = true
			records = append(records, vanban.DiffRecord{
				Type:        typ,
				Granularity: vanban.GranularityArticle,
				Location:    fmt.Sprintf("articles[%d]", u.article),
				Text:        articleSnippet(units, u.article),
			})
			continue
		}
		granularity := vanban.GranularityClause
		if u.clause < 0 {
			granularity = vanban.GranularityArticle
		}
		records = append(records, vanban.DiffRecord{
			Type:        typ,
			Granularity: granularity,
			Location:    u.location(),
			Text:        u.snippet,
		})
	}
	return records
}

// articleSnippet joins the snippets of all units belonging to one article.
func articleSnippet(units []unit, article int) string {
	var parts []string
	for _, u := range units {
		if u.article == article {
			parts = append(parts, u.snippet)
		}
	}
	return strings.Join(parts, "\n")
}

// Package segment converts normalized legal-document text into a structured
// document (chapter → article → clause → point) using a cascade of
// marker-recognition strategies: primary, loose, then fallback. Segmentation
// is total; inability to find structure degrades the strategy tier rather
// than failing.
package segment

import (
	"regexp"
	"strings"

	"github.com/hqanh/vanban"
)

// Ensure Segmenter implements vanban.Segmenter at compile time.
var _ vanban.Segmenter = (*Segmenter)(nil)

// Segmenter is a single-pass line scanner over normalized text.
type Segmenter struct {
	cfg *MarkerConfig
}

// New returns a Segmenter using the given marker config.
// A nil config selects DefaultConfig.
func New(cfg *MarkerConfig) *Segmenter {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Segmenter{cfg: cfg}
}

// Segment implements vanban.Segmenter. Strategies are tried in order and the
// first that recognizes at least one article marker wins; otherwise the whole
// text becomes a single synthetic article with a single synthetic clause.
// Empty text yields zero articles and the fallback strategy.
func (s *Segmenter) Segment(docID, text string) *vanban.SegmentationResult {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return &vanban.SegmentationResult{
			DocID:    docID,
			Strategy: vanban.StrategyFallback,
		}
	}

	if doc, ok := s.scan(trimmed, s.cfg.Article); ok {
		return &vanban.SegmentationResult{
			DocID:              docID,
			Strategy:           vanban.StrategyPrimary,
			Found:              true,
			StructuredDocument: *doc,
		}
	}

	if doc, ok := s.scan(trimmed, s.cfg.Loose); ok {
		return &vanban.SegmentationResult{
			DocID:              docID,
			Strategy:           vanban.StrategyLoose,
			Found:              true,
			StructuredDocument: *doc,
		}
	}

	return &vanban.SegmentationResult{
		DocID:    docID,
		Strategy: vanban.StrategyFallback,
		StructuredDocument: vanban.StructuredDocument{
			Articles: []vanban.Article{{
				Clauses: []vanban.Clause{{No: "1", Text: trimmed}},
			}},
		},
	}
}

// scanner state: which node type receives non-marker text lines.
type state int

const (
	stateOutside state = iota
	stateInArticle
	stateInClause
	stateInPoint
)

// scan runs the state machine over text using articleRe as the article
// marker. It reports whether at least one article marker was recognized;
// articles synthesized for orphan clauses do not count.
func (s *Segmenter) scan(text string, articleRe *regexp.Regexp) (*vanban.StructuredDocument, bool) {
	var (
		doc     vanban.StructuredDocument
		article *vanban.Article
		clause  *vanban.Clause
		point   *vanban.Point
		section *string
		intro   []string
		st      = stateOutside
		matched int
	)

	closePoint := func() {
		if point != nil {
			clause.Points = append(clause.Points, *point)
			point = nil
		}
	}
	closeClause := func() {
		closePoint()
		if clause != nil {
			article.Clauses = append(article.Clauses, *clause)
			clause = nil
		}
	}
	closeArticle := func() {
		closeClause()
		if article == nil {
			intro = nil
			return
		}
		if lead := strings.Join(intro, "\n"); lead != "" {
			// Text between the heading and the first clause marker.
			// With no clauses it is the article body; otherwise it
			// becomes an implicit leading clause.
			if len(article.Clauses) == 0 {
				article.Clauses = []vanban.Clause{{No: "1", Text: lead}}
			} else {
				article.Clauses = append([]vanban.Clause{{No: "0", Text: lead}}, article.Clauses...)
			}
		}
		intro = nil
		doc.Articles = append(doc.Articles, *article)
		article = nil
	}
	// openSynthetic attaches orphan clauses to an unlabeled article.
	openSynthetic := func() {
		if article == nil {
			article = &vanban.Article{Section: section}
			st = stateInArticle
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := articleRe.FindStringSubmatch(line); m != nil {
			closeArticle()
			matched++
			article = &vanban.Article{Section: section}
			if title := strings.TrimSpace(m[2]); title != "" {
				article.Title = &title
			}
			st = stateInArticle
			continue
		}

		if m := s.cfg.Section.FindStringSubmatch(line); m != nil {
			closeArticle()
			label := m[1] + " " + m[2]
			section = &label
			st = stateOutside
			continue
		}

		if m := s.cfg.Clause.FindStringSubmatch(line); m != nil {
			openSynthetic()
			closeClause()
			clause = &vanban.Clause{No: m[1], Text: m[2]}
			st = stateInClause
			continue
		}

		if m := s.cfg.Point.FindStringSubmatch(line); m != nil {
			openSynthetic()
			if clause == nil {
				// A point with no open clause attaches to an
				// implicit clause numbered "0".
				clause = &vanban.Clause{No: "0"}
			}
			closePoint()
			point = &vanban.Point{Label: m[1], Text: m[2]}
			st = stateInPoint
			continue
		}

		switch st {
		case stateInPoint:
			point.Text = appendLine(point.Text, line)
		case stateInClause:
			clause.Text = appendLine(clause.Text, line)
		case stateInArticle:
			intro = append(intro, line)
		case stateOutside:
			// Document preamble; not part of the structure.
		}
	}
	closeArticle()

	return &doc, matched > 0
}

func appendLine(text, line string) string {
	if text == "" {
		return line
	}
	return text + "\n" + line
}

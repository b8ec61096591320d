// Package goquery extracts plain text from HTML document content.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/hqanh/vanban"
)

// Block-level closing tags that should produce a line break so the
// article and clause markers end up on their own lines after extraction.
var blockCloseRe = regexp.MustCompile(`(?i)</(p|div|li|tr|h[1-6]|section|article|blockquote|table)>|<br\s*/?>`)

// Extractor converts HTML content to plain text. Content that does not
// look like HTML is returned unchanged, so callers can feed it mixed
// corpora without sniffing the format themselves.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the text content of HTML input with block element
// boundaries preserved as newlines. Plain text input passes through as-is.
func (e *Extractor) ExtractText(content string) (string, error) {
	if !looksLikeHTML(content) {
		return content, nil
	}

	// Insert newlines at block boundaries before parsing; goquery's Text()
	// concatenates text nodes without regard for element boundaries.
	withBreaks := blockCloseRe.ReplaceAllString(content, "\n")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(withBreaks))
	if err != nil {
		return "", vanban.Errorf(vanban.EMALFORMED, "failed to parse HTML: %v", err)
	}

	doc.Find("script, style, noscript").Remove()

	return doc.Text(), nil
}

// looksLikeHTML reports whether content appears to contain HTML markup.
func looksLikeHTML(content string) bool {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "<!DOCTYPE") || strings.HasPrefix(trimmed, "<!doctype") {
		return true
	}
	return strings.Contains(content, "<html") ||
		strings.Contains(content, "<body") ||
		strings.Contains(content, "<p>") ||
		strings.Contains(content, "<div") ||
		strings.Contains(content, "<br")
}

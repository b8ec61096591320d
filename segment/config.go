package segment

import "regexp"

// MarkerConfig holds the compiled structural-marker patterns used by a
// Segmenter. A config is immutable after construction and safe to share
// across concurrent document pipelines.
//
// All patterns match a single line. Article patterns capture the article
// number and the remainder of the heading line; Section captures the heading
// keyword and its numeral; Clause and Point capture the item label and the
// text following it.
type MarkerConfig struct {
	// Article is the primary-tier marker: the canonical "Điều n" form.
	Article *regexp.Regexp

	// Loose is the loose-tier marker: tolerates missing diacritics,
	// case noise and alternate punctuation from OCR.
	Loose *regexp.Regexp

	// Section matches chương/phần/mục/tiết headings.
	Section *regexp.Regexp

	// Clause matches numbered clause markers ("1.", "2)", "Khoản 1.").
	Clause *regexp.Regexp

	// Point matches lettered point markers ("a)", "Điểm b)").
	Point *regexp.Regexp
}

var defaultConfig = &MarkerConfig{
	Article: regexp.MustCompile(`^Điều\s+(\d+[a-zA-Z]?)\s*[.:–-]?\s*(.*)$`),
	Loose:   regexp.MustCompile(`(?i)^(?:điều|đieu|diều|dieu)\s*(\d+\w*)\s*[.:;)–-]?\s*(.*)$`),
	Section: regexp.MustCompile(`(?i)^(chương|phần|mục|tiết)\s+([IVXLCDM]+|\d+)\b\s*[.:–-]?\s*(.*)$`),
	Clause:  regexp.MustCompile(`^(?:(?i:khoản)\s+)?(\d+[a-zA-Z]?)\s*[.)]\s+(.*)$`),
	Point:   regexp.MustCompile(`^(?:(?i:điểm)\s+)?([a-zđ])\s*\)\s+(.*)$`),
}

// DefaultConfig returns the marker patterns for Vietnamese legal documents.
// The returned config is shared; callers must not modify it.
func DefaultConfig() *MarkerConfig {
	return defaultConfig
}

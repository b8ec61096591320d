// Package norm canonicalizes raw legal-document text: Unicode composition,
// whitespace and line-break normalization. Normalization is pure, total and
// idempotent; invalid byte sequences are replaced, never rejected.
package norm

import (
	"regexp"
	"strings"
	"unicode/utf8"

	xnorm "golang.org/x/text/unicode/norm"

	"github.com/hqanh/vanban"
)

var (
	hspaceRe    = regexp.MustCompile(`[ \t]+`)
	lineTrailRe = regexp.MustCompile(`(?m)[ \t]+$`)
	blankRunsRe = regexp.MustCompile(`\n{3,}`)
)

// Ensure Normalizer implements vanban.Normalizer at compile time.
var _ vanban.Normalizer = (*Normalizer)(nil)

// Normalizer implements vanban.Normalizer. The zero value is ready to use.
type Normalizer struct{}

// NewNormalizer returns a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize implements vanban.Normalizer.
func (n *Normalizer) Normalize(text string) string {
	return Normalize(text)
}

// Normalize canonicalizes text:
//
//   - invalid UTF-8 sequences become U+FFFD
//   - Unicode canonical composition (NFC)
//   - NBSP becomes a space; CRLF and CR become LF
//   - runs of spaces and tabs collapse to a single space
//   - runs of three or more newlines collapse to exactly two
//   - leading and trailing whitespace is trimmed
//
// The result of normalizing twice equals normalizing once.
func Normalize(text string) string {
	s := strings.ToValidUTF8(text, string(utf8.RuneError))
	s = xnorm.NFC.String(s)
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = hspaceRe.ReplaceAllString(s, " ")
	s = lineTrailRe.ReplaceAllString(s, "")
	s = blankRunsRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// Package vanban converts Vietnamese legal-document text into a verifiable
// hierarchical structure (chương → điều → khoản → điểm) and computes a
// structural diff between the raw source text and the segmented output, so
// that extraction quality and content drift can be measured per document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., norm/, segment/, sqlite/).
package vanban

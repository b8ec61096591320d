// Package bloom provides duplicate-document detection using Bloom filters
// keyed by content hash.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter tracks content hashes of documents already processed in a batch.
// A positive answer may rarely be wrong (false positive rate below), a
// negative answer never is.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected documents with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen records the hash and reports whether it was already present.
func (f *Filter) Seen(hash string) bool {
	return f.f.TestOrAddString(hash)
}

// Test reports whether the hash might already be present, without recording.
func (f *Filter) Test(hash string) bool {
	return f.f.TestString(hash)
}

// EstimatedCount returns the approximate number of recorded hashes.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

// Package bloom provides repeated-sentence suppression using Bloom filters.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/skim"
)

// SeenFilter tracks canonical sentence keys that have already been emitted.
// Digest output uses it to avoid repeating equivalent sentences across
// documents.
type SeenFilter struct {
	f *bloom.BloomFilter
}

// NewSeenFilter creates a new SeenFilter sized for n expected sentences
// with the given false positive rate.
func NewSeenFilter(n uint, fpRate float64) *SeenFilter {
	return &SeenFilter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add canonicalizes the sentence and records it.
func (f *SeenFilter) Add(sentence string) {
	f.f.AddString(skim.CanonicalKey(sentence))
}

// Seen returns true if an equivalent sentence might have been recorded.
// False positives are possible; false negatives are not. Sentences
// differing only in punctuation or whitespace count as equivalent.
func (f *SeenFilter) Seen(sentence string) bool {
	return f.f.TestString(skim.CanonicalKey(sentence))
}

// EstimatedCount returns the approximate number of sentences in the filter.
func (f *SeenFilter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

package skim

import "strings"

// IntersectionScore returns the percentage of space-delimited tokens shared
// between two sentences, normalized by the average of the two token-set
// sizes. All arithmetic is integer-truncating and the result is not
// clamped, so very unequal set sizes can push the score slightly above 100.
func IntersectionScore(a, b string) int {
	setA := tokenSet(a)
	setB := tokenSet(b)

	average := (len(setA) + len(setB)) / 2
	if average == 0 {
		return 0
	}

	overlap := 0
	for token := range setA {
		if _, ok := setB[token]; ok {
			overlap++
		}
	}

	return overlap * 100 / average
}

// tokenSet splits a sentence on single spaces into its set of unique
// tokens. Runs of consecutive spaces produce empty tokens which are kept,
// matching the naive split the scoring is defined over. An empty sentence
// yields an empty set.
func tokenSet(sentence string) map[string]struct{} {
	set := make(map[string]struct{})
	if sentence == "" {
		return set
	}
	for _, token := range strings.Split(sentence, " ") {
		set[token] = struct{}{}
	}
	return set
}

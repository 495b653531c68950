package skim

import "regexp"

var nonWordRunRe = regexp.MustCompile(`\W+`)

// CanonicalKey strips every run of non-word characters from a sentence,
// leaving only letters, digits, and underscores. The result is used as a
// rank-table lookup key. No case folding or other normalization is applied,
// so sentences differing only in punctuation or whitespace collide.
func CanonicalKey(sentence string) string {
	return nonWordRunRe.ReplaceAllString(sentence, "")
}

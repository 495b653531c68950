package skim

import "strings"

// SplitSentences splits text into sentences on line breaks and on periods
// followed by a single space. Empty fragments are dropped; surviving
// fragments keep their original whitespace and punctuation.
func SplitSentences(text string) []string {
	return splitOnDelimiters(text, "\n", ". ")
}

// SplitParagraphs splits text into paragraphs on blank lines and on
// newline-tab-newline breaks. Empty fragments are dropped.
func SplitParagraphs(text string) []string {
	return splitOnDelimiters(text, "\n\n", "\n\t\n")
}

// splitOnDelimiters splits text on two literal delimiters, preserving
// left-to-right order and dropping empty fragments.
func splitOnDelimiters(text, primary, secondary string) []string {
	var fragments []string
	for _, part := range strings.Split(text, primary) {
		for _, fragment := range strings.Split(part, secondary) {
			if fragment == "" {
				continue
			}
			fragments = append(fragments, fragment)
		}
	}
	return fragments
}

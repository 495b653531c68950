package skim

import "strings"

// Summary is the result of summarizing a single document.
type Summary struct {
	DocumentID string    `json:"documentId,omitempty"`
	Title      string    `json:"title"`
	Text       string    `json:"text"`
	Ranks      RankTable `json:"ranks,omitempty"`
	Ratio      int       `json:"ratio"`
}

// BestSentence returns the sentence in paragraph whose canonical key has
// the strictly highest score in table, first-seen winning ties. It returns
// "" when the paragraph has fewer than two sentences or no sentence scores
// above zero.
//
// A canonical key missing from the table means the paragraph and the table
// were derived from different content; that is reported as ENOTFOUND
// naming the offending sentence rather than silently scoring it zero.
func BestSentence(paragraph string, table RankTable) (string, error) {
	sentences := SplitSentences(paragraph)
	if len(sentences) < 2 {
		return "", nil
	}

	best := ""
	max := 0
	for _, sentence := range sentences {
		key := CanonicalKey(sentence)
		if key == "" {
			continue
		}
		score, ok := table[key]
		if !ok {
			return "", Errorf(ENOTFOUND, "sentence %q has no entry in the rank table", sentence)
		}
		if score > max {
			max = score
			best = sentence
		}
	}

	return best, nil
}

// BuildSummary assembles the summary text: the trimmed title, a blank
// line, then the trimmed best sentence of each qualifying paragraph in
// paragraph order. Paragraphs with fewer than two sentences contribute
// nothing.
func BuildSummary(title, content string, table RankTable) (string, error) {
	lines := []string{strings.TrimSpace(title), ""}

	for _, paragraph := range SplitParagraphs(content) {
		best, err := BestSentence(paragraph, table)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(best) == "" {
			continue
		}
		lines = append(lines, strings.TrimSpace(best))
	}

	return strings.Join(lines, "\n"), nil
}

// CompressionRatio reports how much shorter summary is than original as an
// integer percentage, using truncating division. An empty original yields 0.
func CompressionRatio(original, summary string) int {
	if len(original) == 0 {
		return 0
	}
	return 100 - 100*len(summary)/len(original)
}

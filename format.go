package skim

import (
	"fmt"
	"sort"
	"strings"
)

// FormatSummaries formats summaries for display. Summaries are separated by
// blank lines.
func FormatSummaries(summaries []*Summary) string {
	if len(summaries) == 0 {
		return ""
	}

	parts := make([]string, 0, len(summaries))
	for _, s := range summaries {
		parts = append(parts, s.Text)
	}

	return strings.Join(parts, "\n\n")
}

// FormatRankTable formats a rank table for display, one "score key" line
// per entry, ordered by descending score with key order breaking ties.
// Map iteration order is random, so display output must sort.
func FormatRankTable(table RankTable) string {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if table[keys[i]] != table[keys[j]] {
			return table[keys[i]] > table[keys[j]]
		}
		return keys[i] < keys[j]
	})

	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d\t%s", table[key], key)
	}
	return b.String()
}

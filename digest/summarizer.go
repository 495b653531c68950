package digest

import (
	"context"
	"strings"

	"github.com/fwojciec/skim"
)

// Ensure Summarizer implements skim.Summarizer at compile time.
var _ skim.Summarizer = (*Summarizer)(nil)

// Summarizer implements skim.Summarizer on top of the intersection-based
// ranking core. The zero value uses default overwrite-on-collision ranking.
type Summarizer struct {
	Ranker skim.Ranker
}

// NewSummarizer creates a Summarizer with default ranking semantics.
func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// Summarize ranks every sentence in the document against every other and
// assembles the title-plus-best-sentences summary.
func (s *Summarizer) Summarize(ctx context.Context, doc *skim.Document) (*skim.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	table, err := s.Ranker.Rank(doc.Content)
	if err != nil {
		return nil, err
	}

	text, err := skim.BuildSummary(doc.Title, doc.Content, table)
	if err != nil {
		return nil, err
	}

	return &skim.Summary{
		DocumentID: doc.ID,
		Title:      strings.TrimSpace(doc.Title),
		Text:       text,
		Ranks:      table,
		Ratio:      skim.CompressionRatio(doc.Content, text),
	}, nil
}

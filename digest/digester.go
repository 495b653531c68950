package digest

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/bloom"
	"github.com/fwojciec/skim/fs"
	"golang.org/x/sync/errgroup"
)

// Suppression filter sizing.
const (
	// expectedSentences is the expected number of summary sentences for
	// Bloom filter sizing.
	expectedSentences = 10000
	// falsePositiveRate is the acceptable false positive rate for
	// repeated-sentence suppression.
	falsePositiveRate = 0.01
)

// defaultConcurrency bounds concurrent summarization when the caller does
// not set a limit.
const defaultConcurrency = 4

// Result reports the outcome of a digest run.
type Result struct {
	// Summaries holds one summary per distinct input document, in input
	// order, with cross-document repeats already suppressed.
	Summaries []*skim.Summary

	// Duplicates counts inputs skipped because their content hash matched
	// an earlier input.
	Duplicates int

	// Suppressed counts summary sentences dropped because an equivalent
	// sentence was already emitted by an earlier document.
	Suppressed int
}

// Digester summarizes a set of input files into a single digest.
// HTML inputs are routed through the Extractor and Converter before
// summarization; every other input is summarized as-is.
type Digester struct {
	Loader     skim.Loader
	Extractor  skim.Extractor
	Converter  skim.Converter
	Summarizer skim.Summarizer

	// Concurrency bounds parallel summarization. Zero means the default.
	// Documents are independent, so parallelism here is safe; the ranking
	// core itself stays synchronous.
	Concurrency int
}

// Run loads, deduplicates, and summarizes the files at paths.
func (d *Digester) Run(ctx context.Context, paths []string) (*Result, error) {
	if len(paths) == 0 {
		return nil, skim.Errorf(skim.EINVALID, "at least one input path required")
	}

	var result Result

	docs := make([]*skim.Document, 0, len(paths))
	seenHashes := make(map[string]bool)
	for _, path := range paths {
		doc, err := d.Loader.Load(ctx, path)
		if err != nil {
			return nil, err
		}

		if seenHashes[doc.ContentHash] {
			result.Duplicates++
			continue
		}
		seenHashes[doc.ContentHash] = true

		if fs.IsHTML(path) {
			if err := d.extract(doc); err != nil {
				return nil, err
			}
		}
		docs = append(docs, doc)
	}

	summaries := make([]*skim.Summary, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	concurrency := d.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	g.SetLimit(concurrency)
	for i, doc := range docs {
		g.Go(func() error {
			summary, err := d.Summarizer.Summarize(gctx, doc)
			if err != nil {
				return fmt.Errorf("summarize %s: %w", doc.SourcePath, err)
			}
			summaries[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Suppression runs sequentially in input order so the first occurrence
	// of a sentence wins.
	seen := bloom.NewSeenFilter(expectedSentences, falsePositiveRate)
	for _, summary := range summaries {
		result.Suppressed += suppressSeen(summary, seen)
	}

	result.Summaries = summaries
	return &result, nil
}

// extract replaces an HTML document's content with its extracted Markdown.
// The extracted title wins over the loader's filename-based guess.
func (d *Digester) extract(doc *skim.Document) error {
	if d.Extractor == nil || d.Converter == nil {
		return skim.Errorf(skim.EINVALID, "HTML input %q requires an extractor and a converter", doc.SourcePath)
	}

	extracted, err := d.Extractor.Extract(doc.Content)
	if err != nil {
		return err
	}

	markdown, err := d.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return err
	}

	if extracted.Title != "" {
		doc.Title = extracted.Title
	}
	doc.Content = markdown
	return nil
}

// suppressSeen drops summary body lines whose canonical form was already
// emitted and records the survivors. The title and blank separator lines
// are left untouched. Returns the number of dropped lines.
func suppressSeen(summary *skim.Summary, seen *bloom.SeenFilter) int {
	lines := strings.Split(summary.Text, "\n")
	if len(lines) <= 2 {
		return 0
	}

	kept := lines[:2]
	dropped := 0
	for _, line := range lines[2:] {
		if seen.Seen(line) {
			dropped++
			continue
		}
		seen.Add(line)
		kept = append(kept, line)
	}

	if dropped > 0 {
		summary.Text = strings.Join(kept, "\n")
	}
	return dropped
}

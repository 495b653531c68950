package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/fs"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	summary, err := c.summarize(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skim.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	if c.Ranks {
		fmt.Fprintln(deps.Stdout, skim.FormatRankTable(summary.Ranks))
		fmt.Fprintln(deps.Stdout)
	}

	fmt.Fprintln(deps.Stdout, summary.Text)

	if c.Stats {
		fmt.Fprintf(deps.Stdout, "\nSummary is %d%% shorter than the original.\n", summary.Ratio)
	}

	return nil
}

// summarize builds the document from the path or stdin and summarizes it.
func (c *SummarizeCmd) summarize(deps *Dependencies) (*skim.Summary, error) {
	if c.Path == "-" {
		return c.summarizeStdin(deps)
	}

	doc, err := deps.Loader.Load(deps.Ctx, c.Path)
	if err != nil {
		return nil, err
	}

	if fs.IsHTML(c.Path) {
		if err := extractHTML(deps, doc); err != nil {
			return nil, err
		}
	}

	// A user-supplied title wins over both the filename guess and the
	// extracted HTML title.
	if c.Title != "" {
		doc.Title = c.Title
	}

	return deps.Summarizer.Summarize(deps.Ctx, doc)
}

// summarizeStdin reads the whole input and summarizes it as plain text.
func (c *SummarizeCmd) summarizeStdin(deps *Dependencies) (*skim.Summary, error) {
	data, err := io.ReadAll(deps.Stdin)
	if err != nil {
		return nil, err
	}

	doc := &skim.Document{
		Title:      c.Title,
		Content:    string(data),
		SourcePath: "stdin",
	}
	if doc.Title == "" {
		doc.Title = fs.DetectTitle("summary.txt", doc.Content)
	}

	return deps.Summarizer.Summarize(deps.Ctx, doc)
}

// extractHTML replaces an HTML document's content with extracted Markdown.
func extractHTML(deps *Dependencies, doc *skim.Document) error {
	extracted, err := deps.Extractor.Extract(doc.Content)
	if err != nil {
		return err
	}

	markdown, err := deps.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return err
	}

	if extracted.Title != "" {
		doc.Title = extracted.Title
	}
	doc.Content = markdown
	return nil
}

package skim

// ExtractResult holds the extracted content from an HTML document.
type ExtractResult struct {
	// Title is the document title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, scripts) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML documents, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// The title comes from the <title> element or the first heading.
	// The content HTML has boilerplate removed but preserves structure.
	Extract(html string) (*ExtractResult, error)
}

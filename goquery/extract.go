// Package goquery provides CSS-selector based content extraction from HTML.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/skim"
)

// Ensure Extractor implements skim.Extractor at compile time.
var _ skim.Extractor = (*Extractor)(nil)

// Extractor pulls the title and main content out of an HTML document.
// It prefers semantic containers (main, article) and strips page chrome
// before handing the content off for conversion.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// chromeSelector matches elements that carry no summarizable content.
const chromeSelector = "script, style, noscript, nav, header, footer, aside"

// Extract parses HTML and returns the document title and the main content
// subtree with chrome removed. The title comes from the <title> element,
// falling back to the first <h1>.
func (e *Extractor) Extract(html string) (*skim.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return nil, skim.Errorf(skim.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, skim.Errorf(skim.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	doc.Find(chromeSelector).Remove()

	content := doc.Find("main, article").First()
	if content.Length() == 0 {
		content = doc.Find("body").First()
	}

	contentHTML, err := goquery.OuterHtml(content)
	if err != nil {
		return nil, skim.Errorf(skim.EINTERNAL, "failed to render content HTML: %v", err)
	}
	if strings.TrimSpace(content.Text()) == "" {
		return nil, skim.Errorf(skim.EINVALID, "no content found in HTML")
	}

	return &skim.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
	}, nil
}

package skim

import (
	"context"
	"time"
)

// Document represents a text to be summarized.
type Document struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	SourcePath  string    `json:"sourcePath,omitempty"`
	ContentHash string    `json:"contentHash,omitempty"`
	LoadedAt    time.Time `json:"loadedAt,omitempty"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if d.Content == "" {
		return Errorf(EINVALID, "document content required")
	}
	return nil
}

// Loader reads a document from a local path.
type Loader interface {
	// Load reads the file at path into a Document.
	// Returns ENOTFOUND if the file does not exist.
	Load(ctx context.Context, path string) (*Document, error)
}

// Summarizer produces a summary for a document.
type Summarizer interface {
	// Summarize ranks the document's sentences and assembles its summary.
	// Returns EINVALID if the document fails validation.
	Summarize(ctx context.Context, doc *Document) (*Summary, error)
}

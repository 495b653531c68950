// Package fs provides filesystem-based document loading.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/skim"
	"github.com/google/uuid"
)

// Ensure Loader implements skim.Loader at compile time.
var _ skim.Loader = (*Loader)(nil)

// Loader reads documents from the local filesystem.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the file at path into a Document. The title comes from the
// first Markdown heading when present, otherwise from the file name.
// HTML files are loaded raw; extracting their content is the caller's job.
func (l *Loader) Load(ctx context.Context, path string) (*skim.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, skim.Errorf(skim.ENOTFOUND, "file %q not found", path)
		}
		return nil, err
	}

	content := string(data)

	return &skim.Document{
		ID:          uuid.NewString(),
		Title:       DetectTitle(path, content),
		Content:     content,
		SourcePath:  path,
		ContentHash: HashContent(content),
		LoadedAt:    time.Now(),
	}, nil
}

// headingRe matches Markdown headings H1 through H6.
var headingRe = regexp.MustCompile(`(?m)^#{1,6}\s+(.+)$`)

// DetectTitle returns the first Markdown heading in content, falling back
// to the file name without its extension.
func DetectTitle(path, content string) string {
	if m := headingRe.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// HashContent computes a hash of the content using xxhash.
func HashContent(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}

// IsHTML reports whether path has an HTML file extension.
func IsHTML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".html" || ext == ".htm"
}

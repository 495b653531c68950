package mock

import (
	"context"

	"github.com/fwojciec/skim"
)

var _ skim.Loader = (*Loader)(nil)

// Loader is a mock implementation of skim.Loader.
type Loader struct {
	LoadFn func(ctx context.Context, path string) (*skim.Document, error)
}

func (l *Loader) Load(ctx context.Context, path string) (*skim.Document, error) {
	return l.LoadFn(ctx, path)
}

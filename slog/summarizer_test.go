package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/mock"
	skimslog "github.com/fwojciec/skim/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSummarizer_Summarize(t *testing.T) {
	t.Parallel()

	t.Run("logs title, ratio and duration on success", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Summarizer{
			SummarizeFn: func(ctx context.Context, doc *skim.Document) (*skim.Summary, error) {
				return &skim.Summary{
					Title: "Cats",
					Text:  "Cats\n\nThe cat sat",
					Ranks: skim.RankTable{"Thecatsat": 99},
					Ratio: 55,
				}, nil
			},
		}

		s := skimslog.NewLoggingSummarizer(inner, logger)
		summary, err := s.Summarize(context.Background(), &skim.Document{Title: "Cats", Content: "x"})

		require.NoError(t, err)
		assert.Equal(t, "Cats", summary.Title)
		output := buf.String()
		assert.Contains(t, output, "summarize")
		assert.Contains(t, output, "title=Cats")
		assert.Contains(t, output, "ratio=55")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs and propagates failures", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Summarizer{
			SummarizeFn: func(ctx context.Context, doc *skim.Document) (*skim.Summary, error) {
				return nil, skim.Errorf(skim.EINVALID, "document title required")
			},
		}

		s := skimslog.NewLoggingSummarizer(inner, logger)
		_, err := s.Summarize(context.Background(), &skim.Document{})

		require.Error(t, err)
		assert.Equal(t, skim.EINVALID, skim.ErrorCode(err))
		output := buf.String()
		assert.Contains(t, output, "summarize failed")
		assert.Contains(t, output, "document title required")
	})
}

func TestLoggingLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("logs path and size on success", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Loader{
			LoadFn: func(ctx context.Context, path string) (*skim.Document, error) {
				return &skim.Document{Title: "notes", Content: "0123456789"}, nil
			},
		}

		l := skimslog.NewLoggingLoader(inner, logger)
		doc, err := l.Load(context.Background(), "notes.txt")

		require.NoError(t, err)
		assert.Equal(t, "notes", doc.Title)
		output := buf.String()
		assert.Contains(t, output, "path=notes.txt")
		assert.Contains(t, output, "bytes=10")
	})

	t.Run("logs and propagates failures", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Loader{
			LoadFn: func(ctx context.Context, path string) (*skim.Document, error) {
				return nil, skim.Errorf(skim.ENOTFOUND, "file %q not found", path)
			},
		}

		l := skimslog.NewLoggingLoader(inner, logger)
		_, err := l.Load(context.Background(), "missing.txt")

		require.Error(t, err)
		assert.Equal(t, skim.ENOTFOUND, skim.ErrorCode(err))
		assert.Contains(t, buf.String(), "load failed")
	})
}

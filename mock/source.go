package mock

import (
	"context"

	"github.com/fwojciec/corpus"
)

// Compile-time interface verification.
var (
	_ corpus.Source      = (*Source)(nil)
	_ corpus.IndexWriter = (*IndexWriter)(nil)
	_ corpus.TextCleaner = (*TextCleaner)(nil)
)

// Source is a mock implementation of corpus.Source.
type Source struct {
	NameFn  func() string
	FetchFn func(ctx context.Context) ([]*corpus.Item, error)
}

func (s *Source) Name() string {
	return s.NameFn()
}

func (s *Source) Fetch(ctx context.Context) ([]*corpus.Item, error) {
	return s.FetchFn(ctx)
}

// IndexWriter is a mock implementation of corpus.IndexWriter.
type IndexWriter struct {
	WriteIndexFn func(ctx context.Context, items []*corpus.Item) error
}

func (w *IndexWriter) WriteIndex(ctx context.Context, items []*corpus.Item) error {
	return w.WriteIndexFn(ctx, items)
}

// TextCleaner is a mock implementation of corpus.TextCleaner.
type TextCleaner struct {
	CleanFn func(s string) string
}

func (c *TextCleaner) Clean(s string) string {
	return c.CleanFn(s)
}

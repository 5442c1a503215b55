package corpus

import (
	"context"
	"net/url"
)

// Source fetches every configured record from one upstream provider and
// returns them as normalized items.
// Implementations hide pagination, field-shape probing, and pacing.
type Source interface {
	// Name is the short label used in the run summary (e.g. "Quran").
	Name() string

	// Fetch pages through the provider and returns items in upstream order.
	// Any upstream failure aborts the fetch; no partial result is returned.
	Fetch(ctx context.Context) ([]*Item, error)
}

// APIClient fetches JSON documents from one upstream REST API.
type APIClient interface {
	// GetJSON requests path relative to the API base with the given query
	// parameters and decodes the JSON response into v.
	GetJSON(ctx context.Context, path string, params url.Values, v any) error
}

// IndexWriter persists the items of a completed run.
// Each call fully replaces whatever a previous run wrote.
type IndexWriter interface {
	WriteIndex(ctx context.Context, items []*Item) error
}

// TextCleaner normalizes upstream text before truncation.
type TextCleaner interface {
	// Clean returns the plain-text form of s.
	Clean(s string) string
}

// Ensure EmptySource implements Source at compile time.
var _ Source = EmptySource("")

// EmptySource is a Source that contributes no items. It stands in for a
// provider whose configuration section is absent so the summary still
// reports it.
type EmptySource string

// Name returns the source label.
func (s EmptySource) Name() string { return string(s) }

// Fetch returns no items.
func (s EmptySource) Fetch(ctx context.Context) ([]*Item, error) { return nil, nil }

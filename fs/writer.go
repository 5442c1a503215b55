// Package fs provides file-based storage for the built corpus.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/corpus"
)

// File names written to the data directory.
const (
	FeedFile     = "feed.json"
	IndexFile    = "search_index.json"
	ManifestFile = "manifest.json"
)

// Document is the top-level shape of both feed.json and search_index.json.
type Document[T any] struct {
	Items []T `json:"items"`
}

// Encode marshals v as indented JSON with non-ASCII text and HTML
// characters kept literal.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Ensure Writer implements corpus.IndexWriter at compile time.
var _ corpus.IndexWriter = (*Writer)(nil)

// Writer writes the feed, search index and manifest to a data directory.
// Files are overwritten in place; a failure mid-write can leave a
// truncated file behind.
type Writer struct {
	dataDir string
}

// NewWriter creates a new Writer that writes to the given data directory.
func NewWriter(dataDir string) *Writer {
	return &Writer{dataDir: dataDir}
}

// WriteIndex writes feed.json, search_index.json and manifest.json.
func (w *Writer) WriteIndex(ctx context.Context, items []*corpus.Item) error {
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return err
		}
	}
	if items == nil {
		items = []*corpus.Item{}
	}

	if err := os.MkdirAll(w.dataDir, 0755); err != nil {
		return err
	}

	feed, err := Encode(Document[*corpus.Card]{Items: corpus.Cards(items)})
	if err != nil {
		return err
	}
	index, err := Encode(Document[*corpus.Item]{Items: items})
	if err != nil {
		return err
	}

	if err := w.write(FeedFile, feed); err != nil {
		return err
	}
	if err := w.write(IndexFile, index); err != nil {
		return err
	}

	manifest, err := Encode(NewManifest(
		NewAsset("feed", FeedFile, feed),
		NewAsset("search-index", IndexFile, index),
	))
	if err != nil {
		return err
	}
	return w.write(ManifestFile, manifest)
}

func (w *Writer) write(name string, data []byte) error {
	return os.WriteFile(filepath.Join(w.dataDir, name), data, 0644)
}

package fs

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/corpus"
)

// Ensure IndexReader implements corpus.ItemService at compile time.
var _ corpus.ItemService = (*IndexReader)(nil)

// IndexReader serves queries from a search_index.json written by Writer.
// The file is read on every call.
type IndexReader struct {
	dataDir string
}

// NewIndexReader creates a reader for the index in dataDir.
func NewIndexReader(dataDir string) *IndexReader {
	return &IndexReader{dataDir: dataDir}
}

// FindItems loads the index and applies the filter in memory.
// Returns ENOTFOUND if the index has not been built.
func (r *IndexReader) FindItems(ctx context.Context, filter corpus.ItemFilter) ([]*corpus.Item, error) {
	path := filepath.Join(r.dataDir, IndexFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, corpus.Errorf(corpus.ENOTFOUND, "index %s not found; run 'corpus build' first", path)
	}
	if err != nil {
		return nil, err
	}

	var doc Document[*corpus.Item]
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, corpus.Errorf(corpus.EINVALID, "invalid index %s: %v", path, err)
	}

	return corpus.RankItems(doc.Items, filter), nil
}

package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/corpus"
	"github.com/fwojciec/corpus/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexReader_FindItems(t *testing.T) {
	t.Parallel()

	t.Run("reads items written by Writer", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, fs.NewWriter(dir).WriteIndex(context.Background(), testItems()))

		items, err := fs.NewIndexReader(dir).FindItems(context.Background(), corpus.ItemFilter{})
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Qur'an 1:1", items[0].Title)
	})

	t.Run("applies query and tag filter", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, fs.NewWriter(dir).WriteIndex(context.Background(), testItems()))

		tag := "Hadith"
		items, err := fs.NewIndexReader(dir).FindItems(context.Background(), corpus.ItemFilter{
			Query: "intentions",
			Tag:   &tag,
		})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Bukhari 1", items[0].Title)
	})

	t.Run("returns ENOTFOUND when the index is missing", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewIndexReader(t.TempDir()).FindItems(context.Background(), corpus.ItemFilter{})

		assert.Equal(t, corpus.ENOTFOUND, corpus.ErrorCode(err))
	})

	t.Run("returns EINVALID for a corrupt index", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, fs.IndexFile), []byte("{"), 0644))

		_, err := fs.NewIndexReader(dir).FindItems(context.Background(), corpus.ItemFilter{})

		assert.Equal(t, corpus.EINVALID, corpus.ErrorCode(err))
	})
}

package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/corpus"
	"github.com/fwojciec/corpus/mock"
	corpusslog "github.com/fwojciec/corpus/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSource_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs source name, count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		want := []*corpus.Item{{ID: "a"}, {ID: "b"}}
		inner := &mock.Source{
			NameFn: func() string { return "Quran" },
			FetchFn: func(ctx context.Context) ([]*corpus.Item, error) {
				return want, nil
			},
		}

		items, err := corpusslog.NewLoggingSource(inner, logger).Fetch(context.Background())

		require.NoError(t, err)
		assert.Equal(t, want, items)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "source fetch")
		assert.Contains(t, output, "source=Quran")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs errors at error level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Source{
			NameFn: func() string { return "Sunnah" },
			FetchFn: func(ctx context.Context) ([]*corpus.Item, error) {
				return nil, errors.New("upstream down")
			},
		}

		_, err := corpusslog.NewLoggingSource(inner, logger).Fetch(context.Background())

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "count=0")
		assert.Contains(t, output, "upstream down")
	})
}

func TestLoggingSource_Name(t *testing.T) {
	t.Parallel()

	inner := &mock.Source{NameFn: func() string { return "Quran" }}

	src := corpusslog.NewLoggingSource(inner, slog.New(slog.DiscardHandler))

	assert.Equal(t, "Quran", src.Name())
}

func TestLoggingIndexWriter_WriteIndex(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	var got []*corpus.Item
	inner := &mock.IndexWriter{
		WriteIndexFn: func(ctx context.Context, items []*corpus.Item) error {
			got = items
			return nil
		},
	}
	items := []*corpus.Item{{ID: "a"}}

	err := corpusslog.NewLoggingIndexWriter(inner, "json", logger).WriteIndex(context.Background(), items)

	require.NoError(t, err)
	assert.Equal(t, items, got)
	output := buf.String()
	assert.Contains(t, output, "index write")
	assert.Contains(t, output, "output=json")
	assert.Contains(t, output, "count=1")
}

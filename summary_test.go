package corpus_test

import (
	"context"
	"testing"

	"github.com/fwojciec/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary_String(t *testing.T) {
	t.Parallel()

	s := &corpus.Summary{Sources: []corpus.SourceCount{
		{Name: "Quran", Count: 7},
		{Name: "Sunnah", Count: 5},
	}}

	assert.Equal(t, "Quran: 7 | Sunnah: 5 | Total: 12", s.String())
	assert.Equal(t, 12, s.Total())
	assert.Equal(t, 5, s.Count("Sunnah"))
	assert.Equal(t, 0, s.Count("Tafsir"))
}

func TestSummary_Empty(t *testing.T) {
	t.Parallel()

	s := &corpus.Summary{}

	assert.Equal(t, "Total: 0", s.String())
}

func TestEmptySource(t *testing.T) {
	t.Parallel()

	src := corpus.EmptySource("Sunnah")

	items, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, "Sunnah", src.Name())
}

func TestSunnahConfig_Limit(t *testing.T) {
	t.Parallel()

	limit := func(n int) *int { return &n }

	assert.Equal(t, corpus.DefaultPerCollectionLimit, (&corpus.SunnahConfig{}).Limit())
	assert.Equal(t, 0, (&corpus.SunnahConfig{PerCollectionLimit: limit(0)}).Limit())
	assert.Equal(t, -1, (&corpus.SunnahConfig{PerCollectionLimit: limit(-1)}).Limit())
	assert.Equal(t, 5, (&corpus.SunnahConfig{PerCollectionLimit: limit(5)}).Limit())
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, corpus.EINVALID, corpus.ErrorCode((&corpus.QuranConfig{}).Validate()))
	assert.Equal(t, corpus.EINVALID, corpus.ErrorCode((&corpus.SunnahConfig{}).Validate()))
	assert.NoError(t, (&corpus.QuranConfig{Base: "https://api.quran.com/api/v4"}).Validate())
	assert.NoError(t, (&corpus.SunnahConfig{Base: "https://api.sunnah.com/v1"}).Validate())
}

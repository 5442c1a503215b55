package corpus_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/fwojciec/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		want string
	}{
		{key: "q:1:1", want: "02a0ff59aa35ee36"},
		{key: "q:1:2", want: "12354276ea5ff28f"},
		{key: "s:bukhari:1", want: "9efcb43b5ab12e76"},
		{key: "s:bukhari:None", want: "4e4ec685a47e7914"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()

			got := corpus.HashID(tt.key)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, corpus.HashID(tt.key), "must be deterministic")
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "shorter than limit", in: "abc", n: 5, want: "abc"},
		{name: "exact limit", in: "abcde", n: 5, want: "abcde"},
		{name: "longer than limit", in: "abcdef", n: 3, want: "abc"},
		{name: "counts runes not bytes", in: "بسم الله", n: 3, want: "بسم"},
		{name: "zero limit", in: "abc", n: 0, want: ""},
		{name: "empty input", in: "", n: 10, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, corpus.Truncate(tt.in, tt.n))
		})
	}
}

func TestCapitalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Bukhari", corpus.Capitalize("bukhari"))
	assert.Equal(t, "Abudawud", corpus.Capitalize("abuDawud"))
	assert.Equal(t, "", corpus.Capitalize(""))
}

func TestNewItem(t *testing.T) {
	t.Parallel()

	t.Run("derives id, lang and truncations", func(t *testing.T) {
		t.Parallel()

		item := corpus.NewItem(corpus.ItemInput{
			Key:    "q:1:1",
			Source: "Quran.com",
			URL:    "https://quran.com/1/1",
			Title:  "Qur'an 1:1",
			Tags:   []string{"Quran", "Surah 1"},
			Text:   "In the name of Allah",
		})

		assert.Equal(t, corpus.HashID("q:1:1"), item.ID)
		assert.Equal(t, corpus.LangArabicEnglish, item.Lang)
		assert.Nil(t, item.Published)
		assert.Equal(t, "In the name of Allah", item.Excerpt)
		assert.Equal(t, "In the name of Allah", item.Content)
		require.NoError(t, item.Validate())
	})

	t.Run("excerpt is a prefix of content which is a prefix of text", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("الحمد لله رب العالمين ", 1000)
		item := corpus.NewItem(corpus.ItemInput{Key: "k", Source: "s", URL: "u", Text: text})

		assert.Len(t, []rune(item.Excerpt), corpus.ExcerptLen)
		assert.Len(t, []rune(item.Content), corpus.ContentLen)
		assert.True(t, strings.HasPrefix(item.Content, item.Excerpt))
		assert.True(t, strings.HasPrefix(text, item.Content))
	})
}

func TestItem_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires id", func(t *testing.T) {
		t.Parallel()
		err := (&corpus.Item{Source: "s", URL: "u"}).Validate()
		assert.Equal(t, corpus.EINVALID, corpus.ErrorCode(err))
	})

	t.Run("requires source", func(t *testing.T) {
		t.Parallel()
		err := (&corpus.Item{ID: "i", URL: "u"}).Validate()
		assert.Equal(t, corpus.EINVALID, corpus.ErrorCode(err))
	})

	t.Run("requires url", func(t *testing.T) {
		t.Parallel()
		err := (&corpus.Item{ID: "i", Source: "s"}).Validate()
		assert.Equal(t, corpus.EINVALID, corpus.ErrorCode(err))
	})
}

func TestItem_Card(t *testing.T) {
	t.Parallel()

	item := corpus.NewItem(corpus.ItemInput{
		Key:    "s:bukhari:1",
		Source: "Sunnah.com – Bukhari",
		URL:    "https://sunnah.com/bukhari:1",
		Title:  "Bukhari 1",
		Tags:   []string{"Hadith", "bukhari"},
		Text:   "Actions are by intentions",
	})

	card := item.Card()

	assert.Equal(t, item.ID, card.ID)
	assert.Equal(t, item.Source, card.Source)
	assert.Equal(t, item.URL, card.URL)
	assert.Equal(t, item.Title, card.Title)
	assert.Equal(t, item.Published, card.Published)
	assert.Equal(t, item.Excerpt, card.Excerpt)

	data, err := json.Marshal(card)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"id", "source", "url", "title", "published", "excerpt"}, keys)
	assert.Nil(t, fields["published"])
}

func TestCards(t *testing.T) {
	t.Parallel()

	items := []*corpus.Item{
		{ID: "a", Title: "A"},
		{ID: "b", Title: "B"},
	}

	cards := corpus.Cards(items)

	require.Len(t, cards, 2)
	assert.Equal(t, "a", cards[0].ID)
	assert.Equal(t, "b", cards[1].ID)
	assert.Empty(t, corpus.Cards(nil))
}

func TestItem_HasTag(t *testing.T) {
	t.Parallel()

	item := &corpus.Item{Tags: []string{"Quran", "Surah 2"}}

	assert.True(t, item.HasTag("Surah 2"))
	assert.False(t, item.HasTag("Hadith"))
}

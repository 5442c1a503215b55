// Package quran implements corpus.Source for the Quran.com v4 API.
package quran

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/fwojciec/corpus"
)

// Source labels and defaults.
const (
	// Name is the label used in the run summary.
	Name = "Quran"

	// Label is the human-readable provider written to each item.
	Label = "Quran.com"

	// PerPage is the number of verses requested per page.
	PerPage = 50

	// WebBase is the public site items link to.
	WebBase = "https://quran.com"
)

// Ensure Source implements corpus.Source at compile time.
var _ corpus.Source = (*Source)(nil)

// Source pages through verses of the configured chapters and attaches the
// configured translations to each verse.
type Source struct {
	client  corpus.APIClient
	config  *corpus.QuranConfig
	cleaner corpus.TextCleaner
}

// Option configures a Source.
type Option func(*Source)

// WithCleaner sets a cleaner applied to the combined translation text.
func WithCleaner(c corpus.TextCleaner) Option {
	return func(s *Source) {
		s.cleaner = c
	}
}

// NewSource creates a Source reading from client with the given selection.
func NewSource(client corpus.APIClient, cfg *corpus.QuranConfig, opts ...Option) *Source {
	s := &Source{
		client: client,
		config: cfg,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the summary label.
func (s *Source) Name() string {
	return Name
}

type versesResponse struct {
	Verses []verse `json:"verses"`
}

type verse struct {
	ID          int    `json:"id"`
	VerseKey    string `json:"verse_key"`
	VerseNumber *int   `json:"verse_number"`
}

type translationsResponse struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

// Fetch returns one item per verse of every configured chapter.
// Each chapter is paged until the API returns an empty page.
// A nil selection contributes no items.
func (s *Source) Fetch(ctx context.Context) ([]*corpus.Item, error) {
	if s.config == nil {
		return nil, nil
	}
	if err := s.config.Validate(); err != nil {
		return nil, err
	}

	var items []*corpus.Item
	for _, chapter := range s.config.Chapters {
		chapterItems, err := s.fetchChapter(ctx, chapter)
		if err != nil {
			return nil, err
		}
		items = append(items, chapterItems...)
	}
	return items, nil
}

func (s *Source) fetchChapter(ctx context.Context, chapter int) ([]*corpus.Item, error) {
	var items []*corpus.Item
	for page := 1; ; page++ {
		params := url.Values{
			"language": {"en"},
			"words":    {"false"},
			"page":     {strconv.Itoa(page)},
			"per_page": {strconv.Itoa(PerPage)},
		}

		var resp versesResponse
		path := fmt.Sprintf("verses/by_chapter/%d", chapter)
		if err := s.client.GetJSON(ctx, path, params, &resp); err != nil {
			return nil, fmt.Errorf("chapter %d page %d: %w", chapter, page, err)
		}
		if len(resp.Verses) == 0 {
			return items, nil
		}

		for _, v := range resp.Verses {
			item, err := s.buildItem(ctx, chapter, v)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	}
}

func (s *Source) buildItem(ctx context.Context, chapter int, v verse) (*corpus.Item, error) {
	key := v.VerseKey
	if key == "" {
		num := "None"
		if v.VerseNumber != nil {
			num = strconv.Itoa(*v.VerseNumber)
		}
		key = fmt.Sprintf("%d:%s", chapter, num)
	}

	var texts []string
	for _, tr := range s.config.Translations {
		var resp translationsResponse
		path := fmt.Sprintf("verses/%d/translations", v.ID)
		params := url.Values{"translations": {strconv.Itoa(tr)}}
		if err := s.client.GetJSON(ctx, path, params, &resp); err != nil {
			return nil, fmt.Errorf("verse %s translation %d: %w", key, tr, err)
		}
		for _, row := range resp.Translations {
			if row.Text != "" {
				texts = append(texts, row.Text)
			}
		}
	}

	text := strings.TrimSpace(strings.Join(texts, " "))
	if s.cleaner != nil {
		text = s.cleaner.Clean(text)
	}

	return corpus.NewItem(corpus.ItemInput{
		Key:    "q:" + key,
		Source: Label,
		URL:    fmt.Sprintf("%s/%d/%s", WebBase, chapter, verseNumber(key)),
		Title:  "Qur'an " + key,
		Tags:   []string{"Quran", fmt.Sprintf("Surah %d", chapter)},
		Text:   text,
	}), nil
}

// verseNumber returns the part of a verse key after the last colon.
func verseNumber(key string) string {
	if i := strings.LastIndex(key, ":"); i >= 0 {
		return key[i+1:]
	}
	return key
}

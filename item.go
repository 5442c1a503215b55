package corpus

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

// Text budgets applied to the combined upstream text of every item.
const (
	ExcerptLen = 300
	ContentLen = 12000
)

// LangArabicEnglish marks items that carry Arabic and English text.
const LangArabicEnglish = "ar+en"

// Item is a fully normalized record destined for the search index.
type Item struct {
	ID        string   `json:"id"`
	Source    string   `json:"source"`
	URL       string   `json:"url"`
	Title     string   `json:"title"`
	Published *string  `json:"published"`
	Lang      string   `json:"lang"`
	Tags      []string `json:"tags"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"content"`
}

// Validate returns an error if the item contains invalid fields.
func (i *Item) Validate() error {
	if i.ID == "" {
		return Errorf(EINVALID, "item ID required")
	}
	if i.Source == "" {
		return Errorf(EINVALID, "item source required")
	}
	if i.URL == "" {
		return Errorf(EINVALID, "item URL required")
	}
	return nil
}

// HasTag reports whether the item carries the given tag.
func (i *Item) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Card returns the feed projection of the item.
func (i *Item) Card() *Card {
	return &Card{
		ID:        i.ID,
		Source:    i.Source,
		URL:       i.URL,
		Title:     i.Title,
		Published: i.Published,
		Excerpt:   i.Excerpt,
	}
}

// Card is the lightweight feed projection of an Item.
type Card struct {
	ID        string  `json:"id"`
	Source    string  `json:"source"`
	URL       string  `json:"url"`
	Title     string  `json:"title"`
	Published *string `json:"published"`
	Excerpt   string  `json:"excerpt"`
}

// Cards projects items to cards, preserving order.
func Cards(items []*Item) []*Card {
	cards := make([]*Card, 0, len(items))
	for _, it := range items {
		cards = append(cards, it.Card())
	}
	return cards
}

// ItemInput holds the provider-specific values an adapter derives for one
// upstream record. NewItem turns it into an Item.
type ItemInput struct {
	// Key is the provider-qualified natural key, e.g. "q:1:1" or "s:bukhari:1".
	Key    string
	Source string
	URL    string
	Title  string
	Tags   []string
	// Text is the combined upstream text before truncation.
	Text string
}

// NewItem builds an Item from adapter input, deriving the hashed ID and the
// excerpt and content truncations.
func NewItem(in ItemInput) *Item {
	return &Item{
		ID:      HashID(in.Key),
		Source:  in.Source,
		URL:     in.URL,
		Title:   in.Title,
		Lang:    LangArabicEnglish,
		Tags:    in.Tags,
		Excerpt: Truncate(in.Text, ExcerptLen),
		Content: Truncate(in.Text, ContentLen),
	}
}

// HashID returns the first 16 hex characters of the SHA-256 of key.
func HashID(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])[:16]
}

// Truncate returns the first n characters of s. Characters are runes, so
// multi-byte Arabic text is never split mid-character.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// Capitalize upper-cases the first letter of s and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToTitle(r[0])
	return string(r)
}

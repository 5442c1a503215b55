package corpus

import (
	"context"
	"regexp"
	"sort"
	"strings"
)

// ItemService provides read access to a built index.
type ItemService interface {
	// FindItems returns items matching the filter.
	// With a query, items are ordered by relevance; otherwise index order is kept.
	FindItems(ctx context.Context, filter ItemFilter) ([]*Item, error)
}

// ItemFilter represents a filter for FindItems.
type ItemFilter struct {
	// Query is free text matched by word prefix against title, tags,
	// source and content.
	Query string

	Source *string
	Tag    *string

	Offset int
	Limit  int
}

// Match reports whether the item passes the source and tag constraints.
// The query is not considered.
func (f *ItemFilter) Match(item *Item) bool {
	if f.Source != nil && item.Source != *f.Source {
		return false
	}
	if f.Tag != nil && !item.HasTag(*f.Tag) {
		return false
	}
	return true
}

// Field boosts used when ranking query matches.
const (
	titleBoost   = 6
	tagsBoost    = 3
	sourceBoost  = 1
	contentBoost = 1
)

var tokenRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Tokenize lower-cases text and splits it into letter/number runs.
func Tokenize(text string) []string {
	return tokenRe.FindAllString(strings.ToLower(text), -1)
}

// Score returns the relevance of item for the query tokens. A token matches
// any field word it is a prefix of. Zero means no match.
func Score(item *Item, tokens []string) int {
	if len(tokens) == 0 {
		return 0
	}
	fields := []struct {
		words []string
		boost int
	}{
		{Tokenize(item.Title), titleBoost},
		{Tokenize(strings.Join(item.Tags, " ")), tagsBoost},
		{Tokenize(item.Source), sourceBoost},
		{Tokenize(item.Content), contentBoost},
	}

	score := 0
	for _, tok := range tokens {
		for _, f := range fields {
			for _, w := range f.words {
				if strings.HasPrefix(w, tok) {
					score += f.boost
				}
			}
		}
	}
	return score
}

// RankItems applies the filter to items in memory. Items keep their index
// order when the query is empty; otherwise unmatched items are dropped and
// the rest are sorted by descending score, ties in index order.
func RankItems(items []*Item, filter ItemFilter) []*Item {
	tokens := Tokenize(filter.Query)

	type scored struct {
		item  *Item
		score int
	}
	var hits []scored
	for _, it := range items {
		if !filter.Match(it) {
			continue
		}
		if len(tokens) == 0 {
			hits = append(hits, scored{item: it})
			continue
		}
		if s := Score(it, tokens); s > 0 {
			hits = append(hits, scored{item: it, score: s})
		}
	}

	if len(tokens) > 0 {
		sort.SliceStable(hits, func(i, j int) bool {
			return hits[i].score > hits[j].score
		})
	}

	if filter.Offset > 0 {
		if filter.Offset >= len(hits) {
			return []*Item{}
		}
		hits = hits[filter.Offset:]
	}
	if filter.Limit > 0 && len(hits) > filter.Limit {
		hits = hits[:filter.Limit]
	}

	result := make([]*Item, 0, len(hits))
	for _, h := range hits {
		result = append(result, h.item)
	}
	return result
}

// Snippet returns a short window of text around the first occurrence of the
// query's first word, with ellipses marking cut edges. Without a match it
// returns the first 160 characters.
func Snippet(text, query string) string {
	if text == "" {
		return ""
	}
	runes := []rune(text)
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return string(runes[:min(len(runes), 160)])
	}

	needle := []rune(strings.ToLower(fields[0]))
	lower := []rune(strings.ToLower(text))
	idx := indexRunes(lower, needle)
	if idx == -1 || len(lower) != len(runes) {
		return string(runes[:min(len(runes), 160)])
	}

	start := max(0, idx-40)
	end := min(len(runes), idx+120)

	var b strings.Builder
	if start > 0 {
		b.WriteString("…")
	}
	b.WriteString(string(runes[start:end]))
	if end < len(runes) {
		b.WriteString("…")
	}
	return b.String()
}

func indexRunes(haystack, needle []rune) int {
	if len(needle) == 0 {
		return 0
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

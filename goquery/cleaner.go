// Package goquery provides an HTML-to-text corpus.TextCleaner built on goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/corpus"
)

// Ensure Cleaner implements corpus.TextCleaner at compile time.
var _ corpus.TextCleaner = (*Cleaner)(nil)

// blockSelector lists elements whose boundaries separate words.
const blockSelector = "p, div, li, blockquote, h1, h2, h3, h4, h5, h6, tr"

// Cleaner reduces upstream markup to plain text. Footnote markers
// (<sup>) are dropped, line breaks and block boundaries become spaces, and
// runs of whitespace collapse to one space.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean returns the text content of s. Input without markup is returned
// unchanged.
func (c *Cleaner) Clean(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}

	doc.Find("sup, script, style").Remove()
	doc.Find("br").ReplaceWithHtml(" ")
	doc.Find(blockSelector).AppendHtml(" ")

	return strings.Join(strings.Fields(doc.Text()), " ")
}

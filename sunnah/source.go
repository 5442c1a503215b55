// Package sunnah implements corpus.Source for the Sunnah.com v1 API.
package sunnah

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/corpus"
	"golang.org/x/time/rate"
)

// Source labels and defaults.
const (
	// Name is the label used in the run summary.
	Name = "Sunnah"

	// APIKeyHeader carries the Sunnah.com access credential.
	APIKeyHeader = "X-API-Key"

	// APIKeyEnv is the environment variable holding the credential.
	APIKeyEnv = "SUNNAH_API_KEY"

	// WebBase is the public site items link to.
	WebBase = "https://sunnah.com"

	// DefaultPageInterval is the pause between successive page requests.
	DefaultPageInterval = 250 * time.Millisecond

	// missingNumber stands in for an absent hadith number in natural keys.
	missingNumber = "None"
)

// Ensure Source implements corpus.Source at compile time.
var _ corpus.Source = (*Source)(nil)

// Source pages through the hadiths of the configured collections.
// Without an API key it logs a warning and contributes no items.
type Source struct {
	client   corpus.APIClient
	config   *corpus.SunnahConfig
	apiKey   string
	cleaner  corpus.TextCleaner
	logger   *slog.Logger
	interval time.Duration
}

// Option configures a Source.
type Option func(*Source)

// WithCleaner sets a cleaner applied to the combined hadith text.
func WithCleaner(c corpus.TextCleaner) Option {
	return func(s *Source) {
		s.cleaner = c
	}
}

// WithLogger sets the logger used for the missing-credential warning.
func WithLogger(l *slog.Logger) Option {
	return func(s *Source) {
		s.logger = l
	}
}

// WithPageInterval sets the pause between page requests.
// Defaults to DefaultPageInterval.
func WithPageInterval(d time.Duration) Option {
	return func(s *Source) {
		s.interval = d
	}
}

// NewSource creates a Source. The client is expected to send apiKey in the
// APIKeyHeader; apiKey is passed separately so an empty credential can skip
// the provider.
func NewSource(client corpus.APIClient, cfg *corpus.SunnahConfig, apiKey string, opts ...Option) *Source {
	s := &Source{
		client:   client,
		config:   cfg,
		apiKey:   apiKey,
		logger:   slog.Default(),
		interval: DefaultPageInterval,
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

// Fetch returns up to the per-collection limit of hadiths for every
// configured collection. A nil selection contributes no items.
func (s *Source) Fetch(ctx context.Context) ([]*corpus.Item, error) {
	if s.config == nil {
		return nil, nil
	}
	if s.apiKey == "" {
		s.logger.Warn(APIKeyEnv + " not set; skipping Sunnah.com API")
		return nil, nil
	}
	if err := s.config.Validate(); err != nil {
		return nil, err
	}

	var items []*corpus.Item
	for _, coll := range s.config.Collections {
		collItems, err := s.fetchCollection(ctx, coll, s.config.Limit())
		if err != nil {
			return nil, err
		}
		items = append(items, collItems...)
	}
	return items, nil
}

func (s *Source) fetchCollection(ctx context.Context, coll string, limit int) ([]*corpus.Item, error) {
	var items []*corpus.Item
	for page := 1; ; page++ {
		if page > 1 {
			if err := s.pause(ctx); err != nil {
				return nil, err
			}
		}

		var resp pageResponse
		path := fmt.Sprintf("collections/%s/hadiths", url.PathEscape(coll))
		params := url.Values{"page": {strconv.Itoa(page)}}
		if err := s.client.GetJSON(ctx, path, params, &resp); err != nil {
			return nil, fmt.Errorf("collection %s page %d: %w", coll, page, err)
		}

		records := resp.records()
		if len(records) == 0 {
			return items, nil
		}

		for _, rec := range records {
			items = append(items, s.buildItem(coll, rec))
			if len(items) >= limit {
				return items, nil
			}
		}
	}
}

// pause blocks for one page interval starting now, after the previous
// response has been read. The limiter starts drained so the interval is
// never shortened by time spent waiting on upstream.
func (s *Source) pause(ctx context.Context) error {
	pacer := rate.NewLimiter(rate.Every(s.interval), 1)
	pacer.Allow()
	return pacer.Wait(ctx)
}

func (s *Source) buildItem(coll string, rec record) *corpus.Item {
	num, keyNum := rec.number()
	en, ar := rec.english(), rec.arabic()
	text := strings.TrimSpace(en + " " + ar)
	if s.cleaner != nil {
		text = s.cleaner.Clean(text)
	}

	name := corpus.Capitalize(coll)
	title, link := name, WebBase+"/"+coll
	if num != "" {
		title = name + " " + num
		link = WebBase + "/" + coll + ":" + num
	}

	return corpus.NewItem(corpus.ItemInput{
		Key:    "s:" + coll + ":" + keyNum,
		Source: "Sunnah.com – " + name,
		URL:    link,
		Title:  title,
		Tags:   []string{"Hadith", coll},
		Text:   text,
	})
}

// pageResponse accepts both envelope shapes the API has used.
type pageResponse struct {
	Data    []record `json:"data"`
	Hadiths []record `json:"hadiths"`
}

func (p *pageResponse) records() []record {
	if len(p.Data) > 0 {
		return p.Data
	}
	return p.Hadiths
}

// record is one hadith. Field names vary between API versions, so every
// known spelling is decoded and the first non-empty one wins.
type record struct {
	HadithNumber  json.RawMessage `json:"hadithNumber"`
	Hadithnumber  json.RawMessage `json:"hadithnumber"`
	HadithNo      json.RawMessage `json:"hadith_no"`
	English       string          `json:"english"`
	TextEn        string          `json:"text_en"`
	HadithEnglish string          `json:"hadithEnglish"`
	Arabic        string          `json:"arabic"`
	TextAr        string          `json:"text_ar"`
	HadithArabic  string          `json:"hadithArabic"`
	Hadith        []struct {
		Lang string `json:"lang"`
		Body string `json:"body"`
	} `json:"hadith"`
}

// number returns the hadith number used in titles and links, and its
// rendering in the natural key. When no field holds a usable number the
// key falls back to the last field as written: "" for an empty string,
// "0" for zero, and the missing-number placeholder when absent or null.
func (r *record) number() (num, key string) {
	for _, raw := range []json.RawMessage{r.HadithNumber, r.Hadithnumber, r.HadithNo} {
		if v := scalarString(raw); v != "" {
			return v, v
		}
	}
	return "", keyString(r.HadithNo)
}

func (r *record) english() string {
	return strings.TrimSpace(firstNonEmpty(r.English, r.TextEn, r.HadithEnglish, r.body("en")))
}

func (r *record) arabic() string {
	return strings.TrimSpace(firstNonEmpty(r.Arabic, r.TextAr, r.HadithArabic, r.body("ar")))
}

// body returns the text of the nested hadith entry in the given language.
func (r *record) body(lang string) string {
	for _, h := range r.Hadith {
		if h.Lang == lang {
			return h.Body
		}
	}
	return ""
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// keyString renders a falsy JSON scalar the way it appears in keys.
func keyString(raw json.RawMessage) string {
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if len(raw) == 0 || dec.Decode(&v) != nil {
		return missingNumber
	}
	switch v := v.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		if v {
			return "True"
		}
		return "False"
	default:
		return missingNumber
	}
}

// scalarString renders a JSON string or number as text. Null, zero, empty
// strings and other kinds yield "".
func scalarString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if f, err := n.Float64(); err == nil && f == 0 {
			return ""
		}
		return n.String()
	}
	return ""
}

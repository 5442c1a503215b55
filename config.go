package corpus

// DefaultPerCollectionLimit caps hadiths per collection when the config
// does not set a limit.
const DefaultPerCollectionLimit = 200

// Config is the declarative source list read from sources.yml.
// A nil section means the corresponding provider is skipped; an empty
// section is treated the same way when parsed.
type Config struct {
	Quran  *QuranConfig  `yaml:"quran_api"`
	Sunnah *SunnahConfig `yaml:"sunnah_api"`

	// StripHTML reduces upstream markup (footnote tags, paragraphs) to
	// plain text before items are built.
	StripHTML bool `yaml:"strip_html"`
}

// QuranConfig selects chapters and translations from the Quran.com API.
type QuranConfig struct {
	Base         string `yaml:"base"`
	Chapters     []int  `yaml:"chapters"`
	Translations []int  `yaml:"translations"`
}

// IsZero reports whether the section sets no fields, as with `quran_api: {}`.
func (c *QuranConfig) IsZero() bool {
	return c.Base == "" && len(c.Chapters) == 0 && len(c.Translations) == 0
}

// Validate returns an error if the section cannot be used to fetch.
func (c *QuranConfig) Validate() error {
	if c.Base == "" {
		return Errorf(EINVALID, "quran_api.base required")
	}
	return nil
}

// SunnahConfig selects collections from the Sunnah.com API.
type SunnahConfig struct {
	Base               string   `yaml:"base"`
	Collections        []string `yaml:"collections"`
	PerCollectionLimit *int     `yaml:"per_collection_limit"`
}

// IsZero reports whether the section sets no fields, as with `sunnah_api: {}`.
func (c *SunnahConfig) IsZero() bool {
	return c.Base == "" && len(c.Collections) == 0 && c.PerCollectionLimit == nil
}

// Validate returns an error if the section cannot be used to fetch.
func (c *SunnahConfig) Validate() error {
	if c.Base == "" {
		return Errorf(EINVALID, "sunnah_api.base required")
	}
	return nil
}

// Limit returns the per-collection cap, or DefaultPerCollectionLimit when
// unset. The cap is checked after each record, so zero or a negative
// value still admits one hadith per collection.
func (c *SunnahConfig) Limit() int {
	if c.PerCollectionLimit == nil {
		return DefaultPerCollectionLimit
	}
	return *c.PerCollectionLimit
}

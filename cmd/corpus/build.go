package main

import (
	"fmt"
	"log/slog"

	"github.com/fwojciec/corpus"
	"github.com/fwojciec/corpus/build"
	"github.com/fwojciec/corpus/fs"
	"github.com/fwojciec/corpus/goquery"
	corpushttp "github.com/fwojciec/corpus/http"
	"github.com/fwojciec/corpus/quran"
	corpusslog "github.com/fwojciec/corpus/slog"
	"github.com/fwojciec/corpus/sqlite"
	"github.com/fwojciec/corpus/sunnah"
	"github.com/fwojciec/corpus/yaml"
	"github.com/google/uuid"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	logger := newLogger(deps.Stderr, c.Verbose).With("run", uuid.NewString())

	cfg, err := yaml.LoadConfig(c.Config)
	if err != nil {
		return err
	}

	apiKey := c.SunnahAPIKey
	if apiKey == "" && deps.Getenv != nil {
		apiKey = deps.Getenv(sunnah.APIKeyEnv)
	}

	var cleaner corpus.TextCleaner
	if cfg.StripHTML {
		cleaner = goquery.NewCleaner()
	}

	sources := []corpus.Source{
		newQuranSource(cfg, cleaner),
		newSunnahSource(cfg, apiKey, cleaner, logger),
	}
	for i, src := range sources {
		sources[i] = corpusslog.NewLoggingSource(src, logger)
	}

	writers := []corpus.IndexWriter{
		corpusslog.NewLoggingIndexWriter(fs.NewWriter(c.DataDir), "json", logger),
	}
	if c.DB != "" {
		writers = append(writers, corpusslog.NewLoggingIndexWriter(sqlite.NewWriter(c.DB), "sqlite", logger))
	}

	b := &build.Builder{
		Sources:  sources,
		Writers:  writers,
		Parallel: c.Parallel,
	}

	summary, err := b.Run(deps.Ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, summary.String())
	return nil
}

func newQuranSource(cfg *corpus.Config, cleaner corpus.TextCleaner) corpus.Source {
	if cfg.Quran == nil {
		return corpus.EmptySource(quran.Name)
	}
	client := corpushttp.NewClient(cfg.Quran.Base)
	return quran.NewSource(client, cfg.Quran, quran.WithCleaner(cleaner))
}

func newSunnahSource(cfg *corpus.Config, apiKey string, cleaner corpus.TextCleaner, logger *slog.Logger) corpus.Source {
	if cfg.Sunnah == nil {
		return corpus.EmptySource(sunnah.Name)
	}
	client := corpushttp.NewClient(cfg.Sunnah.Base, corpushttp.WithHeader(sunnah.APIKeyHeader, apiKey))
	return sunnah.NewSource(client, cfg.Sunnah, apiKey,
		sunnah.WithCleaner(cleaner),
		sunnah.WithLogger(logger),
	)
}

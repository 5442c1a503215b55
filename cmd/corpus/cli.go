package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/corpus"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
	Items  corpus.ItemService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Build  BuildCmd  `cmd:"" help:"Fetch all sources and write the feed and search index"`
	Search SearchCmd `cmd:"" help:"Search a built index"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Config       string `short:"c" default:"data/sources.yml" help:"Source list (YAML)"`
	DataDir      string `short:"d" default:"data" help:"Directory for feed.json, search_index.json and manifest.json"`
	DB           string `help:"Also export the index to this SQLite file"`
	SunnahAPIKey string `name:"sunnah-api-key" help:"Sunnah.com API key (default $SUNNAH_API_KEY)"`
	Parallel     bool   `help:"Fetch sources concurrently"`
	Verbose      bool   `short:"v" help:"Enable debug logging"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query   string `arg:"" help:"Search terms"`
	DataDir string `short:"d" default:"data" help:"Directory holding search_index.json"`
	DB      string `help:"Query this SQLite export instead of search_index.json"`
	Source  string `short:"s" help:"Only items from this source label"`
	Tag     string `short:"t" help:"Only items carrying this tag"`
	Limit   int    `short:"n" default:"20" help:"Maximum number of results"`
}

// newLogger returns a text logger writing to w.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

package main

import (
	"fmt"

	"github.com/fwojciec/corpus"
	"github.com/fwojciec/corpus/fs"
	"github.com/fwojciec/corpus/sqlite"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	items := deps.Items
	if items == nil && c.DB != "" {
		db := sqlite.NewDB(c.DB)
		if err := db.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", c.DB, err)
		}
		defer db.Close()
		items = sqlite.NewItemService(db)
	}
	if items == nil {
		items = fs.NewIndexReader(c.DataDir)
	}

	filter := corpus.ItemFilter{Query: c.Query, Limit: c.Limit}
	if c.Source != "" {
		filter.Source = &c.Source
	}
	if c.Tag != "" {
		filter.Tag = &c.Tag
	}

	results, err := items.FindItems(deps.Ctx, filter)
	if err != nil {
		if corpus.ErrorCode(err) == corpus.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "Hint: run 'corpus build' first")
		}
		return err
	}

	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q.\n", c.Query)
		return nil
	}

	for i, it := range results {
		fmt.Fprintf(deps.Stdout, "%d. %s  %s\n", i+1, it.Title, it.URL)
		if snippet := corpus.Snippet(it.Content, c.Query); snippet != "" {
			fmt.Fprintf(deps.Stdout, "   %s\n", snippet)
		}
	}

	return nil
}

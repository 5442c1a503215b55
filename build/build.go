// Package build orchestrates a corpus run: it fetches every source, merges
// the results in source order, and hands the merged items to each writer.
package build

import (
	"context"
	"fmt"

	"github.com/fwojciec/corpus"
	"golang.org/x/sync/errgroup"
)

// Builder runs sources and writers for one build.
type Builder struct {
	Sources []corpus.Source
	Writers []corpus.IndexWriter

	// Parallel fetches sources concurrently. Output order is unchanged.
	Parallel bool
}

// Run fetches all sources and writes the merged items. If any source fails
// no writer is called.
func (b *Builder) Run(ctx context.Context) (*corpus.Summary, error) {
	results, err := b.fetch(ctx)
	if err != nil {
		return nil, err
	}

	summary := &corpus.Summary{Sources: make([]corpus.SourceCount, 0, len(results))}
	items := []*corpus.Item{}
	for i, batch := range results {
		items = append(items, batch...)
		summary.Sources = append(summary.Sources, corpus.SourceCount{
			Name:  b.Sources[i].Name(),
			Count: len(batch),
		})
	}

	for _, w := range b.Writers {
		if err := w.WriteIndex(ctx, items); err != nil {
			return nil, fmt.Errorf("write index: %w", err)
		}
	}

	return summary, nil
}

func (b *Builder) fetch(ctx context.Context) ([][]*corpus.Item, error) {
	results := make([][]*corpus.Item, len(b.Sources))

	if !b.Parallel {
		for i, src := range b.Sources {
			items, err := src.Fetch(ctx)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", src.Name(), err)
			}
			results[i] = items
		}
		return results, nil
	}

	// Each goroutine owns its slot, so results need no lock.
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range b.Sources {
		g.Go(func() error {
			items, err := src.Fetch(gctx)
			if err != nil {
				return fmt.Errorf("%s: %w", src.Name(), err)
			}
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

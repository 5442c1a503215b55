package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/corpus"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ corpus.IndexWriter = (*ItemService)(nil)
	_ corpus.ItemService = (*ItemService)(nil)
)

// ItemService stores the search index in SQLite and serves queries over it.
type ItemService struct {
	db *DB
}

// NewItemService creates a new ItemService.
func NewItemService(db *DB) *ItemService {
	return &ItemService{db: db}
}

// WriteIndex replaces the stored index with items in a single transaction.
func (s *ItemService) WriteIndex(ctx context.Context, items []*corpus.Item) error {
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Items cascade with their build.
	if _, err := tx.ExecContext(ctx, "DELETE FROM builds"); err != nil {
		return err
	}

	buildID := uuid.New().String()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO builds (id, item_count, built_at) VALUES (?, ?, ?)
	`, buildID, len(items), time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO items (position, build_id, id, source, url, title, published, lang, tags, excerpt, content)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, it := range items {
		tags, err := json.Marshal(nonNil(it.Tags))
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, i, buildID, it.ID, it.Source, it.URL, it.Title,
			it.Published, it.Lang, string(tags), it.Excerpt, it.Content); err != nil {
			return fmt.Errorf("insert item %s: %w", it.ID, err)
		}
	}

	return tx.Commit()
}

// FindItems retrieves items matching the filter. Source and tag constraints
// are applied in SQL; a query is ranked in memory over the matching rows.
// Returns ENOTFOUND if no index has been written.
func (s *ItemService) FindItems(ctx context.Context, filter corpus.ItemFilter) ([]*corpus.Item, error) {
	var builds int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM builds").Scan(&builds); err != nil {
		return nil, err
	}
	if builds == 0 {
		return nil, corpus.Errorf(corpus.ENOTFOUND, "search index not built")
	}

	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source, url, title, published, lang, tags, excerpt, content FROM items WHERE 1=1")

	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}
	if filter.Tag != nil {
		query.WriteString(" AND EXISTS (SELECT 1 FROM json_each(items.tags) WHERE json_each.value = ?)")
		args = append(args, *filter.Tag)
	}

	query.WriteString(" ORDER BY position ASC")

	ranked := strings.TrimSpace(filter.Query) != ""
	if !ranked {
		appendPagination(&query, &args, filter.Limit, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*corpus.Item{}
	for rows.Next() {
		var it corpus.Item
		var published sql.NullString
		var tags string

		if err := rows.Scan(&it.ID, &it.Source, &it.URL, &it.Title, &published,
			&it.Lang, &tags, &it.Excerpt, &it.Content); err != nil {
			return nil, err
		}
		if published.Valid {
			it.Published = &published.String
		}
		if err := json.Unmarshal([]byte(tags), &it.Tags); err != nil {
			return nil, fmt.Errorf("failed to parse tags: %w", err)
		}

		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if ranked {
		return corpus.RankItems(items, filter), nil
	}
	return items, nil
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

// Ensure Writer implements corpus.IndexWriter at compile time.
var _ corpus.IndexWriter = (*Writer)(nil)

// Writer exports the index to the database file at path. The file is opened
// only when an index is written, so a build that fails while fetching
// leaves no database behind.
type Writer struct {
	path string
}

// NewWriter creates a new Writer for the database at path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteIndex opens the database, replaces its index with items and closes it.
func (w *Writer) WriteIndex(ctx context.Context, items []*corpus.Item) (err error) {
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return err
		}
	}

	db := NewDB(w.path)
	if err := db.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", w.path, err)
	}
	defer func() {
		if cerr := db.Close(); err == nil {
			err = cerr
		}
	}()

	return NewItemService(db).WriteIndex(ctx, items)
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/cinematch/internal/core/domain"
	"github.com/custodia-labs/cinematch/internal/core/ports/driven"
)

// importTimeLayout is fixed width so imported_at sorts chronologically as text.
const importTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// catalogStore implements driven.CatalogStore.
type catalogStore struct {
	store *Store
}

var _ driven.CatalogStore = (*catalogStore)(nil)

// Load reads the imported catalog in position order.
func (c *catalogStore) Load(ctx context.Context) (*domain.Catalog, error) {
	rows, err := c.store.db.QueryContext(ctx,
		"SELECT title, combined_text FROM movies ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("%w: querying movies: %w", domain.ErrLoad, err)
	}
	defer rows.Close()

	var titles, texts []string
	for rows.Next() {
		var title, text string
		if err := rows.Scan(&title, &text); err != nil {
			return nil, fmt.Errorf("%w: scanning movie: %w", domain.ErrLoad, err)
		}
		titles = append(titles, title)
		texts = append(texts, text)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating movies: %w", domain.ErrLoad, err)
	}

	return domain.NewCatalog(titles, texts), nil
}

// ReplaceCatalog deletes the stored movies, inserts the new catalog and
// records the run, all in one transaction.
func (c *catalogStore) ReplaceCatalog(ctx context.Context, run domain.CatalogImport, catalog *domain.Catalog) error {
	tx, err := c.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM movies"); err != nil {
		return fmt.Errorf("clearing movies: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO movies (position, title, combined_text) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range catalog.Entries {
		if _, err := stmt.ExecContext(ctx, i, e.Title, e.CombinedText); err != nil {
			return fmt.Errorf("inserting movie %d: %w", i, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO catalog_imports (id, source, rows, imported_at) VALUES (?, ?, ?, ?)",
		run.ID, run.Source, run.Rows, run.ImportedAt.UTC().Format(importTimeLayout))
	if err != nil {
		return fmt.Errorf("recording import: %w", err)
	}

	return tx.Commit()
}

// LastImport returns the most recent run.
func (c *catalogStore) LastImport(ctx context.Context) (*domain.CatalogImport, error) {
	var run domain.CatalogImport
	var importedAt string

	err := c.store.db.QueryRowContext(ctx,
		"SELECT id, source, rows, imported_at FROM catalog_imports ORDER BY imported_at DESC LIMIT 1",
	).Scan(&run.ID, &run.Source, &run.Rows, &importedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying last import: %w", err)
	}

	// Parsing accepts any fraction width, including rows written before
	// the fixed layout.
	run.ImportedAt, err = time.Parse(time.RFC3339Nano, importedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing import time: %w", err)
	}
	return &run, nil
}

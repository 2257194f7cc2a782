// Package parquetfile reads movie catalogs from Apache Parquet files.
package parquetfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/custodia-labs/cinematch/internal/adapters/driven/catalog"
	"github.com/custodia-labs/cinematch/internal/core/domain"
	"github.com/custodia-labs/cinematch/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.CatalogSource = (*Source)(nil)

// batchSize is the number of rows decoded per read.
const batchSize = 1024

// Source is a Parquet catalog file.
type Source struct {
	path string
}

// New creates a source for the file at path. The file is opened by Load.
func New(path string) *Source {
	return &Source{path: path}
}

// Builder adapts New to driven.CatalogSourceBuilder.
func Builder(path string) (driven.CatalogSource, error) {
	return New(path), nil
}

// Load reads every row of the file.
func (s *Source) Load(ctx context.Context) (*domain.Catalog, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLoad, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLoad, err)
	}

	return Read(ctx, f, stat.Size())
}

// Read parses a catalog from a Parquet file of the given size.
// Columns are located by the names ResolveColumns picked, so the file's
// spelling and case of the headers are kept.
func Read(ctx context.Context, r io.ReaderAt, size int64) (*domain.Catalog, error) {
	pf, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLoad, err)
	}

	schema := pf.Schema()
	var names []string
	for _, field := range schema.Fields() {
		names = append(names, field.Name())
	}
	cols, err := catalog.ResolveColumns(names)
	if err != nil {
		return nil, err
	}
	titleCol, err := leafIndex(schema, cols.Title)
	if err != nil {
		return nil, err
	}
	textCol, err := leafIndex(schema, cols.CombinedText)
	if err != nil {
		return nil, err
	}

	titles := make([]string, 0, pf.NumRows())
	texts := make([]string, 0, pf.NumRows())
	buf := make([]parquet.Row, batchSize)
	for _, rg := range pf.RowGroups() {
		if err := readRowGroup(ctx, rg, buf, func(row parquet.Row) error {
			title := cell(row, titleCol)
			if strings.TrimSpace(title) == "" {
				return fmt.Errorf("row %d: %w", len(titles)+1, domain.ErrMissingTitle)
			}
			titles = append(titles, title)
			texts = append(texts, cell(row, textCol))
			return nil
		}); err != nil {
			return nil, err
		}
	}

	return domain.NewCatalog(titles, texts), nil
}

func readRowGroup(ctx context.Context, rg parquet.RowGroup, buf []parquet.Row, fn func(parquet.Row) error) error {
	rows := rg.Rows()
	defer rows.Close()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := rows.ReadRows(buf)
		for _, row := range buf[:n] {
			if ferr := fn(row); ferr != nil {
				return ferr
			}
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrLoad, err)
		}
		if n == 0 {
			return nil
		}
	}
}

// leafIndex returns the column index of a top-level leaf column.
func leafIndex(schema *parquet.Schema, name string) (int, error) {
	leaf, ok := schema.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("column %q is not a leaf column: %w", name, domain.ErrMissingColumn)
	}
	return leaf.ColumnIndex, nil
}

// cell returns the first value of column in row; nulls read as "".
func cell(row parquet.Row, column int) string {
	for _, v := range row {
		if v.Column() != column {
			continue
		}
		if v.IsNull() {
			return ""
		}
		return v.String()
	}
	return ""
}

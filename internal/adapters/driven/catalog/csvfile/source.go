// Package csvfile reads movie catalogs from CSV files with a header row.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/custodia-labs/cinematch/internal/adapters/driven/catalog"
	"github.com/custodia-labs/cinematch/internal/core/domain"
	"github.com/custodia-labs/cinematch/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.CatalogSource = (*Source)(nil)

// Source is a CSV catalog file.
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

	return Read(ctx, f)
}

// Read parses a catalog from r. Rows shorter than the header are padded with
// empty cells; a missing descriptor becomes the empty string.
func Read(ctx context.Context, r io.Reader) (*domain.Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty file: %w", domain.ErrMissingColumn)
		}
		return nil, fmt.Errorf("%w: header: %w", domain.ErrLoad, err)
	}
	header = append([]string(nil), header...)

	cols, err := catalog.ResolveColumns(header)
	if err != nil {
		return nil, err
	}
	titleIdx := catalog.Index(header, cols.Title)
	textIdx := catalog.Index(header, cols.CombinedText)

	var titles, texts []string
	for row := 1; ; row++ {
		if row%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", domain.ErrLoad, row, err)
		}

		title := cell(record, titleIdx)
		if strings.TrimSpace(title) == "" {
			return nil, fmt.Errorf("row %d: %w", row, domain.ErrMissingTitle)
		}
		titles = append(titles, title)
		texts = append(texts, cell(record, textIdx))
	}

	return domain.NewCatalog(titles, texts), nil
}

func cell(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}

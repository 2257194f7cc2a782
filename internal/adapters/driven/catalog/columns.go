package catalog

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/cinematch/internal/core/domain"
)

// Columns is the pair of header names a source resolved.
type Columns struct {
	Title        string
	CombinedText string
}

// ResolveColumns picks the title and descriptor columns from the header
// names a source offers. Matching ignores case and surrounding whitespace.
// Returns domain.ErrMissingColumn when either is absent.
func ResolveColumns(names []string) (Columns, error) {
	var cols Columns
	var ok bool

	if cols.Title, ok = pick(names, domain.TitleColumns); !ok {
		return cols, fmt.Errorf("title (one of %s): %w", strings.Join(domain.TitleColumns, ", "), domain.ErrMissingColumn)
	}
	if cols.CombinedText, ok = pick(names, domain.CombinedTextColumns); !ok {
		return cols, fmt.Errorf("combined text (one of %s): %w", strings.Join(domain.CombinedTextColumns, ", "), domain.ErrMissingColumn)
	}
	return cols, nil
}

// Index returns the position of name in names using the same matching
// rules as ResolveColumns, or -1.
func Index(names []string, name string) int {
	want := normalize(name)
	for i, n := range names {
		if normalize(n) == want {
			return i
		}
	}
	return -1
}

// pick returns the first accepted name present in names, as spelled in names.
func pick(names, accepted []string) (string, bool) {
	for _, a := range accepted {
		if i := Index(names, a); i >= 0 {
			return names[i], true
		}
	}
	return "", false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(s, "\ufeff")))
}

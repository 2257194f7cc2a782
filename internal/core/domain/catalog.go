package domain

import (
	"strings"
	"time"
)

// Column names recognised in tabular catalog sources.
// The first name in each list is the one written by exports.
var (
	// TitleColumns are accepted names for the title column.
	TitleColumns = []string{"movie_title", "title"}

	// CombinedTextColumns are accepted names for the descriptor column.
	CombinedTextColumns = []string{"comb", "combined_text"}
)

// StoreCatalogPath selects the catalog imported into the local store
// instead of a file on disk.
const StoreCatalogPath = "store"

// IsStoreCatalog reports whether path names the imported catalog.
// The comparison ignores case.
func IsStoreCatalog(path string) bool {
	return strings.EqualFold(path, StoreCatalogPath)
}

// CatalogEntry is a single movie in the catalog.
// Entries are immutable once the catalog is loaded.
type CatalogEntry struct {
	// Position is the 0-based row index in the source table.
	// It is the identity key used throughout the pipeline.
	Position int

	// Title is the raw title as it appears in the source.
	Title string

	// CombinedText is the concatenated descriptor (genres, cast, keywords).
	// Missing descriptors are stored as the empty string.
	CombinedText string
}

// Catalog is the ordered sequence of movies.
type Catalog struct {
	Entries []CatalogEntry
}

// NewCatalog builds a catalog from parallel title and descriptor rows,
// assigning positions in row order.
func NewCatalog(titles, texts []string) *Catalog {
	entries := make([]CatalogEntry, len(titles))
	for i, title := range titles {
		text := ""
		if i < len(texts) {
			text = texts[i]
		}
		entries[i] = CatalogEntry{Position: i, Title: title, CombinedText: text}
	}
	return &Catalog{Entries: entries}
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Entries)
}

// Entry returns the entry at the given position.
func (c *Catalog) Entry(position int) (CatalogEntry, bool) {
	if c == nil || position < 0 || position >= len(c.Entries) {
		return CatalogEntry{}, false
	}
	return c.Entries[position], true
}

// Texts returns the combined descriptors in position order.
func (c *Catalog) Texts() []string {
	texts := make([]string, c.Len())
	for i := range texts {
		texts[i] = c.Entries[i].CombinedText
	}
	return texts
}

// CatalogStats summarises a loaded catalog.
type CatalogStats struct {
	// Entries is the number of movies.
	Entries int

	// EmptyDescriptors counts movies whose descriptor yields no indexed terms.
	EmptyDescriptors int

	// VocabularySize is the number of distinct indexed terms.
	VocabularySize int
}

// CatalogImport records a copy of a catalog into the local store.
type CatalogImport struct {
	// ID is the unique identifier of the import run.
	ID string

	// Source is the path the catalog was read from.
	Source string

	// Rows is the number of entries imported.
	Rows int

	// ImportedAt is when the import completed.
	ImportedAt time.Time
}

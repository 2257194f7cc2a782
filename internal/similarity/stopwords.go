package similarity

import (
	_ "embed"
	"strings"
)

//go:embed stopwords.txt
var englishStopWordList string

// EnglishStopWords returns the built-in English stop-word list.
func EnglishStopWords() []string {
	return strings.Fields(englishStopWordList)
}

// stopWordSet builds a lookup set from a word list. Words are lowercased.
func stopWordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

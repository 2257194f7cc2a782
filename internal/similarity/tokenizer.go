package similarity

import (
	"strings"
	"unicode"
)

// minTokenLength is the shortest run of word characters kept as a token.
const minTokenLength = 2

// Tokenize lowercases text and splits it into runs of letters, digits and
// underscores. Runs shorter than two characters are dropped.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)

	var tokens []string
	start := -1
	runes := 0
	flush := func(end int) {
		if start >= 0 && runes >= minTokenLength {
			tokens = append(tokens, lower[start:end])
		}
		start = -1
		runes = 0
	}

	for i, r := range lower {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			runes++
			continue
		}
		flush(i)
	}
	flush(len(lower))

	return tokens
}

// isWordRune matches Python's \w for str patterns: letters, any numeric
// character and underscore. Combining marks are not word characters.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

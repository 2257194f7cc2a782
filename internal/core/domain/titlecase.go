package domain

import (
	"strings"
	"unicode"
)

// TitleCase renders a title for display.
//
// A letter is upper-cased when it starts a run of letters and lower-cased
// otherwise, so "bug's life" becomes "Bug'S Life" and "2nd act" becomes
// "2Nd Act".
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToTitle(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}

	return b.String()
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase words", "toy story", "Toy Story"},
		{"apostrophe starts new word", "bug's life", "Bug'S Life"},
		{"uppercase input", "THE DARK KNIGHT", "The Dark Knight"},
		{"digits start no word", "2nd act", "2Nd Act"},
		{"hyphenated", "spider-man", "Spider-Man"},
		{"colon and spaces", "star wars: episode iv", "Star Wars: Episode Iv"},
		{"empty", "", ""},
		{"non-ascii letters", "amélie", "Amélie"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TitleCase(tt.input))
		})
	}
}

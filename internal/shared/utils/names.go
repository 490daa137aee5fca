package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English, cases.NoLower)

// NormalizeDisplayName trims surrounding whitespace and collapses internal
// runs of spaces. Casing of existing letters is preserved.
func NormalizeDisplayName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// TitleDisplayName normalizes a name and title-cases fully lowercase words.
// Used when seeding clients and areas from fixtures that arrive lowercased.
func TitleDisplayName(name string) string {
	normalized := NormalizeDisplayName(name)
	words := strings.Fields(normalized)
	for i, w := range words {
		if w == strings.ToLower(w) {
			words[i] = titleCaser.String(w)
		}
	}
	return strings.Join(words, " ")
}

package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Search returns the lines of contents that contain query, in file order
func Search(query, contents string) []string {
	return filter(contents, func(line string) bool {
		return strings.Contains(line, query)
	})
}

// SearchCaseInsensitive returns the lines of contents whose folded form contains
// the folded query, in file order
func SearchCaseInsensitive(query, contents string) []string {
	return filter(contents, func(line string) bool {
		return strings.Contains(Fold(line), Fold(query))
	})
}

// Fold lowercases s with the locale-independent Unicode mapping.
// The result does not depend on the OS locale.
func Fold(s string) string {
	return cases.Lower(language.Und).String(s)
}

func filter(contents string, match func(line string) bool) []string {
	results := make([]string, 0)
	for _, line := range Lines(contents) {
		if match(line) {
			results = append(results, line)
		}
	}
	return results
}

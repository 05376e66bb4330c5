package catalog

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// Filter returns the books whose title or author contains query,
// case-insensitively. An empty query returns every book.
func Filter(books []BookSummary, query string) []BookSummary {
	if query == "" {
		return append([]BookSummary(nil), books...)
	}
	needle := strings.ToLower(query)
	results := []BookSummary{}
	for _, book := range books {
		if strings.Contains(strings.ToLower(book.Title), needle) ||
			strings.Contains(strings.ToLower(book.Author), needle) {
			results = append(results, book)
		}
	}
	return results
}

// Suggest finds the book with a title or author word closest to query. It is
// used for the "did you mean" hint when Filter comes back empty.
func Suggest(books []BookSummary, query string) (BookSummary, bool) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if len(needle) < 3 {
		return BookSummary{}, false
	}
	limit := len(needle) / 3
	if limit < 1 {
		limit = 1
	}
	best := -1
	bestDist := limit + 1
	for i, book := range books {
		for _, word := range words(book.Title + " " + book.Author) {
			dist := levenshtein.ComputeDistance(needle, word)
			if dist < bestDist {
				best, bestDist = i, dist
			}
		}
	}
	if best < 0 {
		return BookSummary{}, false
	}
	return books[best], true
}

func words(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

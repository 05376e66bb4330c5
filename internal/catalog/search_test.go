package catalog

import (
	"strings"
	"testing"
)

func TestFilterMatchesTitleOrAuthor(t *testing.T) {
	t.Parallel()

	books := defaultCatalog(t).Books()
	cases := []struct {
		name  string
		query string
		want  int
	}{
		{name: "empty query returns everything", query: "", want: 16},
		{name: "title substring", query: "mia", want: 5},
		{name: "case insensitive", query: "MIA", want: 5},
		{name: "author substring", query: "lisa", want: 2},
		{name: "mid-word match", query: "owl", want: 1},
		{name: "no match", query: "dragon", want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(books, tc.query)
			if len(got) != tc.want {
				t.Fatalf("Filter(%q) returned %d books, want %d", tc.query, len(got), tc.want)
			}
		})
	}
}

func TestFilterMiaReturnsOnlyMiaTitles(t *testing.T) {
	t.Parallel()

	for _, book := range Filter(defaultCatalog(t).Books(), "mia") {
		if !strings.HasPrefix(book.Title, "Mia") {
			t.Fatalf("unexpected match %q", book.Title)
		}
	}
}

func TestFilterDoesNotAliasInput(t *testing.T) {
	t.Parallel()

	books := []BookSummary{{ID: "1", Title: "A"}}
	got := Filter(books, "")
	got[0].Title = "B"
	if books[0].Title != "A" {
		t.Fatal("Filter must not return the caller's backing array")
	}
}

func TestSuggestFindsClosestWord(t *testing.T) {
	t.Parallel()

	books := defaultCatalog(t).Books()
	got, ok := Suggest(books, "moonbem")
	if !ok {
		t.Fatal("expected a suggestion for a near miss")
	}
	if got.Title != "Mia and the Moonbeam" {
		t.Fatalf("unexpected suggestion %q", got.Title)
	}
	if _, ok := Suggest(books, "zz"); ok {
		t.Fatal("short queries should not produce suggestions")
	}
	if _, ok := Suggest(books, "xylophone"); ok {
		t.Fatal("distant queries should not produce suggestions")
	}
}

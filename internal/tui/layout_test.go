package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/storynook/internal/catalog"
)

func TestPageLayoutUpdate(t *testing.T) {
	cases := []struct {
		name           string
		width          int
		height         int
		viewportWidth  int
		viewportHeight int
		pageHeight     int
		pictureHeight  int
	}{
		{name: "narrow", width: 80, height: 24, viewportWidth: 76, viewportHeight: 18, pageHeight: 14, pictureHeight: 4},
		{name: "tiny", width: 30, height: 10, viewportWidth: 40, viewportHeight: 8, pageHeight: 8, pictureHeight: 3},
		{name: "wide", width: 200, height: 40, viewportWidth: 196, viewportHeight: 34, pageHeight: 30, pictureHeight: 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			layout := newPageLayout()
			layout.Update(tc.width, tc.height)
			if layout.viewportWidth != tc.viewportWidth {
				t.Fatalf("viewport width mismatch: got %d want %d", layout.viewportWidth, tc.viewportWidth)
			}
			if layout.viewportHeight != tc.viewportHeight {
				t.Fatalf("viewport height mismatch: got %d want %d", layout.viewportHeight, tc.viewportHeight)
			}
			if layout.pageHeight != tc.pageHeight {
				t.Fatalf("page height mismatch: got %d want %d", layout.pageHeight, tc.pageHeight)
			}
			if layout.pictureHeight != tc.pictureHeight {
				t.Fatalf("picture height mismatch: got %d want %d", layout.pictureHeight, tc.pictureHeight)
			}
		})
	}
}

func TestStoryWrapWidthShrinksWithFont(t *testing.T) {
	if got := storyWrapWidth(64, 16); got != 64 {
		t.Fatalf("default font should use the full column, got %d", got)
	}
	if got := storyWrapWidth(64, 32); got != 32 {
		t.Fatalf("double font should halve the column, got %d", got)
	}
	if got := storyWrapWidth(64, 12); got != 64 {
		t.Fatalf("small fonts should not exceed the column, got %d", got)
	}
	if got := storyWrapWidth(30, 64); got != 20 {
		t.Fatalf("wrap width should not drop below 20, got %d", got)
	}
}

func TestRenderStripWindow(t *testing.T) {
	pages := [][]string{{"AAAA"}, {"BBBB"}, {"CCCC"}}
	cases := []struct {
		name   string
		offset float64
		want   string
	}{
		{name: "first page", offset: 0, want: "AAAA"},
		{name: "half way", offset: 40, want: "AABB"},
		{name: "second page", offset: 80, want: "BBBB"},
		{name: "overscroll before start", offset: -20, want: " AAA"},
		{name: "past the end", offset: 180, want: "CCC "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := renderStripWindow(pages, tc.offset, 80, 4, 1)
			if got != tc.want {
				t.Fatalf("window mismatch: got %q want %q", got, tc.want)
			}
		})
	}
}

func TestRenderPageLinesFitsHeight(t *testing.T) {
	page := catalog.StoryPage{ID: "1", ImageRef: "https://picsum.photos/id/40", Text: strings.Repeat("Mia and Leo play. ", 40)}
	lines := renderPageLines(page, 40, 10, 4, 16)
	if len(lines) != 10 {
		t.Fatalf("page should be cut to its height, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "┌") {
		t.Fatalf("page should open with the picture frame, got %q", lines[0])
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w > 40 {
			t.Fatalf("line %d overflows the page: %d columns", i, w)
		}
	}
}

func TestFindMatchesCaseInsensitive(t *testing.T) {
	matches := findMatches("Mia and the Moonbeam", "MIA")
	if len(matches) != 1 || matches[0].start != 0 || matches[0].end != 3 {
		t.Fatalf("unexpected matches %+v", matches)
	}
	if findMatches("anything", "") != nil {
		t.Fatal("empty query should not match")
	}
}

package catalog

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

var extraneousWhitespace = regexp.MustCompile(`\s+`)

// ImportPDF turns a picture-book PDF into a book and its story: every PDF
// page with text becomes one story page.
func ImportPDF(path string) (BookSummary, Story, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return BookSummary{}, Story{}, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer file.Close()

	slug := slugFromPath(path)
	story := Story{ID: "pdf-" + slug, Title: titleFromSlug(slug)}
	fonts := make(map[string]*pdf.Font)
	wordCount := 0
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(fonts)
		if err != nil {
			return BookSummary{}, Story{}, fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		text = strings.TrimSpace(extraneousWhitespace.ReplaceAllString(text, " "))
		if text == "" {
			continue
		}
		wordCount += len(strings.Fields(text))
		story.Pages = append(story.Pages, StoryPage{
			ID:       fmt.Sprintf("%d", i),
			ImageRef: fmt.Sprintf("%s#page=%d", filepath.Base(path), i),
			Text:     text,
		})
	}
	if len(story.Pages) == 0 {
		return BookSummary{}, Story{}, fmt.Errorf("pdf %s has no readable pages", filepath.Base(path))
	}

	book := BookSummary{
		ID:       story.ID,
		Title:    story.Title,
		Author:   "IMPORTED",
		ImageRef: filepath.Base(path),
		Subtitle: "Imported story",
		Words:    wordCount,
		Images:   len(story.Pages),
		StoryID:  story.ID,
	}
	return book, story, nil
}

func slugFromPath(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	base = strings.ToLower(strings.TrimSpace(base))
	base = strings.NewReplacer(" ", "-", "_", "-", "/", "-", ":", "-").Replace(base)
	if base == "" {
		return "story"
	}
	return base
}

func titleFromSlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/storynook/internal/catalog"
	"github.com/csheth/storynook/internal/reader"
)

type pageLayout struct {
	windowWidth    int
	windowHeight   int
	viewportWidth  int
	viewportHeight int
	pageHeight     int
	pictureHeight  int
}

func newPageLayout() pageLayout {
	return pageLayout{
		viewportWidth:  76,
		viewportHeight: 18,
		pageHeight:     14,
		pictureHeight:  5,
	}
}

func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	innerWidth := width - viewportHorizontalPadding
	if innerWidth < minViewportWidth {
		innerWidth = minViewportWidth
	}
	l.viewportWidth = innerWidth
	const chrome = 6
	usable := height - chrome
	if usable < minPageHeight {
		usable = minPageHeight
	}
	l.viewportHeight = usable
	// header, controls and status line
	l.pageHeight = usable - 4
	if l.pageHeight < minPageHeight {
		l.pageHeight = minPageHeight
	}
	l.pictureHeight = l.pageHeight / 3
	if l.pictureHeight < 3 {
		l.pictureHeight = 3
	}
}

type contentBuilder struct {
	builder strings.Builder
	lines   int
}

func (cb *contentBuilder) WriteString(s string) {
	cb.builder.WriteString(s)
	cb.lines += strings.Count(s, "\n")
}

func (cb *contentBuilder) WriteRune(r rune) {
	cb.builder.WriteRune(r)
	if r == '\n' {
		cb.lines++
	}
}

func (cb *contentBuilder) String() string {
	return cb.builder.String()
}

func (cb *contentBuilder) Line() int {
	return cb.lines
}

// storyWrapWidth narrows the text column as the font grows, so larger text
// reads as fewer words per line.
func storyWrapWidth(columns, fontSize int) int {
	if fontSize <= 0 {
		fontSize = reader.DefaultFontSize
	}
	width := columns * reader.DefaultFontSize / fontSize
	if width > columns {
		width = columns
	}
	if width < 20 {
		width = 20
	}
	return width
}

// renderPageLines lays a story page out as plain lines: a framed picture
// placeholder followed by the wrapped text.
func renderPageLines(page catalog.StoryPage, width, height, pictureHeight, fontSize int) []string {
	lines := make([]string, 0, height)
	inner := width - 4
	if inner < 4 {
		inner = 4
	}
	lines = append(lines, "  ┌"+strings.Repeat("─", inner-2)+"┐")
	label := trimmedTitle("picture: "+page.ImageRef, inner-4)
	for i := 0; i < pictureHeight-2; i++ {
		body := ""
		if i == (pictureHeight-2)/2 {
			body = centerText(label, inner-2)
		}
		lines = append(lines, "  │"+padRight(body, inner-2)+"│")
	}
	lines = append(lines, "  └"+strings.Repeat("─", inner-2)+"┘", "")

	wrap := storyWrapWidth(width-4, fontSize)
	margin := strings.Repeat(" ", (width-wrap)/2)
	for _, line := range strings.Split(wordwrap.String(page.Text, wrap), "\n") {
		if fontSize >= 20 {
			line = strings.ToUpper(line)
		}
		lines = append(lines, margin+line)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return lines
}

func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func centerText(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return strings.Repeat(" ", (width-n)/2) + s
}

func indentMultiline(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func (m *model) wrapWidth(padding int) int {
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}
	if padding < 0 {
		padding = 0
	}
	available := width - padding
	if available < 20 {
		available = 20
	}
	return available
}

type matchRange struct {
	start int
	end   int
}

func findMatches(content, query string) []matchRange {
	lowerContent := strings.ToLower(content)
	lowerQuery := strings.ToLower(query)
	if lowerQuery == "" || len(lowerContent) != len(content) {
		return nil
	}
	var matches []matchRange
	searchIdx := 0
	for {
		idx := strings.Index(lowerContent[searchIdx:], lowerQuery)
		if idx == -1 {
			break
		}
		start := searchIdx + idx
		end := start + len(lowerQuery)
		matches = append(matches, matchRange{start: start, end: end})
		searchIdx = end
		if searchIdx >= len(content) {
			break
		}
	}
	return matches
}

func highlightMatches(content string, matches []matchRange) string {
	if len(matches) == 0 {
		return content
	}
	var b strings.Builder
	pos := 0
	for _, match := range matches {
		if match.start > len(content) {
			break
		}
		if match.start > pos {
			b.WriteString(content[pos:match.start])
		}
		segmentEnd := match.end
		if segmentEnd > len(content) {
			segmentEnd = len(content)
		}
		b.WriteString(searchHighlightStyle.Render(content[match.start:segmentEnd]))
		pos = segmentEnd
	}
	if pos < len(content) {
		b.WriteString(content[pos:])
	}
	return b.String()
}

func progressBar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(fraction*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return progressFilledStyle.Render(strings.Repeat("━", filled)) +
		progressEmptyStyle.Render(strings.Repeat("━", width-filled))
}

func bookMeta(book catalog.BookSummary) string {
	return fmt.Sprintf("%d words • %d images", book.Words, book.Images)
}

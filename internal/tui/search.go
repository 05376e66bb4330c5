package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/storynook/internal/catalog"
	"github.com/csheth/storynook/internal/nav"
)

func (m *model) mountSearch(p nav.Search) tea.Cmd {
	m.searchInput.SetValue(p.Query)
	m.searchInput.CursorEnd()
	m.searchInput.Focus()
	m.runSearch()
	return textinput.Blink
}

// runSearch filters the catalog with the query exactly as typed. When
// nothing matches, a close title or author word is offered instead.
func (m *model) runSearch() {
	query := m.searchInput.Value()
	books := m.config.Catalog.Books()
	m.searchResults = catalog.Filter(books, query)
	m.searchCursor = 0
	m.suggestion = nil
	if len(m.searchResults) == 0 && strings.TrimSpace(query) != "" {
		if book, ok := catalog.Suggest(books, query); ok {
			m.suggestion = &book
		}
	}
}

func (m *model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m.goBack()
	case msg.Type == tea.KeyUp:
		if m.searchCursor > 0 {
			m.searchCursor--
		}
		return nil
	case msg.Type == tea.KeyDown:
		if m.searchCursor < len(m.searchResults)-1 {
			m.searchCursor++
		}
		return nil
	case key.Matches(msg, m.keys.Open):
		if m.searchCursor < len(m.searchResults) {
			m.openBook(m.searchResults[m.searchCursor])
		}
		return nil
	case key.Matches(msg, m.keys.Suggest):
		if m.suggestion != nil {
			m.searchInput.SetValue(m.suggestion.Title)
			m.searchInput.CursorEnd()
			m.runSearch()
		}
		return nil
	}
	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != before {
		m.runSearch()
	}
	return cmd
}

func (m *model) viewSearch() string {
	var cb contentBuilder
	cb.WriteString(sectionHeaderStyle.Render("Find a story"))
	cb.WriteRune('\n')
	cb.WriteString(m.searchInput.View())
	cb.WriteString("\n\n")

	query := m.searchInput.Value()
	if len(m.searchResults) == 0 {
		cb.WriteString(helperStyle.Render(fmt.Sprintf("No stories found for “%s”.", query)))
		if m.suggestion != nil {
			cb.WriteRune('\n')
			cb.WriteString(fmt.Sprintf("Did you mean “%s”? %s", m.suggestion.Title, helperStyle.Render("(tab)")))
		}
		return cb.String()
	}

	if query == "" {
		cb.WriteString(helperStyle.Render(fmt.Sprintf("%d stories in the library", len(m.searchResults))))
	} else {
		cb.WriteString(helperStyle.Render(fmt.Sprintf("%d stories match", len(m.searchResults))))
	}
	cb.WriteString("\n\n")

	rows := max(1, (m.layout.viewportHeight-6)/2)
	start := 0
	if m.searchCursor >= rows {
		start = m.searchCursor - rows + 1
	}
	end := min(start+rows, len(m.searchResults))
	for i := start; i < end; i++ {
		book := m.searchResults[i]
		cb.WriteString(renderBookRow(book, i == m.searchCursor, findMatches(book.Title, query), findMatches(book.Author, query)))
		cb.WriteRune('\n')
	}
	if end < len(m.searchResults) {
		cb.WriteString(helperStyle.Render(fmt.Sprintf("… %d more", len(m.searchResults)-end)))
	}
	return cb.String()
}

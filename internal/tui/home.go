package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/storynook/internal/catalog"
	"github.com/csheth/storynook/internal/nav"
	"github.com/csheth/storynook/internal/profile"
)

func (m *model) mountHome(p nav.Home) {
	m.profile = p.Profile.Clone()
	m.shelves = m.config.Catalog.Shelves()
	m.shelfCursor = 0
	m.bookCursor = 0
}

func (m *model) currentShelf() (catalog.Shelf, bool) {
	if m.shelfCursor < 0 || m.shelfCursor >= len(m.shelves) {
		return catalog.Shelf{}, false
	}
	return m.shelves[m.shelfCursor], true
}

func (m *model) handleHomeKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Back):
		return m.goBack()
	case key.Matches(msg, m.keys.Search):
		m.nav.Navigate(nav.Search{})
	case key.Matches(msg, m.keys.Up):
		if m.shelfCursor > 0 {
			m.shelfCursor--
			m.bookCursor = 0
		}
	case key.Matches(msg, m.keys.Down):
		if m.shelfCursor < len(m.shelves)-1 {
			m.shelfCursor++
			m.bookCursor = 0
		}
	case key.Matches(msg, m.keys.Left):
		if m.bookCursor > 0 {
			m.bookCursor--
		}
	case key.Matches(msg, m.keys.Right):
		if shelf, ok := m.currentShelf(); ok && m.bookCursor < min(len(shelf.Books), shelfCardCount)-1 {
			m.bookCursor++
		}
	case key.Matches(msg, m.keys.ViewAll):
		if shelf, ok := m.currentShelf(); ok {
			m.nav.Navigate(nav.ViewAll{ShelfID: shelf.ID, Title: shelf.Title})
		}
	case msg.String() == "A":
		m.nav.Navigate(nav.ViewAll{Title: "All Stories"})
	case key.Matches(msg, m.keys.Open):
		if shelf, ok := m.currentShelf(); ok && m.bookCursor < len(shelf.Books) {
			m.openBook(shelf.Books[m.bookCursor])
		}
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	m.markViewportDirty()
	return nil
}

func (m *model) openBook(book catalog.BookSummary) {
	m.nav.Navigate(nav.BookDetail{BookID: book.ID, Title: book.Title, ImageRef: book.ImageRef})
}

func (m *model) greeting() string {
	name := m.profile.ChildName
	if name == "" {
		name = "friend"
	}
	return fmt.Sprintf("Hi, %s!", name)
}

func (m *model) avatarLabel() string {
	for _, card := range profile.AvatarCards {
		if card.ID == string(m.profile.Avatar) {
			return "[" + card.Title + "]"
		}
	}
	return ""
}

func (m *model) interestLine() string {
	var titles []string
	for _, id := range m.profile.Interests.IDs() {
		for _, card := range profile.InterestCards {
			if card.ID == string(id) {
				titles = append(titles, card.Title)
			}
		}
	}
	if len(titles) == 0 {
		return ""
	}
	return "Picked for someone who loves " + strings.Join(titles, ", ")
}

// visibleCards is how many shelf cards fit across the viewport.
func (m *model) visibleCards() int {
	n := m.wrapWidth(0) / (cardWidth + 4)
	return max(1, min(n, shelfCardCount))
}

func (m *model) buildHomeContent() (string, int) {
	var cb contentBuilder
	focus := 0
	cb.WriteString(titleStyle.Render(m.greeting()))
	if avatar := m.avatarLabel(); avatar != "" {
		cb.WriteString(helperStyle.Render("  " + avatar))
	}
	cb.WriteRune('\n')
	if line := m.interestLine(); line != "" {
		cb.WriteString(subtitleStyle.Render(line))
		cb.WriteRune('\n')
	}
	if len(m.shelves) == 0 {
		cb.WriteRune('\n')
		cb.WriteString(helperStyle.Render("The library is empty."))
		return cb.String(), 0
	}
	perRow := m.visibleCards()
	for si, shelf := range m.shelves {
		cb.WriteRune('\n')
		if si == m.shelfCursor {
			focus = cb.Line()
		}
		header := sectionHeaderStyle.Render(shelf.Title)
		if si == m.shelfCursor {
			header += helperStyle.Render("   v: view all")
		}
		cb.WriteString(header)
		cb.WriteRune('\n')

		books := shelf.Books
		if len(books) > shelfCardCount {
			books = books[:shelfCardCount]
		}
		start := 0
		if si == m.shelfCursor && m.bookCursor >= perRow {
			start = m.bookCursor - perRow + 1
		}
		end := min(start+perRow, len(books))
		cells := make([]string, 0, end-start)
		for bi := start; bi < end; bi++ {
			selected := si == m.shelfCursor && bi == m.bookCursor
			cells = append(cells, renderBookCard(books[bi], selected))
		}
		cb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		cb.WriteRune('\n')
		if len(books) > end || start > 0 {
			cb.WriteString(helperStyle.Render(fmt.Sprintf("%d–%d of %d", start+1, end, len(books))))
			cb.WriteRune('\n')
		}
	}
	return cb.String(), focus
}

func renderBookCard(book catalog.BookSummary, selected bool) string {
	body := trimmedTitle(book.Title, cardWidth-2) + "\n" + helperStyle.Render(trimmedTitle(book.Author, cardWidth-2))
	if selected {
		return cardSelectedStyle.Render(body)
	}
	return cardStyle.Render(body)
}

func (m *model) viewHome() string {
	m.refreshViewportIfDirty()
	return m.viewport.View()
}

func (m *model) mountViewAll(p nav.ViewAll) {
	m.listCursor = 0
	m.listTitle = p.Title
	if p.ShelfID == "" {
		m.listBooks = m.config.Catalog.Books()
		if m.listTitle == "" {
			m.listTitle = "All Stories"
		}
		return
	}
	m.listBooks = nil
	for _, shelf := range m.config.Catalog.Shelves() {
		if shelf.ID == p.ShelfID {
			m.listBooks = shelf.Books
			if m.listTitle == "" {
				m.listTitle = shelf.Title
			}
			return
		}
	}
	m.errorMessage = fmt.Sprintf("Shelf %q not found.", p.ShelfID)
}

func (m *model) handleViewAllKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Back):
		return m.goBack()
	case key.Matches(msg, m.keys.Search):
		m.nav.Navigate(nav.Search{})
	case key.Matches(msg, m.keys.Up):
		if m.listCursor > 0 {
			m.listCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.listCursor < len(m.listBooks)-1 {
			m.listCursor++
		}
	case key.Matches(msg, m.keys.Open):
		if m.listCursor < len(m.listBooks) {
			m.openBook(m.listBooks[m.listCursor])
		}
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	m.markViewportDirty()
	return nil
}

func (m *model) buildListContent() (string, int) {
	var cb contentBuilder
	focus := 0
	cb.WriteString(titleStyle.Render(m.listTitle))
	cb.WriteRune('\n')
	cb.WriteString(helperStyle.Render(fmt.Sprintf("%d stories", len(m.listBooks))))
	cb.WriteString("\n\n")
	for i, book := range m.listBooks {
		if i == m.listCursor {
			focus = cb.Line()
		}
		cb.WriteString(renderBookRow(book, i == m.listCursor, nil, nil))
		cb.WriteRune('\n')
	}
	return cb.String(), focus
}

// renderBookRow draws one list entry; match ranges highlight the title and
// author.
func renderBookRow(book catalog.BookSummary, selected bool, titleMatches, authorMatches []matchRange) string {
	marker := "  "
	title := book.Title
	if selected {
		marker = "▸ "
		title = lipgloss.NewStyle().Bold(true).Render(highlightMatches(title, titleMatches))
	} else {
		title = highlightMatches(title, titleMatches)
	}
	line := marker + title + helperStyle.Render(" by ") + highlightMatches(book.Author, authorMatches)
	return line + "\n" + helperStyle.Render("    "+bookMeta(book))
}

func (m *model) viewList() string {
	m.refreshViewportIfDirty()
	return m.viewport.View()
}

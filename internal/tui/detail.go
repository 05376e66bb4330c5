package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/storynook/internal/catalog"
	"github.com/csheth/storynook/internal/nav"
)

func (m *model) mountDetail(p nav.BookDetail) {
	book, err := m.config.Catalog.Book(p.BookID)
	if err != nil {
		m.logger.Warn("book lookup failed", "book", p.BookID, "err", err)
		m.errorMessage = "This book is not in the library."
		book = catalog.BookSummary{ID: p.BookID, Title: p.Title, ImageRef: p.ImageRef}
	}
	m.detail = book
}

func (m *model) handleDetailKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Back), msg.Type == tea.KeyBackspace:
		return m.goBack()
	case key.Matches(msg, m.keys.Open), msg.String() == "r":
		m.nav.Navigate(nav.Story{BookID: m.detail.ID, Title: m.detail.Title})
	}
	return nil
}

func (m *model) viewDetail() string {
	book := m.detail
	width := m.wrapWidth(4)
	cover := coverStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(trimmedTitle(book.Title, 28)),
		"",
		trimmedTitle(book.ImageRef, 28),
	))

	info := []string{titleStyle.Render(book.Title)}
	if book.Subtitle != "" {
		info = append(info, subtitleStyle.Render(book.Subtitle))
	}
	if book.Words > 0 || book.Images > 0 {
		info = append(info, helperStyle.Render(bookMeta(book)))
	}
	var credits []string
	if book.WrittenBy != "" {
		credits = append(credits, "Written by "+book.WrittenBy)
	}
	if book.IllustratedBy != "" {
		credits = append(credits, "Illustrated by "+book.IllustratedBy)
	}
	if len(credits) == 0 && book.Author != "" {
		credits = append(credits, "By "+book.Author)
	}

	parts := []string{cover, strings.Join(info, "\n")}
	if book.Description != "" {
		parts = append(parts, wordwrap.String(book.Description, width))
	}
	if len(credits) > 0 {
		parts = append(parts, helperStyle.Render(strings.Join(credits, " • ")))
	}
	parts = append(parts, fmt.Sprintf("%s  %s", buttonStyle.Render("Read Now"), helperStyle.Render("enter")))
	return joinNonEmpty(parts)
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/storynook/internal/gesture"
	"github.com/csheth/storynook/internal/nav"
	"github.com/csheth/storynook/internal/reader"
)

func (m *model) mountStory(p nav.Story) {
	story, err := m.config.Catalog.Story(p.BookID)
	if err != nil {
		m.logger.Warn("story lookup failed", "book", p.BookID, "err", err)
		m.errorMessage = "This story could not be opened."
		return
	}
	if len(story.Pages) == 0 {
		m.errorMessage = "This story has no pages yet."
		return
	}
	if story.Title == "" {
		story.Title = p.Title
	}
	width := m.surfaceWidth()
	m.strip = newPageStrip(len(story.Pages), width)
	m.session = reader.NewSession(story, m.strip, m.config.Speaker, reader.Options{
		PageWidth:  width,
		FontSize:   m.config.Settings.Reader.FontSize,
		DarkMode:   m.config.Settings.Reader.DarkMode,
		SpeechRate: m.config.Settings.Speech.Rate,
		Logger:     m.logger,
	})
	m.logger.Info("story opened", "book", p.BookID, "story", story.ID, "pages", len(story.Pages))
}

func (m *model) handleStoryKey(msg tea.KeyMsg) tea.Cmd {
	if m.session == nil {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Back), msg.Type == tea.KeyBackspace:
			return m.goBack()
		}
		return nil
	}

	display := m.session.Display()
	if display.SettingsOpen() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.FontUp):
			display.IncreaseFontSize()
		case key.Matches(msg, m.keys.FontDown):
			display.DecreaseFontSize()
		case key.Matches(msg, m.keys.Dark):
			display.ToggleDarkMode()
		case key.Matches(msg, m.keys.Settings), key.Matches(msg, m.keys.Back):
			display.CloseSettings()
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Back):
		return m.goBack()
	case key.Matches(msg, m.keys.Next):
		m.session.GoToNext()
	case key.Matches(msg, m.keys.Previous):
		m.session.GoToPrevious()
	case key.Matches(msg, m.keys.DragLeft):
		return m.dragStrip(-m.dragStep())
	case key.Matches(msg, m.keys.DragRight):
		return m.dragStrip(m.dragStep())
	case key.Matches(msg, m.keys.ReadAloud):
		wasReading := m.session.Reading()
		m.session.ToggleReadAloud()
		if !wasReading && !m.session.Reading() {
			m.infoMessage = "Read aloud needs a speech engine such as espeak-ng or say."
		}
	case key.Matches(msg, m.keys.Settings):
		display.OpenSettings()
	}
	return nil
}

// dragStep is the scroll distance of one drag key or wheel notch.
func (m *model) dragStep() float64 {
	return dragColumns * m.config.Settings.Gesture.ColumnUnits
}

// dragStrip scrolls the strip by hand and snaps back to the nearest page
// once scrolling stops.
func (m *model) dragStrip(delta float64) tea.Cmd {
	m.strip.drag(delta)
	m.session.ScrollChanged(m.strip.offset)
	return stripSettleCmd(m.strip.seq)
}

func (m *model) handleStoryMouse(msg tea.MouseMsg) tea.Cmd {
	if m.session == nil || m.session.Display().SettingsOpen() {
		return nil
	}
	switch msg.Type {
	case tea.MouseWheelUp:
		return m.dragStrip(-m.dragStep())
	case tea.MouseWheelDown:
		return m.dragStrip(m.dragStep())
	case tea.MouseLeft, tea.MouseMotion:
		if !m.gestures.Active() {
			if msg.Type == tea.MouseMotion {
				return nil
			}
			m.gestures.Press(msg.X, msg.Y)
			m.dragOrigin = m.strip.offset
			m.pressIndex = m.session.Pager().Index()
			return nil
		}
		dx, _, ok := m.gestures.Delta(msg.X, msg.Y)
		if ok {
			m.strip.dragTo(m.dragOrigin - dx)
			m.session.ScrollChanged(m.strip.offset)
		}
	case tea.MouseRelease:
		dx, dy, ok := m.gestures.Release(msg.X, msg.Y)
		if !ok {
			return nil
		}
		target := m.strip.nearest()
		switch gesture.Classify(dx, dy) {
		case gesture.Next:
			target = min(m.pressIndex+1, m.session.Pager().Count()-1)
		case gesture.Previous:
			target = max(m.pressIndex-1, 0)
		}
		m.strip.ScrollTo(float64(target)*m.strip.pageWidth, true)
	}
	return nil
}

func (m *model) theme() readerTheme {
	if m.session != nil && m.session.Display().Dark() {
		return darkTheme
	}
	return lightTheme
}

func (m *model) viewStory() string {
	if m.session == nil {
		return helperStyle.Render("Press esc to go back.")
	}
	theme := m.theme()
	story := m.session.Story()
	display := m.session.Display()
	width := m.layout.viewportWidth
	height := m.layout.pageHeight

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render(trimmedTitle(story.Title, width-10)),
		"  ",
		theme.muted.Render(m.session.PageLabel()),
	)

	pages := make([][]string, len(story.Pages))
	for i, page := range story.Pages {
		pages[i] = renderPageLines(page, width, height, m.layout.pictureHeight, display.FontSize())
	}
	window := renderStripWindow(pages, m.strip.offset, m.strip.pageWidth, width, height)
	page := theme.page.Width(width).Render(window)

	prev := controlStyle.Render("◀ Prev")
	if m.session.Pager().IsFirst() {
		prev = controlDisabledStyle.Render("◀ Prev")
	}
	next := controlStyle.Render("Next ▶")
	if m.session.Pager().IsLast() {
		next = controlDisabledStyle.Render("Next ▶")
	}
	read := controlStyle.Render("♪ Read aloud")
	if m.session.Reading() {
		read = buttonStyle.Render("■ Stop reading")
	}
	settings := controlStyle.Render("Aa Settings")
	controls := lipgloss.JoinHorizontal(lipgloss.Top, prev, " ", read, " ", settings, " ", next)

	parts := []string{header, page, controls}
	if display.SettingsOpen() {
		parts = append(parts, m.settingsPanel())
	}
	return joinNonEmpty(parts)
}

func (m *model) settingsPanel() string {
	display := m.session.Display()
	dark := "off"
	if display.Dark() {
		dark = "on"
	}
	lines := []string{
		sectionHeaderStyle.Render("Reading settings"),
		fmt.Sprintf("Text size  %d%%   %s", display.Percent(), helperStyle.Render("-/+")),
		fmt.Sprintf("Dark mode  %s   %s", dark, helperStyle.Render("d")),
		helperStyle.Render("s or esc to close"),
	}
	return settingsBoxStyle.Render(strings.Join(lines, "\n"))
}

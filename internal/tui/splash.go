package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/storynook/internal/nav"
)

func (m *model) mountSplash() tea.Cmd {
	m.splashDone = false
	m.splashTimer = timer.NewWithInterval(m.config.Settings.Splash.Duration, time.Second)
	return tea.Batch(m.splashTimer.Init(), m.spinner.Tick)
}

// finishSplash leaves the splash screen for onboarding. The splash entry is
// replaced so back never returns to it.
func (m *model) finishSplash() {
	if m.splashDone || m.mounted != nav.RouteSplash {
		return
	}
	m.splashDone = true
	m.nav.Replace(nav.Onboarding{})
}

func (m *model) viewSplash() string {
	remaining := m.splashTimer.Timeout.Round(time.Second)
	countdown := helperStyle.Render(fmt.Sprintf("%s Opening the library in %s… press any key to skip", m.spinner.View(), remaining))
	body := lipgloss.JoinVertical(lipgloss.Center, renderLogo(), taglineStyle.Render(heroTagline), "", countdown)
	if m.layout.windowWidth == 0 {
		return body
	}
	return lipgloss.Place(m.layout.windowWidth, m.layout.windowHeight, lipgloss.Center, lipgloss.Center, body)
}

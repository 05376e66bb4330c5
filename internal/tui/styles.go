package tui

import "github.com/charmbracelet/lipgloss"

// readerTheme colours the story page.
type readerTheme struct {
	page  lipgloss.Style
	muted lipgloss.Style
}

var (
	brandOrange = lipgloss.Color("#F08C4B")
	brandInk    = lipgloss.Color("#3F3D56")
	brandGrey   = lipgloss.Color("#8A8696")
	brandCream  = lipgloss.Color("#F7F4EB")
	nightSky    = lipgloss.Color("#1E1E2E")
	nightText   = lipgloss.Color("#E0DEF4")

	lightTheme = readerTheme{
		page:  lipgloss.NewStyle().Foreground(brandInk).Background(brandCream),
		muted: lipgloss.NewStyle().Foreground(brandGrey),
	}
	darkTheme = readerTheme{
		page:  lipgloss.NewStyle().Foreground(nightText).Background(nightSky),
		muted: lipgloss.NewStyle().Foreground(lipgloss.Color("#A6A3C2")),
	}
)

var (
	titleStyle           = lipgloss.NewStyle().Bold(true).Foreground(brandInk)
	subtitleStyle        = lipgloss.NewStyle().Foreground(brandGrey)
	sectionHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(brandOrange)
	errorStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helperStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	searchHighlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("229"))

	buttonStyle          = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(brandOrange).Padding(0, 2)
	buttonDisabledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#C0C0C0")).Padding(0, 2)
	controlStyle         = lipgloss.NewStyle().Bold(true).Foreground(brandInk).Padding(0, 1)
	controlDisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C0C0C0")).Padding(0, 1)

	cardStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(brandGrey).Padding(0, 1).Width(cardWidth)
	cardSelectedStyle = cardStyle.Copy().BorderForeground(brandOrange).Bold(true)
	cardChosenStyle   = cardStyle.Copy().BorderForeground(brandOrange).Background(lipgloss.Color("#FDE6D6"))
	coverStyle        = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(brandOrange).Padding(1, 3).Foreground(brandGrey)

	progressFilledStyle = lipgloss.NewStyle().Foreground(brandOrange)
	progressEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))

	statusBarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	settingsBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(brandOrange).Padding(1, 2)

	taglineStyle       = lipgloss.NewStyle().Foreground(brandOrange).Italic(true)
	logoFaceStyle      = lipgloss.NewStyle().Bold(true).Foreground(brandOrange)
	logoShadowStyle    = lipgloss.NewStyle().Foreground(brandInk)
	logoContainerStyle = lipgloss.NewStyle().Padding(0, 1)

	logoArtLines = []string{
		"█▀▀ ▀█▀ █▀█ █▀█ █▄█ █▄ █ █▀█ █▀█ █▄▀",
		"▀▀█  █  █ █ █▀▄  █  █ ▀█ █ █ █ █ █ █",
		"▀▀▀  ▀  ▀▀▀ ▀ ▀  ▀  ▀  ▀ ▀▀▀ ▀▀▀ ▀ ▀",
	}
)

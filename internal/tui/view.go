package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/storynook/internal/nav"
	"github.com/csheth/storynook/internal/onboarding"
)

func (m *model) View() string {
	if m.mounted == "" {
		return ""
	}
	if m.paramsError != "" {
		return joinNonEmpty([]string{
			errorStyle.Render("This screen could not be opened."),
			helperStyle.Render(m.paramsError),
			helperStyle.Render("Press esc to go back."),
		})
	}
	var body string
	switch m.mounted {
	case nav.RouteSplash:
		return m.viewSplash()
	case nav.RouteOnboarding:
		body = m.viewOnboarding()
	case nav.RouteHome:
		body = m.viewHome()
	case nav.RouteViewAll:
		body = m.viewList()
	case nav.RouteSearch:
		body = m.viewSearch()
	case nav.RouteBookDetail:
		body = m.viewDetail()
	case nav.RouteStory:
		body = m.viewStory()
	}
	return joinNonEmpty([]string{m.headerView(), body, m.footerView()})
}

func (m *model) headerView() string {
	if m.mounted == nav.RouteStory || m.mounted == nav.RouteOnboarding {
		return ""
	}
	brand := logoFaceStyle.Render("storynook")
	return lipgloss.JoinHorizontal(lipgloss.Top, brand, "  ", taglineStyle.Render(heroTagline))
}

func (m *model) footerView() string {
	parts := []string{}
	if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render(m.errorMessage))
	}
	if m.infoMessage != "" {
		message := m.infoMessage
		if len(m.runningJobs) > 0 {
			message = fmt.Sprintf("%s %s", m.spinner.View(), message)
		}
		parts = append(parts, helperStyle.Render(message))
	}
	if bar := m.statusBarView(); bar != "" {
		parts = append(parts, bar)
	}
	parts = append(parts, m.help.View(m.screenKeys()))
	return strings.Join(parts, "\n")
}

func (m *model) statusBarView() string {
	stats := []string{m.routeLabel()}
	if m.mounted == nav.RouteStory && m.session != nil {
		state := m.session.State()
		stats = append(stats, fmt.Sprintf("Page %s", m.session.PageLabel()))
		stats = append(stats, fmt.Sprintf("Text %d%%", m.session.Display().Percent()))
		if state.IsDarkMode {
			stats = append(stats, "Dark")
		}
		if state.IsReading {
			stats = append(stats, "Reading aloud")
		}
	}
	if m.profile.ChildName != "" && m.mounted != nav.RouteOnboarding {
		stats = append(stats, "Reader "+m.profile.ChildName)
	}
	stats = append(stats, m.jobStatusBadges()...)
	return statusBarStyle.Render(strings.Join(stats, "  •  "))
}

func (m *model) routeLabel() string {
	switch m.mounted {
	case nav.RouteOnboarding:
		if m.wizard != nil {
			return fmt.Sprintf("Welcome %d/%d", m.wizard.Step()+1, onboarding.StepCount)
		}
		return "Welcome"
	case nav.RouteHome:
		return "Home"
	case nav.RouteViewAll:
		return m.listTitle
	case nav.RouteSearch:
		return "Search"
	case nav.RouteBookDetail:
		return "Book"
	case nav.RouteStory:
		return "Story"
	}
	return string(m.mounted)
}

func (m *model) jobStatusBadges() []string {
	if len(m.runningJobs) == 0 {
		return nil
	}
	ids := make([]string, 0, len(m.runningJobs))
	for id := range m.runningJobs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	badges := make([]string, 0, len(ids))
	for _, id := range ids {
		job := m.runningJobs[id]
		badges = append(badges, fmt.Sprintf("%s %s", job.Kind, job.Status))
	}
	return badges
}

// screenKeys lists the bindings that do something on the mounted screen.
func (m *model) screenKeys() screenKeys {
	k := m.keys
	switch m.mounted {
	case nav.RouteOnboarding:
		return screenKeys{
			short: []key.Binding{k.Open, k.Back, k.Help},
			full:  [][]key.Binding{{k.Up, k.Down, k.Left, k.Right}, {k.Select, k.Open, k.Back}},
		}
	case nav.RouteHome:
		return screenKeys{
			short: []key.Binding{k.Open, k.ViewAll, k.Search, k.Help, k.Quit},
			full:  [][]key.Binding{{k.Up, k.Down, k.Left, k.Right}, {k.Open, k.ViewAll, k.Search}, {k.Help, k.Quit}},
		}
	case nav.RouteViewAll:
		return screenKeys{
			short: []key.Binding{k.Open, k.Back, k.Search, k.Help},
			full:  [][]key.Binding{{k.Up, k.Down}, {k.Open, k.Back, k.Search}, {k.Help, k.Quit}},
		}
	case nav.RouteSearch:
		return screenKeys{
			short: []key.Binding{k.Open, k.Suggest, k.Back},
			full:  [][]key.Binding{{k.Up, k.Down}, {k.Open, k.Suggest, k.Back}},
		}
	case nav.RouteBookDetail:
		return screenKeys{
			short: []key.Binding{k.Open, k.Back, k.Quit},
			full:  [][]key.Binding{{k.Open, k.Back}, {k.Help, k.Quit}},
		}
	case nav.RouteStory:
		if m.session != nil && m.session.Display().SettingsOpen() {
			return screenKeys{
				short: []key.Binding{k.FontUp, k.FontDown, k.Dark, k.Settings},
				full:  [][]key.Binding{{k.FontUp, k.FontDown}, {k.Dark, k.Settings}},
			}
		}
		return screenKeys{
			short: []key.Binding{k.Previous, k.Next, k.ReadAloud, k.Settings, k.Back},
			full:  [][]key.Binding{{k.Previous, k.Next, k.DragLeft, k.DragRight}, {k.ReadAloud, k.Settings}, {k.Back, k.Help, k.Quit}},
		}
	}
	return screenKeys{short: []key.Binding{k.Quit}}
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}

func renderLogo() string {
	if len(logoArtLines) == 0 {
		return ""
	}
	width := 0
	lineRunes := make([][]rune, len(logoArtLines))
	for i, line := range logoArtLines {
		runes := []rune(line)
		lineRunes[i] = runes
		if len(runes) > width {
			width = len(runes)
		}
	}
	width++
	height := len(logoArtLines) + 1

	type cell struct {
		r     rune
		style lipgloss.Style
	}

	grid := make([][]cell, height)
	for i := range grid {
		grid[i] = make([]cell, width)
	}

	// shadow first, then the face on top of it
	for y, runes := range lineRunes {
		for x, r := range runes {
			if r != ' ' && y+1 < height && x+1 < width {
				grid[y+1][x+1] = cell{r: r, style: logoShadowStyle}
			}
		}
	}
	for y, runes := range lineRunes {
		for x, r := range runes {
			if r != ' ' {
				grid[y][x] = cell{r: r, style: logoFaceStyle}
			}
		}
	}

	lines := make([]string, height)
	for y, row := range grid {
		var b strings.Builder
		for _, c := range row {
			if c.r == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteString(c.style.Render(string(c.r)))
		}
		lines[y] = b.String()
	}
	return logoContainerStyle.Render(strings.Join(lines, "\n"))
}

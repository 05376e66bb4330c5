package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/storynook/internal/gesture"
	"github.com/csheth/storynook/internal/onboarding"
	"github.com/csheth/storynook/internal/profile"
)

func (m *model) mountOnboarding() tea.Cmd {
	m.carousel = &carousel{}
	m.wizard = onboarding.New(m.nav, m.carousel, m.logger)
	m.cardCursor = 0
	m.stepDots.Page = 0
	m.nameInput.Reset()
	m.nameInput.Focus()
	return textinput.Blink
}

// syncOnboarding follows the wizard after an action: the card cursor resets
// when the carousel turns and the name field only has focus on its own step.
func (m *model) syncOnboarding(turns int) {
	if m.wizard == nil || m.wizard.Completed() {
		return
	}
	step := m.wizard.Step()
	m.stepDots.Page = int(m.carousel.shown)
	turned := m.carousel.turns != turns
	if turned {
		m.cardCursor = 0
		m.infoMessage = ""
	}
	if step == onboarding.StepName {
		if turned {
			m.nameInput.SetValue(m.wizard.Draft().ChildName)
		}
		m.nameInput.Focus()
	} else {
		m.nameInput.Blur()
	}
}

func stepCards(step onboarding.Step) []profile.Card {
	switch step {
	case onboarding.StepAge:
		return profile.AgeCards
	case onboarding.StepInterests:
		return profile.InterestCards
	case onboarding.StepAvatar:
		return profile.AvatarCards
	}
	return nil
}

func (m *model) handleOnboardingKey(msg tea.KeyMsg) tea.Cmd {
	if m.wizard == nil {
		return nil
	}
	turns := m.carousel.turns
	defer m.syncOnboarding(turns)

	if m.wizard.Step() == onboarding.StepName {
		switch msg.Type {
		case tea.KeyEnter:
			m.wizard.Continue()
			return nil
		case tea.KeyEsc:
			return m.goBack()
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		m.wizard.SetName(m.nameInput.Value())
		return cmd
	}

	cards := stepCards(m.wizard.Step())
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Back), msg.Type == tea.KeyBackspace:
		m.wizard.Back()
	case key.Matches(msg, m.keys.Left):
		m.moveCardCursor(-1, len(cards))
	case key.Matches(msg, m.keys.Right):
		m.moveCardCursor(1, len(cards))
	case key.Matches(msg, m.keys.Up):
		m.moveCardCursor(-cardsPerRow, len(cards))
	case key.Matches(msg, m.keys.Down):
		m.moveCardCursor(cardsPerRow, len(cards))
	case key.Matches(msg, m.keys.Select):
		m.chooseCard(cards)
	case key.Matches(msg, m.keys.Open):
		if !m.wizard.CanContinue() && m.wizard.Step() != onboarding.StepInterests {
			m.chooseCard(cards)
		}
		m.wizard.Continue()
	}
	return nil
}

func (m *model) moveCardCursor(delta, count int) {
	next := m.cardCursor + delta
	if next < 0 || next >= count {
		return
	}
	m.cardCursor = next
}

func (m *model) chooseCard(cards []profile.Card) {
	if m.cardCursor >= len(cards) {
		return
	}
	card := cards[m.cardCursor]
	switch m.wizard.Step() {
	case onboarding.StepAge:
		m.wizard.SelectAge(profile.AgeGroup(card.ID))
	case onboarding.StepInterests:
		id := profile.InterestID(card.ID)
		if !m.wizard.ToggleInterest(id) {
			m.infoMessage = fmt.Sprintf("You can pick up to %d interests.", profile.MaxInterests)
			return
		}
		m.infoMessage = ""
	case onboarding.StepAvatar:
		m.wizard.SelectAvatar(profile.AvatarID(card.ID))
	}
}

func (m *model) handleOnboardingMouse(msg tea.MouseMsg) tea.Cmd {
	if m.wizard == nil {
		return nil
	}
	switch msg.Type {
	case tea.MouseLeft:
		if !m.gestures.Active() {
			m.gestures.Press(msg.X, msg.Y)
		}
	case tea.MouseRelease:
		dx, dy, ok := m.gestures.Release(msg.X, msg.Y)
		if !ok {
			return nil
		}
		turns := m.carousel.turns
		m.wizard.Swipe(gesture.Classify(dx, dy))
		m.syncOnboarding(turns)
	}
	return nil
}

func (m *model) chosen(card profile.Card, draft profile.Answers) bool {
	switch m.wizard.Step() {
	case onboarding.StepAge:
		return draft.ChildAge == profile.AgeGroup(card.ID)
	case onboarding.StepInterests:
		return draft.Interests.Has(profile.InterestID(card.ID))
	case onboarding.StepAvatar:
		return draft.Avatar == profile.AvatarID(card.ID)
	}
	return false
}

func (m *model) viewOnboarding() string {
	if m.wizard == nil {
		return ""
	}
	width := min(m.layout.viewportWidth, cardsPerRow*(cardWidth+4))
	var cb contentBuilder
	cb.WriteString(progressBar(m.wizard.Progress(), width))
	cb.WriteRune('\n')
	cb.WriteString(m.stepDots.View())
	cb.WriteString("\n\n")
	cb.WriteString(titleStyle.Render(wordwrapTitle(m.wizard.Title(), width)))
	cb.WriteRune('\n')
	cb.WriteString(subtitleStyle.Render(m.wizard.Subtitle()))
	cb.WriteString("\n\n")

	if m.wizard.Step() == onboarding.StepName {
		cb.WriteString(m.nameInput.View())
	} else {
		cb.WriteString(m.renderCardGrid(stepCards(m.wizard.Step())))
		if m.wizard.Step() == onboarding.StepInterests {
			cb.WriteRune('\n')
			cb.WriteString(helperStyle.Render(fmt.Sprintf("%d of %d chosen", m.wizard.Draft().Interests.Len(), profile.MaxInterests)))
		}
	}
	cb.WriteString("\n\n")
	if m.wizard.CanContinue() {
		cb.WriteString(buttonStyle.Render("Continue"))
	} else {
		cb.WriteString(buttonDisabledStyle.Render("Continue"))
	}
	cb.WriteRune('\n')
	cb.WriteString(helperStyle.Render(m.onboardingHint()))
	return cb.String()
}

func (m *model) onboardingHint() string {
	if m.wizard.Step() == onboarding.StepName {
		return "Type a name • Enter: continue • Esc: quit"
	}
	return "Arrows: move • Space: choose • Enter: continue • Esc: back • swipe with the mouse"
}

func (m *model) renderCardGrid(cards []profile.Card) string {
	draft := m.wizard.Draft()
	var rows []string
	for start := 0; start < len(cards); start += cardsPerRow {
		end := min(start+cardsPerRow, len(cards))
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			card := cards[i]
			chosen := m.chosen(card, draft)
			label := card.Title
			if chosen {
				label = "✓ " + label
			}
			body := label
			if card.Caption != "" {
				body += "\n" + helperStyle.Render(card.Caption)
			}
			style := cardStyle
			switch {
			case chosen:
				style = cardChosenStyle
			case i == m.cardCursor:
				style = cardSelectedStyle
			}
			if i == m.cardCursor && chosen {
				style = style.Copy().Bold(true)
			}
			cells = append(cells, style.Render(body))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func wordwrapTitle(title string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(title)
}

// Package onboarding implements the four-step profile wizard shown on first
// launch.
package onboarding

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/csheth/storynook/internal/gesture"
	"github.com/csheth/storynook/internal/nav"
	"github.com/csheth/storynook/internal/profile"
)

// Step is a wizard page.
type Step int

const (
	StepName Step = iota
	StepAge
	StepInterests
	StepAvatar
)

// StepCount is the number of steps.
const StepCount = 4

func (s Step) String() string {
	switch s {
	case StepName:
		return "name"
	case StepAge:
		return "age"
	case StepInterests:
		return "interests"
	case StepAvatar:
		return "avatar"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Carousel is the surface that shows one step at a time.
type Carousel interface {
	PageTo(step Step)
}

// Valid reports whether the field owned by step holds an acceptable value in
// answers.
func Valid(step Step, answers profile.Answers) bool {
	switch step {
	case StepName:
		return strings.TrimSpace(answers.ChildName) != ""
	case StepAge:
		return profile.ValidAge(answers.ChildAge)
	case StepInterests:
		n := answers.Interests.Len()
		return n >= 1 && n <= profile.MaxInterests
	case StepAvatar:
		return profile.ValidAvatar(answers.Avatar)
	default:
		return false
	}
}

// merge copies only the field owned by step from partial into answers.
func merge(step Step, answers *profile.Answers, partial profile.Answers) {
	switch step {
	case StepName:
		answers.ChildName = strings.TrimSpace(partial.ChildName)
	case StepAge:
		answers.ChildAge = partial.ChildAge
	case StepInterests:
		answers.Interests = partial.Interests.Clone()
	case StepAvatar:
		answers.Avatar = partial.Avatar
	}
}

// Wizard walks the child through name, age, interests and avatar. Each step
// edits a draft of its own field; Continue commits that field into the
// accumulated answers. Completing the last step replaces the wizard with the
// home screen.
type Wizard struct {
	nav      nav.Navigator
	carousel Carousel
	logger   *log.Logger

	step      Step
	draft     profile.Answers
	answers   profile.Answers
	completed bool
}

// New returns a wizard on the first step.
func New(navigator nav.Navigator, carousel Carousel, logger *log.Logger) *Wizard {
	if logger == nil {
		logger = log.Default()
	}
	return &Wizard{nav: navigator, carousel: carousel, logger: logger}
}

func (w *Wizard) Step() Step      { return w.step }
func (w *Wizard) Completed() bool { return w.completed }

// Draft returns the in-progress input, including uncommitted edits.
func (w *Wizard) Draft() profile.Answers { return w.draft.Clone() }

// Answers returns the committed answers.
func (w *Wizard) Answers() profile.Answers { return w.answers.Clone() }

// SetName edits the name draft. Ignored outside the name step.
func (w *Wizard) SetName(name string) {
	if w.editable(StepName) {
		w.draft.ChildName = name
	}
}

// SelectAge edits the age draft. Ignored outside the age step.
func (w *Wizard) SelectAge(age profile.AgeGroup) {
	if w.editable(StepAge) {
		w.draft.ChildAge = age
	}
}

// ToggleInterest flips an interest in the draft. It returns false when the
// toggle was rejected, either because the set is full or the wizard is on
// another step.
func (w *Wizard) ToggleInterest(id profile.InterestID) bool {
	if !w.editable(StepInterests) {
		return false
	}
	return w.draft.Interests.Toggle(id)
}

// SelectAvatar edits the avatar draft. Ignored outside the avatar step.
func (w *Wizard) SelectAvatar(id profile.AvatarID) {
	if w.editable(StepAvatar) {
		w.draft.Avatar = id
	}
}

func (w *Wizard) editable(step Step) bool {
	return !w.completed && w.step == step
}

// CanContinue reports whether the current step's continue control is enabled.
func (w *Wizard) CanContinue() bool {
	return !w.completed && Valid(w.step, w.draft)
}

// Continue commits the current step. The interests step asks for the avatar
// step by index.
func (w *Wizard) Continue() bool {
	if w.step == StepInterests {
		return w.Jump(w.step, StepAvatar, w.draft)
	}
	return w.Advance(w.step, w.draft)
}

// Advance commits from's field out of partial and moves to the next step.
func (w *Wizard) Advance(from Step, partial profile.Answers) bool {
	return w.Jump(from, from+1, partial)
}

// Jump commits from's field out of partial and moves to target. A target at
// or beyond StepCount completes the wizard. Targets must lie ahead of from;
// going back is Retreat's job. Stale or invalid requests are ignored.
func (w *Wizard) Jump(from, target Step, partial profile.Answers) bool {
	if w.completed || from != w.step || target <= from {
		return false
	}
	if !Valid(from, partial) {
		return false
	}
	merge(from, &w.answers, partial)
	merge(from, &w.draft, partial)

	if int(target) >= StepCount {
		w.completed = true
		final := w.answers.Clone()
		w.logger.Info("onboarding complete", "name", final.ChildName, "age", final.ChildAge, "interests", final.Interests.Len(), "avatar", final.Avatar)
		w.nav.Replace(nav.Home{Profile: final})
		return true
	}
	w.step = target
	w.logger.Debug("onboarding step", "from", from, "to", target)
	if w.carousel != nil {
		w.carousel.PageTo(target)
	}
	return true
}

// Retreat moves back from from to the previous step.
func (w *Wizard) Retreat(from Step) bool {
	if w.completed || from != w.step || from <= 0 {
		return false
	}
	w.step = from - 1
	w.logger.Debug("onboarding step", "from", from, "to", w.step)
	if w.carousel != nil {
		w.carousel.PageTo(w.step)
	}
	return true
}

// Back retreats from the current step.
func (w *Wizard) Back() bool {
	return w.Retreat(w.step)
}

// Swipe applies a released gesture. The name step's text field owns
// horizontal gestures, so swipes are inert there.
func (w *Wizard) Swipe(direction gesture.Direction) bool {
	if w.completed || w.step == StepName {
		return false
	}
	switch direction {
	case gesture.Next:
		if !w.CanContinue() {
			return false
		}
		return w.Continue()
	case gesture.Previous:
		return w.Back()
	default:
		return false
	}
}

// Progress is the fraction of the wizard the current step represents.
func (w *Wizard) Progress() float64 {
	if w.completed {
		return 1
	}
	return float64(w.step+1) / StepCount
}

// Title returns the heading for the current step, personalised with the
// committed name.
func (w *Wizard) Title() string {
	name := w.answers.ChildName
	switch w.step {
	case StepName:
		return "What is the name of the child who will be on this adventure"
	case StepAge:
		return fmt.Sprintf("How old is %s?", name)
	case StepInterests:
		return fmt.Sprintf("What are %s's interests?", name)
	default:
		return fmt.Sprintf("Choose an avatar for %s", name)
	}
}

// Subtitle returns the helper line for the current step.
func (w *Wizard) Subtitle() string {
	switch w.step {
	case StepName:
		return "Child Name"
	case StepAge:
		return "We will personalize the experience for that age."
	case StepInterests:
		return "Choose top 3 favorite topics to personalize your learning"
	default:
		return "Choose a fun character to start your journey!"
	}
}

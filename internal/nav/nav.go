// Package nav carries the screen stack and the typed parameters handed from
// one screen to the next.
package nav

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/csheth/storynook/internal/profile"
)

// ErrInvalidParams is returned by Params.Validate when a screen receives
// parameters it cannot render.
var ErrInvalidParams = errors.New("nav: invalid route params")

// Route names a screen.
type Route string

const (
	RouteSplash     Route = "splash"
	RouteOnboarding Route = "onboarding"
	RouteHome       Route = "home"
	RouteViewAll    Route = "view-all"
	RouteSearch     Route = "search"
	RouteBookDetail Route = "book-detail"
	RouteStory      Route = "story"
)

// Params is the per-route parameter set. Each route has exactly one concrete
// Params type.
type Params interface {
	Route() Route
	Validate() error
}

// Navigator is the collaborator screens use to move between routes.
type Navigator interface {
	Navigate(Params)
	Replace(Params)
	Back()
	CanGoBack() bool
}

type Splash struct{}

func (Splash) Route() Route    { return RouteSplash }
func (Splash) Validate() error { return nil }

type Onboarding struct{}

func (Onboarding) Route() Route    { return RouteOnboarding }
func (Onboarding) Validate() error { return nil }

// Home receives the finalized onboarding answers.
type Home struct {
	Profile profile.Answers
}

func (Home) Route() Route { return RouteHome }

func (h Home) Validate() error {
	if err := h.Profile.Validate(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidParams, RouteHome, err)
	}
	return nil
}

// ViewAll lists a shelf, or the whole catalog when ShelfID is empty.
type ViewAll struct {
	ShelfID string
	Title   string
}

func (ViewAll) Route() Route    { return RouteViewAll }
func (ViewAll) Validate() error { return nil }

type Search struct {
	Query string
}

func (Search) Route() Route    { return RouteSearch }
func (Search) Validate() error { return nil }

type BookDetail struct {
	BookID   string
	Title    string
	ImageRef string
}

func (BookDetail) Route() Route { return RouteBookDetail }

func (b BookDetail) Validate() error {
	if strings.TrimSpace(b.BookID) == "" {
		return fmt.Errorf("%w: %s: missing book id", ErrInvalidParams, RouteBookDetail)
	}
	return nil
}

type Story struct {
	BookID string
	Title  string
}

func (Story) Route() Route { return RouteStory }

func (s Story) Validate() error {
	if strings.TrimSpace(s.BookID) == "" {
		return fmt.Errorf("%w: %s: missing book id", ErrInvalidParams, RouteStory)
	}
	return nil
}

// Stack is an in-memory Navigator. The root entry can be replaced but never
// popped.
type Stack struct {
	entries []Params
	logger  *log.Logger
}

// NewStack returns a stack whose only entry is root.
func NewStack(root Params, logger *log.Logger) *Stack {
	if logger == nil {
		logger = log.Default()
	}
	return &Stack{entries: []Params{root}, logger: logger}
}

func (s *Stack) Navigate(p Params) {
	s.logger.Info("navigate", "route", p.Route(), "depth", len(s.entries)+1)
	s.entries = append(s.entries, p)
}

func (s *Stack) Replace(p Params) {
	s.logger.Info("replace", "from", s.Current().Route(), "route", p.Route())
	s.entries[len(s.entries)-1] = p
}

func (s *Stack) Back() {
	if !s.CanGoBack() {
		return
	}
	s.entries[len(s.entries)-1] = nil
	s.entries = s.entries[:len(s.entries)-1]
	s.logger.Info("back", "route", s.Current().Route(), "depth", len(s.entries))
}

func (s *Stack) CanGoBack() bool {
	return len(s.entries) > 1
}

// Current returns the top of the stack.
func (s *Stack) Current() Params {
	return s.entries[len(s.entries)-1]
}

// Depth returns the number of entries on the stack.
func (s *Stack) Depth() int {
	return len(s.entries)
}

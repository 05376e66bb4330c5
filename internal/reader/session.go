package reader

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/csheth/storynook/internal/catalog"
	"github.com/csheth/storynook/internal/speech"
)

// Options configures a new session.
type Options struct {
	PageWidth  float64
	FontSize   int
	DarkMode   bool
	SpeechRate float64
	Logger     *log.Logger
}

// State is a snapshot of a session.
type State struct {
	CurrentPageIndex int
	IsReading        bool
	IsSettingsOpen   bool
	FontSize         int
	IsDarkMode       bool
}

// Session is the transient state of one open story. It is created when the
// reader mounts and discarded by Close.
type Session struct {
	story    catalog.Story
	pager    *Pager
	narrator *Narrator
	display  *Display
}

// NewSession opens story on its first page.
func NewSession(story catalog.Story, surface Surface, speaker speech.Speaker, opts Options) *Session {
	if opts.FontSize == 0 {
		opts.FontSize = DefaultFontSize
	}
	narrator := NewNarrator(speaker, opts.SpeechRate, opts.Logger)
	return &Session{
		story:    story,
		narrator: narrator,
		pager:    NewPager(len(story.Pages), opts.PageWidth, surface, narrator),
		display:  NewDisplay(opts.FontSize, opts.DarkMode),
	}
}

func (s *Session) GoToNext() bool     { return s.pager.Next() }
func (s *Session) GoToPrevious() bool { return s.pager.Previous() }

// ScrollChanged reconciles a scroll offset reported by the surface.
func (s *Session) ScrollChanged(offset float64) bool {
	return s.pager.ScrollChanged(offset)
}

// ToggleReadAloud reads the current page, or stops reading.
func (s *Session) ToggleReadAloud() {
	s.narrator.Toggle(s.CurrentPage().Text)
}

// Close tears the session down, stopping any narration.
func (s *Session) Close() {
	s.narrator.Cancel()
}

func (s *Session) Story() catalog.Story { return s.story }
func (s *Session) Pager() *Pager        { return s.pager }
func (s *Session) Display() *Display    { return s.display }
func (s *Session) Reading() bool        { return s.narrator.Reading() }

// CurrentPage returns the page being shown.
func (s *Session) CurrentPage() catalog.StoryPage {
	if len(s.story.Pages) == 0 {
		return catalog.StoryPage{}
	}
	return s.story.Pages[s.pager.Index()]
}

// PageLabel formats the page counter, e.g. "02/06".
func (s *Session) PageLabel() string {
	return fmt.Sprintf("%02d/%02d", s.pager.Index()+1, s.pager.Count())
}

func (s *Session) State() State {
	return State{
		CurrentPageIndex: s.pager.Index(),
		IsReading:        s.narrator.Reading(),
		IsSettingsOpen:   s.display.SettingsOpen(),
		FontSize:         s.display.FontSize(),
		IsDarkMode:       s.display.Dark(),
	}
}

package reader

import (
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/csheth/storynook/internal/catalog"
	"github.com/csheth/storynook/internal/speech"
)

type scrollCall struct {
	x        float64
	animated bool
}

type recordingSurface struct {
	calls []scrollCall
}

func (s *recordingSurface) ScrollTo(x float64, animated bool) {
	s.calls = append(s.calls, scrollCall{x: x, animated: animated})
}

type fakeSpeaker struct {
	speaks   []string
	stops    int
	err      error
	lastOpts speech.Options
}

func (f *fakeSpeaker) Speak(text string, opts speech.Options) error {
	if f.err != nil {
		return f.err
	}
	f.speaks = append(f.speaks, text)
	f.lastOpts = opts
	return nil
}

func (f *fakeSpeaker) Stop() { f.stops++ }

type countingCanceler struct{ calls int }

func (c *countingCanceler) Cancel() { c.calls++ }

var quietLogger = log.New(io.Discard)

func testStory(pages int) catalog.Story {
	story := catalog.Story{ID: "s", Title: "Story"}
	for i := 0; i < pages; i++ {
		story.Pages = append(story.Pages, catalog.StoryPage{ID: string(rune('a' + i)), Text: "page " + string(rune('a'+i))})
	}
	return story
}

func TestPagerStaysInBounds(t *testing.T) {
	surface := &recordingSurface{}
	pager := NewPager(6, 80, surface, &countingCanceler{})
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		switch rng.Intn(3) {
		case 0:
			pager.Next()
		case 1:
			pager.Previous()
		default:
			pager.ScrollChanged(rng.Float64()*1000 - 300)
		}
		if idx := pager.Index(); idx < 0 || idx > 5 {
			t.Fatalf("index escaped bounds after %d operations: %d", i, idx)
		}
	}
}

func TestPagerBoundaryNoOps(t *testing.T) {
	surface := &recordingSurface{}
	canceler := &countingCanceler{}
	pager := NewPager(2, 80, surface, canceler)
	if pager.Previous() {
		t.Fatal("previous on first page should be a no-op")
	}
	if len(surface.calls) != 0 || canceler.calls != 0 {
		t.Fatalf("no-op should not scroll or cancel: scrolls=%d cancels=%d", len(surface.calls), canceler.calls)
	}
	if !pager.Next() {
		t.Fatal("next from first page should move")
	}
	if pager.Next() {
		t.Fatal("next on last page should be a no-op")
	}
	if pager.Index() != 1 {
		t.Fatalf("index changed by no-op: %d", pager.Index())
	}
	if len(surface.calls) != 1 {
		t.Fatalf("expected exactly one scroll command, got %d", len(surface.calls))
	}
	if got := surface.calls[0]; got.x != 80 || !got.animated {
		t.Fatalf("unexpected scroll command %+v", got)
	}
	if !pager.IsLast() || pager.IsFirst() {
		t.Fatal("boundary flags out of sync")
	}
}

func TestPagerScrollChanged(t *testing.T) {
	cases := []struct {
		name    string
		offset  float64
		want    int
		changed bool
	}{
		{name: "rounds down", offset: 119, want: 1, changed: true},
		{name: "rounds up", offset: 121, want: 2, changed: true},
		{name: "same page", offset: 10, want: 0, changed: false},
		{name: "overscroll before start", offset: -200, want: 0, changed: false},
		{name: "overscroll past end", offset: 5000, want: 3, changed: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			surface := &recordingSurface{}
			canceler := &countingCanceler{}
			pager := NewPager(4, 80, surface, canceler)
			if changed := pager.ScrollChanged(tc.offset); changed != tc.changed {
				t.Fatalf("changed mismatch: got %v want %v", changed, tc.changed)
			}
			if pager.Index() != tc.want {
				t.Fatalf("index mismatch: got %d want %d", pager.Index(), tc.want)
			}
			if canceler.calls != 0 || len(surface.calls) != 0 {
				t.Fatal("scroll-driven changes must not cancel narration or issue scroll commands")
			}
		})
	}
}

func TestPagerSetPageWidthRealigns(t *testing.T) {
	surface := &recordingSurface{}
	pager := NewPager(3, 80, surface, nil)
	pager.Next()
	pager.SetPageWidth(100)
	last := surface.calls[len(surface.calls)-1]
	if last.x != 100 || last.animated {
		t.Fatalf("resize should jump to the current page, got %+v", last)
	}
}

func TestNavigationWhileReadingStopsOnce(t *testing.T) {
	speaker := &fakeSpeaker{}
	session := NewSession(testStory(3), &recordingSurface{}, speaker, Options{PageWidth: 80, Logger: quietLogger})
	session.ToggleReadAloud()
	if !session.Reading() {
		t.Fatal("toggle should start reading")
	}
	session.GoToNext()
	if session.Reading() {
		t.Fatal("explicit navigation should stop reading")
	}
	if speaker.stops != 1 {
		t.Fatalf("expected exactly one stop, got %d", speaker.stops)
	}

	session.ToggleReadAloud()
	session.GoToPrevious()
	if session.Reading() || speaker.stops != 2 {
		t.Fatalf("previous should stop reading once, stops=%d", speaker.stops)
	}
}

func TestScrollDoesNotStopReading(t *testing.T) {
	speaker := &fakeSpeaker{}
	session := NewSession(testStory(3), &recordingSurface{}, speaker, Options{PageWidth: 80, Logger: quietLogger})
	session.ToggleReadAloud()
	session.ScrollChanged(160)
	if !session.Reading() || speaker.stops != 0 {
		t.Fatal("scroll-driven page changes keep narration playing")
	}
	if session.State().CurrentPageIndex != 2 {
		t.Fatalf("scroll should adopt page 2, got %d", session.State().CurrentPageIndex)
	}
}

func TestToggleReadAloudTwice(t *testing.T) {
	speaker := &fakeSpeaker{}
	narrator := NewNarrator(speaker, 0, quietLogger)
	narrator.Toggle("Mia felt a little shy")
	if !narrator.Reading() || len(speaker.speaks) != 1 {
		t.Fatalf("first toggle should speak once, speaks=%d", len(speaker.speaks))
	}
	if speaker.lastOpts.Rate != DefaultRate {
		t.Fatalf("unexpected rate %v", speaker.lastOpts.Rate)
	}
	narrator.Toggle("Mia felt a little shy")
	if narrator.Reading() {
		t.Fatal("second toggle should stop reading")
	}
	if len(speaker.speaks) != 1 || speaker.stops != 1 {
		t.Fatalf("expected one speak and one stop, got speaks=%d stops=%d", len(speaker.speaks), speaker.stops)
	}
}

func TestNarratorIgnoresStaleCallbacks(t *testing.T) {
	speaker := &fakeSpeaker{}
	narrator := NewNarrator(speaker, 0, quietLogger)
	narrator.Toggle("first")
	stale := speaker.lastOpts
	narrator.Toggle("first")
	narrator.Toggle("second")
	stale.OnStopped()
	if !narrator.Reading() {
		t.Fatal("callback from an earlier utterance must not clear the current one")
	}
	speaker.lastOpts.OnDone()
	if narrator.Reading() {
		t.Fatal("completion of the current utterance should clear reading")
	}
	speaker.lastOpts.OnStopped()
	if narrator.Reading() {
		t.Fatal("duplicate terminal callbacks should be harmless")
	}
}

func TestNarratorSpeakFailureKeepsIdle(t *testing.T) {
	speaker := &fakeSpeaker{err: speech.ErrUnavailable}
	narrator := NewNarrator(speaker, 0, quietLogger)
	narrator.Toggle("hello")
	if narrator.Reading() {
		t.Fatal("failed speak must not leave reading set")
	}
	if len(speaker.speaks) != 0 {
		t.Fatal("failed speak should not be recorded")
	}
}

func TestDisplayFontFloor(t *testing.T) {
	display := NewDisplay(DefaultFontSize, false)
	want := []int{14, 12, 12}
	for i, size := range want {
		display.DecreaseFontSize()
		if display.FontSize() != size {
			t.Fatalf("step %d: got %d want %d", i, display.FontSize(), size)
		}
	}
	display.IncreaseFontSize()
	display.IncreaseFontSize()
	display.IncreaseFontSize()
	if display.FontSize() != 18 || display.Percent() != 113 {
		t.Fatalf("unexpected size %d (%d%%)", display.FontSize(), display.Percent())
	}
	if NewDisplay(8, false).FontSize() != MinFontSize {
		t.Fatal("initial size should be clamped to the floor")
	}
}

func TestSettingsDoNotTouchPagination(t *testing.T) {
	speaker := &fakeSpeaker{}
	session := NewSession(testStory(3), &recordingSurface{}, speaker, Options{PageWidth: 80, Logger: quietLogger})
	session.GoToNext()
	session.ToggleReadAloud()
	display := session.Display()
	display.OpenSettings()
	display.ToggleDarkMode()
	display.CloseSettings()
	state := session.State()
	if state.CurrentPageIndex != 1 || !state.IsReading || !state.IsDarkMode || state.IsSettingsOpen {
		t.Fatalf("unexpected state %+v", state)
	}
	if session.PageLabel() != "02/03" {
		t.Fatalf("unexpected page label %q", session.PageLabel())
	}
	if speaker.speaks[0] != "page b" {
		t.Fatalf("read aloud should use the current page, got %q", speaker.speaks[0])
	}
	session.Close()
	if session.Reading() {
		t.Fatal("close should stop narration")
	}
}

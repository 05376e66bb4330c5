package tuitest

import (
	"bytes"
	"testing"
)

func TestParseFramesSplitsOnClear(t *testing.T) {
	raw := []byte("\x1b[2J\x1b[HHello   \r\n\x1b[1mworld\x1b[0m\r\n\r\n\x1b[2J\x1b[HHow old is Mia?\r\n")
	frames := parseFrames(raw)
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if frames[0].Plain != "Hello\nworld" {
		t.Fatalf("unexpected first frame %q", frames[0].Plain)
	}
	rec := &Recording{Frames: frames}
	last, ok := rec.FinalFrame()
	if !ok || last.Plain != "How old is Mia?" || last.Index != 1 {
		t.Fatalf("unexpected final frame %+v", last)
	}
}

func TestStripANSIRemovesOSC(t *testing.T) {
	got := stripANSI("\x1b]11;rgb:0000/0000/0000\x07\x1b[38;5;208mstorynook\x1b[0m")
	if got != "storynook" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestFinalFrameEmpty(t *testing.T) {
	var rec *Recording
	if _, ok := rec.FinalFrame(); ok {
		t.Fatal("nil recording should have no frames")
	}
}

func TestFramePageCounter(t *testing.T) {
	tests := []struct {
		name        string
		plain       string
		page, total int
		ok          bool
	}{
		{name: "header", plain: "Mia's New Friends  01/06", page: 1, total: 6, ok: true},
		{name: "last wins", plain: "01/06\nstory  02/06", page: 2, total: 6, ok: true},
		{name: "none", plain: "How old is Mia?"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page, total, ok := Frame{Plain: tc.plain}.PageCounter()
			if ok != tc.ok || page != tc.page || total != tc.total {
				t.Fatalf("PageCounter() = %d, %d, %v; want %d, %d, %v", page, total, ok, tc.page, tc.total, tc.ok)
			}
		})
	}
}

func TestScreenLogAnswersQueries(t *testing.T) {
	var replies bytes.Buffer
	screen := newScreenLog(&replies)
	_, _ = screen.Write([]byte("\x1b]11"))
	_, _ = screen.Write([]byte(";?\x07\x1b[6n"))
	want := "\x1b]11;rgb:ffff/fbfb/f2f2\x07\x1b[1;1R"
	if replies.String() != want {
		t.Fatalf("unexpected replies %q", replies.String())
	}
}

func TestScreenLogSinceInput(t *testing.T) {
	screen := newScreenLog(&bytes.Buffer{})
	_, _ = screen.Write([]byte("Child Name\r\n"))
	screen.markInput()
	_, _ = screen.Write([]byte("\x1b[1mHow old is Mia?\x1b[0m\r\n"))
	frame := screen.sinceInput()
	if frame.Contains("Child Name") || !frame.Contains("How old is Mia?") {
		t.Fatalf("unexpected frame %q", frame.Plain)
	}
}

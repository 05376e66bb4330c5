package tuitest

import (
	"regexp"
	"strconv"
	"strings"
)

// Frame is a piece of terminal output with escape sequences removed.
type Frame struct {
	Index int
	Plain string
}

var (
	frameSeparator = regexp.MustCompile(`\x1b\[[0-9;]*J`)
	csiPattern     = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)
	oscPattern     = regexp.MustCompile(`\x1b\][^\x07\x1b]*(\x07|\x1b\\)`)
	pageCounter    = regexp.MustCompile(`\b(\d{2})/(\d{2})\b`)
)

// Contains reports whether text was drawn in the frame.
func (f Frame) Contains(text string) bool {
	return strings.Contains(f.Plain, text)
}

// PageCounter returns the last reader page counter ("03/06") in the frame.
func (f Frame) PageCounter() (page, total int, ok bool) {
	matches := pageCounter.FindAllStringSubmatch(f.Plain, -1)
	if len(matches) == 0 {
		return 0, 0, false
	}
	last := matches[len(matches)-1]
	page, _ = strconv.Atoi(last[1])
	total, _ = strconv.Atoi(last[2])
	return page, total, true
}

// parseFrames splits a session's output at each screen clear.
func parseFrames(raw []byte) []Frame {
	var frames []Frame
	for _, segment := range frameSeparator.Split(string(raw), -1) {
		plain := plainText([]byte(segment))
		if strings.TrimSpace(plain) == "" {
			continue
		}
		frames = append(frames, Frame{Index: len(frames), Plain: plain})
	}
	return frames
}

// FinalFrame returns the last frame drawn, if any.
func (r *Recording) FinalFrame() (Frame, bool) {
	if r == nil || len(r.Frames) == 0 {
		return Frame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}

func plainText(raw []byte) string {
	s := strings.ReplaceAll(string(raw), "\r", "")
	s = strings.Trim(s, "\x00")
	return normalizeLines(stripANSI(s))
}

func stripANSI(s string) string {
	s = oscPattern.ReplaceAllString(s, "")
	s = csiPattern.ReplaceAllString(s, "")
	return strings.NewReplacer("\x0e", "", "\x0f", "").Replace(s)
}

func normalizeLines(s string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

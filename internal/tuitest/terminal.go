package tuitest

import (
	"bytes"
	"io"
	"sync"
)

// terminalReplies answers the queries bubbletea and termenv send at startup.
// Without a reply the program waits for its query timeout before drawing.
var terminalReplies = []struct {
	query, reply string
}{
	{"\x1b[6n", "\x1b[1;1R"},
	{"\x1b]10;?\x07", "\x1b]10;rgb:2d2d/2a2a/4a4a\x07"},
	{"\x1b]10;?\x1b\\", "\x1b]10;rgb:2d2d/2a2a/4a4a\x1b\\"},
	{"\x1b]11;?\x07", "\x1b]11;rgb:ffff/fbfb/f2f2\x07"},
	{"\x1b]11;?\x1b\\", "\x1b]11;rgb:ffff/fbfb/f2f2\x1b\\"},
}

// screenLog records everything the program writes and remembers where the
// output stood at the last input.
type screenLog struct {
	mu      sync.Mutex
	raw     bytes.Buffer
	pending []byte
	replies io.Writer
	mark    int
}

func newScreenLog(replies io.Writer) *screenLog {
	return &screenLog{replies: replies}
}

func (l *screenLog) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.raw.Write(p)
	l.pending = append(l.pending, p...)
	l.answer()
	// Keep a tail so a query split across reads is still seen.
	if len(l.pending) > 256 {
		l.pending = append([]byte(nil), l.pending[len(l.pending)-64:]...)
	}
	return len(p), nil
}

func (l *screenLog) answer() {
	for {
		answered := false
		for _, r := range terminalReplies {
			idx := bytes.Index(l.pending, []byte(r.query))
			if idx < 0 {
				continue
			}
			l.pending = l.pending[idx+len(r.query):]
			_, _ = io.WriteString(l.replies, r.reply)
			answered = true
		}
		if !answered {
			return
		}
	}
}

func (l *screenLog) markInput() {
	l.mu.Lock()
	l.mark = l.raw.Len()
	l.mu.Unlock()
}

// sinceInput returns what was drawn after the last input as one frame.
func (l *screenLog) sinceInput() Frame {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Frame{Plain: plainText(l.raw.Bytes()[l.mark:])}
}

func (l *screenLog) bytes() []byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]byte(nil), l.raw.Bytes()...)
}

// Package tuitest drives the storynook binary inside a pseudo terminal so
// tests can script a child's key presses and wait for the screens that
// should follow.
package tuitest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/creack/pty"
)

const (
	defaultWidth  = 100
	defaultHeight = 32
	pollInterval  = 20 * time.Millisecond
)

// Key is a raw input sequence written to the terminal.
type Key string

const (
	KeyEnter Key = "\r"
	KeySpace Key = " "
	KeyCtrlC Key = "\x03"
)

// Config describes how to launch the program under test.
type Config struct {
	Command []string
	Dir     string
	Env     []string
	Width   int
	Height  int
}

// Recording is everything the program drew during a session.
type Recording struct {
	Raw      []byte
	Frames   []Frame
	Duration time.Duration
}

// Session is a running program attached to a pseudo terminal. Output is
// captured continuously; WaitFor looks at what was drawn since the last
// input.
type Session struct {
	cmd     *exec.Cmd
	ptmx    *os.File
	screen  *screenLog
	drained chan struct{}
	exited  chan struct{}
	exitErr error
	started time.Time
}

// Start launches cfg.Command in a pseudo terminal of the configured size.
func Start(cfg Config) (*Session, error) {
	if len(cfg.Command) == 0 {
		return nil, errors.New("tuitest: command is required")
	}
	width := cfg.Width
	if width <= 0 {
		width = defaultWidth
	}
	height := cfg.Height
	if height <= 0 {
		height = defaultHeight
	}

	cmd := exec.Command(cfg.Command[0], cfg.Command[1:]...)
	cmd.Dir = cfg.Dir
	cmd.Env = buildEnv(cfg.Env)

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(height), Cols: uint16(width)})
	if err != nil {
		return nil, fmt.Errorf("tuitest: start program: %w", err)
	}

	s := &Session{
		cmd:     cmd,
		ptmx:    ptmx,
		screen:  newScreenLog(ptmx),
		drained: make(chan struct{}),
		exited:  make(chan struct{}),
		started: time.Now(),
	}
	go func() {
		defer close(s.drained)
		// Reads fail with EIO once the child exits.
		_, _ = io.Copy(s.screen, ptmx)
	}()
	go func() {
		s.exitErr = cmd.Wait()
		close(s.exited)
	}()
	return s, nil
}

// Press writes keys in order and moves the WaitFor mark past everything
// drawn so far.
func (s *Session) Press(keys ...Key) error {
	for _, k := range keys {
		if err := s.write(string(k)); err != nil {
			return err
		}
	}
	return nil
}

// Type writes text as if it were typed.
func (s *Session) Type(text string) error {
	return s.write(text)
}

func (s *Session) write(input string) error {
	s.screen.markInput()
	if _, err := s.ptmx.Write([]byte(input)); err != nil {
		return fmt.Errorf("tuitest: write input: %w", err)
	}
	return nil
}

// WaitFor polls the output drawn since the last input until match accepts
// it, the program exits or ctx is done.
func (s *Session) WaitFor(ctx context.Context, match func(Frame) bool) (Frame, error) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		frame := s.screen.sinceInput()
		if match(frame) {
			return frame, nil
		}
		select {
		case <-ctx.Done():
			return frame, fmt.Errorf("tuitest: screen never matched: %w\n%s", ctx.Err(), frame.Plain)
		case <-s.exited:
			return frame, fmt.Errorf("tuitest: program exited while waiting: %v\n%s", s.exitErr, frame.Plain)
		case <-ticker.C:
		}
	}
}

// WaitForText waits until text appears on screen.
func (s *Session) WaitForText(ctx context.Context, text string) (Frame, error) {
	return s.WaitFor(ctx, func(f Frame) bool { return f.Contains(text) })
}

// Quit sends ctrl+c and waits for a clean exit. The process is killed if
// ctx ends first.
func (s *Session) Quit(ctx context.Context) (*Recording, error) {
	_ = s.Press(KeyCtrlC)
	select {
	case <-s.exited:
	case <-ctx.Done():
		_ = s.cmd.Process.Kill()
		<-s.exited
		_ = s.ptmx.Close()
		return nil, fmt.Errorf("tuitest: program did not quit: %w", ctx.Err())
	}
	_ = s.ptmx.Close()
	<-s.drained

	if s.exitErr != nil {
		return nil, fmt.Errorf("tuitest: program exited with error: %w", s.exitErr)
	}
	raw := s.screen.bytes()
	return &Recording{Raw: raw, Frames: parseFrames(raw), Duration: time.Since(s.started)}, nil
}

// Close kills the program if it is still running. It is safe after Quit.
func (s *Session) Close() {
	select {
	case <-s.exited:
	default:
		_ = s.cmd.Process.Kill()
		<-s.exited
	}
	_ = s.ptmx.Close()
}

func buildEnv(extra []string) []string {
	env := append(os.Environ(), extra...)
	for _, entry := range env {
		if strings.HasPrefix(entry, "TERM=") {
			return env
		}
	}
	return append(env, "TERM=xterm-256color")
}

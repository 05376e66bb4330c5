// Package speech drives a text-to-speech engine for read-aloud narration.
package speech

import (
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
)

// ErrUnavailable is returned when no speech engine can be used.
var ErrUnavailable = errors.New("speech: no speech engine available")

// Options configures one utterance. OnDone fires when playback finishes on its
// own; OnStopped fires when Stop ended it. At most one of them fires.
type Options struct {
	Rate      float64
	OnDone    func()
	OnStopped func()
}

// Speaker is the collaborator that plays utterances.
type Speaker interface {
	Speak(text string, opts Options) error
	Stop()
}

// Notifier is implemented by speakers whose playback ends off the event loop.
// Events delivers terminal notifications; Resolve must be called with each of
// them from the goroutine that owns the callbacks.
type Notifier interface {
	Events() <-chan Ended
	Resolve(Ended)
}

// Unavailable is the speaker used when no engine is installed.
type Unavailable struct{}

func (Unavailable) Speak(string, Options) error { return ErrUnavailable }
func (Unavailable) Stop()                       {}

// Engine is an installed speech command.
type Engine struct {
	Name string
	Path string
}

var autoEngines = []string{"espeak-ng", "espeak", "say", "spd-say"}

// Detect resolves an engine by name. "auto" picks the first installed engine,
// "none" disables speech.
func Detect(name string) (Engine, error) {
	switch name {
	case "", "auto":
		for _, candidate := range autoEngines {
			if path, err := exec.LookPath(candidate); err == nil {
				return Engine{Name: candidate, Path: path}, nil
			}
		}
		return Engine{}, ErrUnavailable
	case "none":
		return Engine{}, ErrUnavailable
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return Engine{}, fmt.Errorf("%w: %s: %w", ErrUnavailable, name, err)
	}
	return Engine{Name: name, Path: path}, nil
}

// Args builds the command line for text at the given rate, where 1.0 is the
// engine's normal speed.
func (e Engine) Args(text string, rate float64) []string {
	if rate <= 0 {
		rate = 1
	}
	wpm := strconv.Itoa(int(math.Round(175 * rate)))
	switch e.Name {
	case "espeak", "espeak-ng":
		return []string{"-s", wpm, text}
	case "say":
		return []string{"-r", wpm, text}
	case "spd-say":
		return []string{"-w", "-r", strconv.Itoa(int(math.Round((rate - 1) * 100))), text}
	default:
		return []string{text}
	}
}

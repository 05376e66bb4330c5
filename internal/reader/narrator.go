package reader

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/csheth/storynook/internal/speech"
)

// DefaultRate is the speaking rate used for read-aloud.
const DefaultRate = 0.85

// Narrator keeps at most one utterance in flight and tracks whether one is
// playing. Each utterance gets a generation id so a late callback from an
// older utterance cannot clear the flag of a newer one.
type Narrator struct {
	speaker    speech.Speaker
	rate       float64
	logger     *log.Logger
	reading    bool
	generation uuid.UUID
}

// NewNarrator returns a narrator speaking through speaker. A non-positive
// rate selects DefaultRate.
func NewNarrator(speaker speech.Speaker, rate float64, logger *log.Logger) *Narrator {
	if speaker == nil {
		speaker = speech.Unavailable{}
	}
	if rate <= 0 {
		rate = DefaultRate
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Narrator{speaker: speaker, rate: rate, logger: logger}
}

// Toggle stops narration when reading, otherwise starts reading text.
func (n *Narrator) Toggle(text string) {
	if n.reading {
		n.speaker.Stop()
		n.clear()
		n.logger.Debug("narration stopped")
		return
	}

	gen := uuid.New()
	finish := func() {
		if n.generation != gen {
			return
		}
		n.clear()
		n.logger.Debug("narration finished", "generation", gen)
	}
	n.generation = gen
	n.reading = true
	err := n.speaker.Speak(text, speech.Options{Rate: n.rate, OnDone: finish, OnStopped: finish})
	if err != nil {
		if n.generation == gen {
			n.clear()
		}
		n.logger.Warn("read aloud unavailable", "err", err)
		return
	}
	n.logger.Debug("narration started", "generation", gen, "chars", len(text))
}

// Cancel stops any narration.
func (n *Narrator) Cancel() {
	n.speaker.Stop()
	n.clear()
}

func (n *Narrator) clear() {
	n.reading = false
	n.generation = uuid.Nil
}

// Reading reports whether an utterance is believed to be playing.
func (n *Narrator) Reading() bool {
	return n.reading
}

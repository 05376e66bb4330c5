package tui

import (
	"time"

	"github.com/csheth/storynook/internal/catalog"
	"github.com/csheth/storynook/internal/speech"
)

const heroTagline = "Stories that grow with your child."

const (
	minViewportWidth          = 40
	viewportHorizontalPadding = 4
	minPageHeight             = 8
)

const (
	stripFrameInterval = 30 * time.Millisecond
	stripFrames        = 8
	stripSettleDelay   = 220 * time.Millisecond
	dragColumns        = 3
)

const (
	cardWidth      = 18
	shelfCardCount = 6
	cardsPerRow    = 3
)

type speechEndedMsg struct {
	event speech.Ended
}

type storyImportMsg struct {
	book  catalog.BookSummary
	story catalog.Story
	err   error
}

type stripFrameMsg struct {
	seq int
}

type stripSettleMsg struct {
	seq int
}

package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/storynook/internal/catalog"
	"github.com/csheth/storynook/internal/speech"
)

// registrar is implemented by repositories that accept imported stories.
type registrar interface {
	Register(catalog.BookSummary, catalog.Story) error
}

func importStoryJob(path string) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		book, story, err := catalog.ImportPDF(path)
		if err != nil {
			return storyImportMsg{err: err}, err
		}
		return storyImportMsg{book: book, story: story}, nil
	}
}

// awaitSpeechJob blocks until the next utterance ends.
func awaitSpeechJob(events <-chan speech.Ended) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		select {
		case event := <-events:
			return speechEndedMsg{event: event}, event.Err
		case <-parent.Done():
			return nil, parent.Err()
		}
	}
}

func stripFrameCmd(seq int) tea.Cmd {
	return tea.Tick(stripFrameInterval, func(time.Time) tea.Msg {
		return stripFrameMsg{seq: seq}
	})
}

func stripSettleCmd(seq int) tea.Cmd {
	return tea.Tick(stripSettleDelay, func(time.Time) tea.Msg {
		return stripSettleMsg{seq: seq}
	})
}

func trimmedTitle(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 1 {
		return "…"
	}
	return fmt.Sprintf("%s…", string(runes[:limit-1]))
}

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/candlecard/internal/puzzle"
)

const (
	introSampleRate = 100 * time.Millisecond
	confettiRate    = 80 * time.Millisecond
	confettiFrames  = 24
)

// Delayed messages carry the generation they were issued under; a message
// whose generation is no longer current is dropped.

type introTickMsg struct{}

type introStepMsg struct{ gen uint64 }

type toastExpireMsg struct{ gen uint64 }

type feedbackExpireMsg struct {
	question int
	gen      uint64
}

type selectionClearMsg struct{ gen uint64 }

type hintExpireMsg struct{ gen uint64 }

type slotMarksExpireMsg struct{ gen uint64 }

type confettiTickMsg struct{ gen uint64 }

type transitionMsg struct{ t puzzle.Transition }

func after(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

func completedCmd(id puzzle.ID) tea.Cmd {
	return func() tea.Msg { return puzzle.CompletedMsg{ID: id} }
}

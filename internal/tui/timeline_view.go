package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jask/candlecard/internal/puzzle"
	"github.com/jask/candlecard/internal/timeline"
)

// slotMarkHold is how long wrong-slot marks stay up after a failed check.
const slotMarkHold = 2 * time.Second

func (a *App) handleTimelineKey(b *Binding) tea.Cmd {
	if b == nil {
		return nil
	}
	switch b.Action {
	case actionLeft:
		a.poolCursor = max(a.poolCursor-1, 0)
	case actionRight:
		a.poolCursor = min(a.poolCursor+1, max(len(a.board.Pool())-1, 0))
	case actionUp:
		a.slotCursor = max(a.slotCursor-1, 0)
	case actionDown:
		a.slotCursor = min(a.slotCursor+1, a.board.Len()-1)
	case actionPlace:
		pool := a.board.Pool()
		if len(pool) == 0 {
			return nil
		}
		return a.placeItem(pool[a.poolCursor].ID, a.slotCursor)
	case actionUnplace:
		if it, ok := a.board.Slot(a.slotCursor); ok {
			if err := a.board.Unplace(it.ID); err != nil {
				a.log.Warn("unplace failed", zap.Error(err))
			}
			a.slotMarks = nil
		}
	case actionMoveUp, actionMoveDown:
		it, ok := a.board.Slot(a.slotCursor)
		if !ok {
			return nil
		}
		target := a.slotCursor + 1
		if b.Action == actionMoveUp {
			target = a.slotCursor - 1
		}
		if target < 0 || target >= a.board.Len() {
			return nil
		}
		if cmd := a.placeItem(it.ID, target); cmd != nil {
			return cmd
		}
		a.slotCursor = target
	case actionCheck:
		return a.checkTimeline()
	case actionReset:
		a.board.Reset()
		a.poolCursor, a.slotCursor = 0, 0
		a.slotMarks = nil
		return a.notify("Timeline reset! Try again!", puzzle.Info)
	case actionComplete:
		msg, ok := a.board.Finish()
		if !ok {
			return a.notify(msg, puzzle.Warning)
		}
		return tea.Batch(a.notify(msg, puzzle.Success), a.celebrate(), completedCmd(puzzle.Timeline))
	}
	return nil
}

func (a *App) placeItem(id string, slot int) tea.Cmd {
	if err := a.board.Place(id, slot); err != nil {
		a.log.Warn("place failed", zap.String("item", id), zap.Int("slot", slot), zap.Error(err))
		return a.notify("Can't put that there", puzzle.Warning)
	}
	a.slotMarks = nil
	a.poolCursor = min(a.poolCursor, max(len(a.board.Pool())-1, 0))
	return nil
}

func (a *App) checkTimeline() tea.Cmd {
	v := a.board.Check()
	if !v.Filled {
		return a.notify(v.Message, puzzle.Warning)
	}
	a.slotMarks = v.Slots
	a.marksGen++
	a.log.Debug("timeline checked", zap.Bool("correct", v.Correct), zap.Strings("order", a.board.Order()))
	if v.Correct {
		return tea.Batch(a.notify(v.Message, puzzle.Success), a.celebrate())
	}
	return tea.Batch(a.notify(v.Message, puzzle.Warning), after(slotMarkHold, slotMarksExpireMsg{gen: a.marksGen}))
}

func renderMemory(it timeline.Item) string {
	head := strings.TrimSpace(it.Emoji + " " + it.Title)
	lines := []string{textStyle.Bold(true).Render(head)}
	if it.Description != "" {
		lines = append(lines, mutedStyle.Render(it.Description))
	}
	if it.Date != "" {
		lines = append(lines, infoStyle.Render(it.Date))
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderTimeline() string {
	pool := a.board.Pool()
	cards := make([]string, 0, len(pool))
	for i, it := range pool {
		style := panelStyle
		if i == a.poolCursor {
			style = style.BorderForeground(colorFocus)
		}
		cards = append(cards, style.Render(renderMemory(it)))
	}
	poolView := mutedStyle.Render("(all memories placed)")
	if len(cards) > 0 {
		poolView = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}

	slots := make([]string, 0, a.board.Len())
	for i := 0; i < a.board.Len(); i++ {
		label := fmt.Sprintf("%d.", i+1)
		content := mutedStyle.Render("drop a memory here")
		if it, ok := a.board.Slot(i); ok {
			content = renderMemory(it)
		}
		style := panelStyle.Width(44)
		if i == a.slotCursor {
			style = style.BorderForeground(colorFocus)
		}
		if i < len(a.slotMarks) {
			if a.slotMarks[i] {
				style = style.BorderForeground(colorSuccess)
			} else {
				style = style.BorderForeground(colorError)
			}
		}
		slots = append(slots, lipgloss.JoinHorizontal(lipgloss.Center, label+" ", style.Render(content)))
	}

	hint := mutedStyle.Render("earliest first")
	if a.board.Filled() {
		hint = focusStyle.Render("[c] Check Order  [s] Complete")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Memories"),
		poolView,
		"",
		titleStyle.Render("Our timeline"),
		strings.Join(slots, "\n"),
		"",
		hint,
	)
}

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jask/candlecard/internal/puzzle"
	"github.com/jask/candlecard/internal/wordsearch"
)

func (a *App) handleSearchKey(b *Binding) tea.Cmd {
	if b == nil {
		return nil
	}
	switch b.Action {
	case actionUp:
		return a.moveCursor(0, -1)
	case actionDown:
		return a.moveCursor(0, 1)
	case actionLeft:
		return a.moveCursor(-1, 0)
	case actionRight:
		return a.moveCursor(1, 0)
	case actionUpLeft:
		return a.moveCursor(-1, -1)
	case actionUpRight:
		return a.moveCursor(1, -1)
	case actionDownLeft:
		return a.moveCursor(-1, 1)
	case actionDownRight:
		return a.moveCursor(1, 1)
	case actionSelect:
		if !a.search.Dragging() {
			a.selGen++
			a.search.Press(a.cursor)
			return nil
		}
		return a.releaseSelection()
	case actionCancel:
		a.selGen++
		a.search.ClearSelection()
	case actionHint:
		h, ok := a.search.Hint()
		if !ok {
			return a.notify(h.Message, puzzle.Info)
		}
		a.hint = &h
		a.hintGen++
		return tea.Batch(
			a.notify(h.Message, puzzle.Info),
			after(a.cfg.Timing.Hint, hintExpireMsg{gen: a.hintGen}),
		)
	case actionReset:
		a.search.Reset()
		a.selGen++
		a.hint = nil
		a.log.Debug("word search reset", zap.Bool("fallback", a.search.Layout().Fallback))
		return a.notify("Word search reset! Try again!", puzzle.Info)
	case actionProgress:
		msg, done := a.search.Progress()
		if done {
			return tea.Batch(a.notify(msg, puzzle.Success), a.celebrate())
		}
		return a.notify(msg, puzzle.Info)
	case actionComplete:
		msg, ok := a.search.Finish()
		if !ok {
			return a.notify(msg, puzzle.Warning)
		}
		return tea.Batch(a.notify(msg, puzzle.Success), a.celebrate(), completedCmd(puzzle.WordSearch))
	}
	return nil
}

func (a *App) moveCursor(dx, dy int) tea.Cmd {
	next := wordsearch.Cell{X: a.cursor.X + dx, Y: a.cursor.Y + dy}
	if !a.search.Grid().In(next) {
		return nil
	}
	a.cursor = next
	if a.search.Dragging() {
		a.search.Enter(next)
	}
	return nil
}

func (a *App) releaseSelection() tea.Cmd {
	hits := a.search.Release()
	a.selGen++
	cmds := []tea.Cmd{after(a.cfg.Timing.Selection, selectionClearMsg{gen: a.selGen})}
	if len(hits) == 0 {
		return tea.Batch(cmds...)
	}
	a.log.Debug("words found", zap.Strings("words", hits), zap.Int("found", a.search.FoundCount()))
	if a.hint != nil {
		for _, w := range hits {
			if w == a.hint.Word {
				a.hint = nil
				break
			}
		}
	}
	cmds = append(cmds, a.notify("✅ Found: "+strings.Join(hits, ", "), puzzle.Success))
	if a.search.AllFound() {
		msg, _ := a.search.Progress()
		cmds = append(cmds, a.notify(msg, puzzle.Success), a.celebrate())
	}
	return tea.Batch(cmds...)
}

func (a *App) renderWordSearch() string {
	g := a.search.Grid()
	sel := a.search.Selection()
	rows := make([]string, 0, g.Size())
	for y := 0; y < g.Size(); y++ {
		var row strings.Builder
		for x := 0; x < g.Size(); x++ {
			c := wordsearch.Cell{X: x, Y: y}
			style := cellStyle
			switch {
			case c == a.cursor:
				style = cellCursorStyle
			case sel.Contains(c):
				style = cellSelectedStyle
			case a.hint != nil && a.hint.Cell == c && a.hint.Word != "":
				style = cellHintStyle
			case a.search.FoundCell(c):
				style = cellFoundStyle
			}
			row.WriteString(style.Render(string(g.At(c))))
		}
		rows = append(rows, row.String())
	}
	grid := panelStyle.Render(strings.Join(rows, "\n"))

	words := make([]string, 0, len(a.search.Words()))
	for _, w := range a.search.Words() {
		if a.search.Found(w) {
			words = append(words, successStyle.Strikethrough(true).Render(w))
		} else {
			words = append(words, textStyle.Render(w))
		}
	}
	side := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Find these words"),
		"",
		strings.Join(words, "\n"),
		"",
		mutedStyle.Render(fmt.Sprintf("%d/%d found", a.search.FoundCount(), len(a.search.Words()))),
	)
	status := mutedStyle.Render("space to start a selection, move, space again to finish")
	if a.search.Dragging() {
		status = focusStyle.Render("selecting: " + sel.Text(g))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, grid, "   ", side),
		"",
		status,
	)
}

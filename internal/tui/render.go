package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jask/candlecard/internal/puzzle"
)

func (a *App) renderPuzzles() string {
	cur := a.manager.Current()
	header := titleStyle.Render(fmt.Sprintf("🧩 Puzzle %d of %d: %s", int(cur), puzzle.Total, puzzle.Name(cur)))

	var body string
	switch cur {
	case puzzle.WordSearch:
		body = a.renderWordSearch()
	case puzzle.Timeline:
		body = a.renderTimeline()
	default:
		body = a.renderTrivia()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		a.renderIndicators(),
		a.renderProgress(),
		"",
		body,
		"",
		a.renderNav(),
	)
}

func (a *App) renderIndicators() string {
	parts := make([]string, 0, puzzle.Total)
	for _, ind := range a.manager.Indicators() {
		mark := "○"
		style := indicatorLockedStyle
		switch {
		case ind.Completed:
			mark, style = "✓", indicatorDoneStyle
		case !ind.Locked:
			style = textStyle
		}
		label := fmt.Sprintf("%s %d %s", mark, int(ind.ID), ind.Name)
		if ind.Active {
			style = indicatorActiveStyle
			label = "● " + label[len(mark)+1:]
		}
		parts = append(parts, style.Render(label))
	}
	return strings.Join(parts, mutedStyle.Render("  ·  "))
}

func (a *App) renderProgress() string {
	return fmt.Sprintf("%s %3d%%", a.progress.ViewAs(a.manager.Progress()), a.manager.Percent())
}

func (a *App) renderNav() string {
	nav := a.manager.Nav()
	var parts []string
	if nav.PrevVisible {
		parts = append(parts, mutedStyle.Render("[pgup] ← Previous"))
	}
	if nav.NextVisible {
		parts = append(parts, focusStyle.Render("[pgdown] "+nav.NextLabel))
	}
	return strings.Join(parts, "    ")
}

func (a *App) renderFinale() string {
	lines := []string{
		titleStyle.Render("🎉 Congratulations! 🎉"),
		"",
		textStyle.Render("You completed all the puzzles!"),
		textStyle.Render(fmt.Sprintf("Progress: %d%%", a.manager.Percent())),
		"",
		focusStyle.Render("[enter] Reveal your surprise 🎁"),
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (a *App) revealSurprise() tea.Cmd {
	width := max(min(a.width-8, 80), 20)
	out := a.message
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(a.cfg.UI.GlamourStyle),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		out, err = r.Render(a.message)
	}
	if err != nil {
		a.log.Warn("surprise render failed, showing raw message", zap.Error(err))
		out = a.message
	}
	a.surprise = out
	a.screen = screenSurprise
	a.log.Info("surprise revealed")
	return a.celebrate()
}

func (a *App) renderSurprise() string {
	return cardStyle.Render(strings.TrimSpace(a.surprise))
}

func (a *App) renderConfetti() string {
	const glyphs = "*+•✦❀♥o"
	width := max(min(a.width, 80), 10)
	runes := []rune(glyphs)
	var sb strings.Builder
	for range width / 2 {
		if a.rng.IntN(3) == 0 {
			c := confettiColors[a.rng.IntN(len(confettiColors))]
			g := string(runes[a.rng.IntN(len(runes))])
			sb.WriteString(lipgloss.NewStyle().Foreground(c).Render(g))
		} else {
			sb.WriteString(" ")
		}
		sb.WriteString(" ")
	}
	return sb.String()
}

func (a *App) renderToast() string {
	if a.toast == nil {
		return ""
	}
	style := infoStyle
	switch a.toast.Level {
	case puzzle.Success:
		style = successStyle
	case puzzle.Warning:
		style = warningStyle
	}
	return toastStyle.Inherit(style).Render(a.toast.Text)
}

func (a *App) renderFooter() string {
	bindings := a.keys.HelpBindings(a.scope())
	if a.screen == screenPuzzles {
		bindings = append(bindings, a.keys.HelpBindings(scopeGlobal)...)
	}
	return renderHelp(bindings, a.width)
}

func renderHelp(bindings []key.Binding, width int) string {
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)
	if width == 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(width).Render(content)
}

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jask/candlecard/internal/intro"
)

const candleCount = 3

func (a *App) handleIntroKey(b *Binding) tea.Cmd {
	if b == nil {
		return nil
	}
	switch b.Action {
	case actionBlow:
		if a.breath != nil {
			a.breath.Puff()
			return nil
		}
		if a.intro.BlowOut() {
			return a.scheduleIntroStep(a.cfg.Timing.Blow)
		}
	case actionConfirm:
		if a.intro.Stage() == intro.Ready {
			a.enterPuzzles()
			return textinput.Blink
		}
		if a.intro.OpenCard() {
			a.log.Info("card opened without blowing", zap.Bool("denied", a.intro.Denied()))
			return a.scheduleIntroStep(a.cfg.Timing.Card)
		}
	}
	return nil
}

func (a *App) handleIntroTick() tea.Cmd {
	if a.screen != screenIntro || a.intro.Stage() != intro.Lit {
		return nil
	}
	fired, err := a.intro.Poll()
	if a.breath != nil {
		a.breath.Decay()
	}
	if err != nil {
		a.log.Warn("intro sample failed", zap.Error(err))
	}
	if fired {
		a.log.Info("candles blown out")
		return a.scheduleIntroStep(a.cfg.Timing.Blow)
	}
	if a.intro.Denied() {
		a.log.Info("intro input denied, waiting for enter")
		return nil
	}
	return after(introSampleRate, introTickMsg{})
}

func (a *App) scheduleIntroStep(d time.Duration) tea.Cmd {
	a.introGen++
	return after(d, introStepMsg{gen: a.introGen})
}

func (a *App) handleIntroStep(m introStepMsg) tea.Cmd {
	if m.gen != a.introGen {
		return nil
	}
	switch a.intro.Stage() {
	case intro.Extinguished:
		a.intro.OpenCard()
		return a.scheduleIntroStep(a.cfg.Timing.Card)
	case intro.CardOpen:
		a.intro.Offer()
	}
	return nil
}

func (a *App) renderIntro() string {
	stage := a.intro.Stage()
	lines := []string{titleStyle.Render("🎂 Happy Birthday! 🎂"), ""}

	if stage == intro.Lit || stage == intro.Extinguished {
		lines = append(lines, a.renderCake(stage == intro.Lit), "")
		if stage == intro.Lit && a.breath != nil && !a.intro.Denied() {
			lines = append(lines, a.renderBreath(), "")
		}
	} else {
		lines = append(lines, a.renderCard(stage == intro.Ready), "")
	}

	instr := a.intro.Instruction()
	switch {
	case a.intro.Denied() && stage == intro.Lit:
		lines = append(lines, warningStyle.Render(instr))
	case stage == intro.Ready:
		lines = append(lines, focusStyle.Render("[enter] "+instr))
	default:
		lines = append(lines, subtitleStyle.Render(instr))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (a *App) renderCake(lit bool) string {
	flame := flameStyle.Render("🔥")
	if !lit {
		flame = mutedStyle.Render(" ~")
	}
	flames := strings.TrimRight(strings.Repeat(flame+"   ", candleCount), " ")
	candles := strings.TrimRight(strings.Repeat(candleStyle.Render(" ║")+"   ", candleCount), " ")
	cake := cakeStyle.Render("╔═══════════════╗\n║  ♥  ♥  ♥  ♥  ║\n╚═══════════════╝")
	return lipgloss.JoinVertical(lipgloss.Center, flames, candles, cake)
}

func (a *App) renderBreath() string {
	const width = 20
	level := a.breath.Level()
	filled := int(level / 255 * width)
	bar := successStyle.Render(strings.Repeat("▮", filled)) + mutedStyle.Render(strings.Repeat("▯", width-filled))
	return fmt.Sprintf("breath %s", bar)
}

func (a *App) renderCard(ready bool) string {
	body := []string{
		titleStyle.Render("To " + a.recipient()),
		"",
		textStyle.Render("Another trip around the sun!"),
		textStyle.Render("Three little puzzles stand between you and your surprise."),
	}
	if !ready {
		body = append(body, "", mutedStyle.Render("..."))
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center, body...))
}

func (a *App) recipient() string {
	for _, r := range []string{a.who, a.cfg.UI.Recipient} {
		if r = strings.TrimSpace(r); r != "" {
			return r
		}
	}
	return "you"
}

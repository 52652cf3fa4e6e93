package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/candlecard/internal/puzzle"
	"github.com/jask/candlecard/internal/trivia"
)

func (a *App) handleTriviaKey(msg tea.KeyMsg, b *Binding) tea.Cmd {
	if b == nil {
		var cmd tea.Cmd
		a.answer, cmd = a.answer.Update(msg)
		return cmd
	}
	switch b.Action {
	case actionSubmit:
		return a.checkAnswer()
	case actionNextQuestion:
		if a.quiz.Next() {
			a.loadAnswer()
		}
	case actionPrevQuestion:
		if a.quiz.Prev() {
			a.loadAnswer()
		}
	case actionComplete:
		out := a.quiz.Finish()
		a.wrong = out.Wrong
		a.log.Debug("quiz finish", zap.Bool("complete", out.Complete), zap.Ints("wrong", out.Wrong))
		if !out.Complete {
			return a.notify(out.Message, puzzle.Warning)
		}
		return tea.Batch(a.notify(out.Message, puzzle.Success), a.celebrate(), completedCmd(puzzle.Memory))
	default:
		var cmd tea.Cmd
		a.answer, cmd = a.answer.Update(msg)
		return cmd
	}
	return nil
}

func (a *App) checkAnswer() tea.Cmd {
	i := a.quiz.Current()
	fb := a.quiz.Check(i, a.answer.Value())
	a.feedbackGens[i]++
	a.wrong = nil
	switch fb.Kind {
	case trivia.FeedbackCleared:
		delete(a.feedback, i)
	case trivia.FeedbackCorrect:
		a.feedback[i] = fb
		if a.quiz.Next() {
			a.loadAnswer()
		}
	case trivia.FeedbackIncorrect:
		a.feedback[i] = fb
		return after(a.cfg.Timing.Feedback, feedbackExpireMsg{question: i, gen: a.feedbackGens[i]})
	}
	return nil
}

// loadAnswer puts the stored answer for the current question in the input.
func (a *App) loadAnswer() {
	if ans, ok := a.quiz.Answer(a.quiz.Current()); ok {
		a.answer.SetValue(ans.Text)
	} else {
		a.answer.SetValue("")
	}
	a.answer.CursorEnd()
}

func (a *App) renderTrivia() string {
	i := a.quiz.Current()
	q := a.quiz.Question(i)
	var sb strings.Builder

	sb.WriteString(mutedStyle.Render(fmt.Sprintf("Question %d of %d", i+1, a.quiz.Len())))
	sb.WriteString("\n\n")
	sb.WriteString(textStyle.Bold(true).Render(q.Prompt))
	sb.WriteString("\n\n")
	sb.WriteString(a.answer.View())
	sb.WriteString("\n")

	if fb, ok := a.feedback[i]; ok {
		sb.WriteString("\n")
		if fb.Kind == trivia.FeedbackCorrect {
			sb.WriteString(successStyle.Render(fb.Text))
		} else {
			sb.WriteString(errorStyle.Render(fb.Text))
		}
		sb.WriteString("\n")
	}

	dots := make([]string, 0, a.quiz.Len())
	for j := 0; j < a.quiz.Len(); j++ {
		mark := "·"
		if ans, ok := a.quiz.Answer(j); ok {
			if ans.Correct {
				mark = successStyle.Render("✓")
			} else {
				mark = errorStyle.Render("✗")
			}
		}
		if j == i {
			mark = focusStyle.Render("[") + mark + focusStyle.Render("]")
		}
		dots = append(dots, mark)
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Join(dots, " "))
	sb.WriteString(mutedStyle.Render(fmt.Sprintf("  %d/%d answered", a.quiz.AnsweredCount(), a.quiz.Len())))

	if len(a.wrong) > 0 {
		sb.WriteString("\n")
		for _, w := range a.wrong {
			sb.WriteString("\n")
			sb.WriteString(warningStyle.Render(fmt.Sprintf("Q%d hint: %s", w+1, a.quiz.Hint(w))))
		}
	}
	if label := a.quiz.NextLabel(); label != "" {
		sb.WriteString("\n\n")
		sb.WriteString(mutedStyle.Render("[tab] " + label))
	}
	if a.quiz.AllAnswered() {
		sb.WriteString("\n")
		sb.WriteString(focusStyle.Render("[ctrl+s] Complete Quiz"))
	}
	return sb.String()
}

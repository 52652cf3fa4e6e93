package tui

import (
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/candlecard/internal/config"
	"github.com/jask/candlecard/internal/content"
	"github.com/jask/candlecard/internal/intro"
	"github.com/jask/candlecard/internal/puzzle"
	"github.com/jask/candlecard/internal/timeline"
	"github.com/jask/candlecard/internal/trivia"
	"github.com/jask/candlecard/internal/wordsearch"
)

type screen string

const (
	screenIntro    screen = "intro"
	screenPuzzles  screen = "puzzles"
	screenFinale   screen = "finale"
	screenSurprise screen = "surprise"
)

// Options carries what App needs from start-up.
type Options struct {
	Config  config.Config
	Catalog content.Catalog
	// Source feeds the candle gate; nil uses a keyboard breath meter.
	Source intro.Source
	Rand   *rand.Rand
	Logger *zap.Logger
}

// App is the session model. It owns every widget's state.
type App struct {
	cfg    config.Config
	log    *zap.Logger
	keys   *KeyRegistry
	rng    *rand.Rand
	width  int
	height int
	screen screen

	intro    *intro.Intro
	breath   *intro.Breath
	introGen uint64

	manager *puzzle.Manager

	quiz         *trivia.Quiz
	answer       textinput.Model
	feedback     map[int]trivia.Feedback
	feedbackGens map[int]uint64
	wrong        []int

	search  *wordsearch.Puzzle
	cursor  wordsearch.Cell
	hint    *wordsearch.Hint
	selGen  uint64
	hintGen uint64

	board      *timeline.Board
	poolCursor int
	slotCursor int
	slotMarks  []bool
	marksGen   uint64

	progress progress.Model
	toast    *puzzle.Notice
	toastGen uint64

	confetti    int
	confettiGen uint64

	who      string
	message  string
	surprise string
	quitting bool
}

func New(opts Options) *App {
	cfg := opts.Config
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	cat := opts.Catalog

	a := &App{
		cfg:          cfg,
		log:          log,
		keys:         NewKeyRegistry(),
		rng:          rng,
		width:        80,
		height:       30,
		screen:       screenIntro,
		feedback:     make(map[int]trivia.Feedback),
		feedbackGens: make(map[int]uint64),
		who:          cat.Recipient,
		message:      cat.Message(cfg.UI.Recipient),
	}

	src := opts.Source
	if src == nil {
		a.breath = intro.NewBreath()
		src = a.breath
	} else if b, ok := src.(*intro.Breath); ok {
		a.breath = b
	}
	a.intro = intro.New(src, cfg.Intro.Threshold)

	a.manager = puzzle.NewManager(
		puzzle.WithDelays(cfg.Timing.Advance, cfg.Timing.Reveal),
		puzzle.WithLogger(log.Named("puzzle")),
	)

	questions := make([]trivia.Question, 0, len(cat.Questions))
	for _, q := range cat.Questions {
		questions = append(questions, trivia.Question{Prompt: q.Prompt, Answer: q.Answer, Hints: q.Hints, Synonyms: q.Synonyms})
	}
	a.quiz = trivia.New(questions, trivia.Matcher{MaxTypos: cfg.Trivia.MaxTypos})
	a.answer = textinput.New()
	a.answer.Placeholder = "Type your answer..."
	a.answer.CharLimit = 80
	a.answer.Width = 40

	a.search = wordsearch.New(cat.Words, wordsearch.Options{
		Size:         cfg.WordSearch.Size,
		WordAttempts: cfg.WordSearch.WordAttempts,
		GridAttempts: cfg.WordSearch.GridAttempts,
		Rand:         rng,
	})
	if l := a.search.Layout(); l.Fallback {
		log.Warn("word search fell back to static grid", zap.Strings("dropped", l.Dropped))
	} else {
		log.Debug("word search generated", zap.Int("attempts", l.Attempts))
	}

	items := make([]timeline.Item, 0, len(cat.Memories))
	for _, m := range cat.Memories {
		items = append(items, timeline.Item{ID: m.ID, Emoji: m.Emoji, Title: m.Title, Description: m.Description, Date: m.Date})
	}
	a.board = timeline.New(items, rng)

	a.progress = progress.New(progress.WithDefaultGradient())
	a.progress.Width = 40

	if cfg.Intro.Skip {
		a.enterPuzzles()
	}
	return a
}

func (a *App) Init() tea.Cmd {
	if a.screen == screenIntro {
		return tea.Batch(textinput.Blink, after(introSampleRate, introTickMsg{}))
	}
	return textinput.Blink
}

func (a *App) scope() string {
	switch a.screen {
	case screenIntro:
		return scopeIntro
	case screenFinale:
		return scopeFinale
	case screenSurprise:
		return scopeSurprise
	}
	switch a.manager.Current() {
	case puzzle.WordSearch:
		return scopeWordSearch
	case puzzle.Timeline:
		return scopeTimeline
	default:
		return scopeTrivia
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.progress.Width = max(min(m.Width-8, 60), 10)
		return a, nil
	case tea.KeyMsg:
		return a, a.handleKey(m)
	case introTickMsg:
		return a, a.handleIntroTick()
	case introStepMsg:
		return a, a.handleIntroStep(m)
	case puzzle.CompletedMsg:
		return a, a.handleCompleted(m.ID)
	case transitionMsg:
		return a, a.applyResult(a.manager.Apply(m.t))
	case toastExpireMsg:
		if m.gen == a.toastGen {
			a.toast = nil
		}
	case feedbackExpireMsg:
		if a.feedbackGens[m.question] == m.gen {
			delete(a.feedback, m.question)
		}
	case selectionClearMsg:
		if m.gen == a.selGen && !a.search.Dragging() {
			a.search.ClearSelection()
		}
	case hintExpireMsg:
		if m.gen == a.hintGen {
			a.hint = nil
		}
	case slotMarksExpireMsg:
		if m.gen == a.marksGen {
			a.slotMarks = nil
		}
	case confettiTickMsg:
		if m.gen != a.confettiGen || a.confetti <= 0 {
			return a, nil
		}
		a.confetti--
		if a.confetti > 0 {
			return a, after(confettiRate, confettiTickMsg{gen: m.gen})
		}
	default:
		if a.screen == screenPuzzles && a.manager.Current() == puzzle.Memory {
			var cmd tea.Cmd
			a.answer, cmd = a.answer.Update(msg)
			return a, cmd
		}
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	scope := a.scope()
	b := a.keys.Lookup(msg.String(), scope)
	if b != nil && b.Action == actionQuit {
		a.quitting = true
		return tea.Quit
	}
	if a.screen == screenPuzzles && b != nil {
		switch b.Action {
		case actionPrevPuzzle:
			return a.applyResult(a.manager.Retreat())
		case actionNextPuzzle:
			return a.applyResult(a.manager.Advance())
		case actionShowMemory:
			return a.show(puzzle.Memory)
		case actionShowSearch:
			return a.show(puzzle.WordSearch)
		case actionShowTimeline:
			return a.show(puzzle.Timeline)
		}
	}

	switch scope {
	case scopeIntro:
		return a.handleIntroKey(b)
	case scopeTrivia:
		return a.handleTriviaKey(msg, b)
	case scopeWordSearch:
		return a.handleSearchKey(b)
	case scopeTimeline:
		return a.handleTimelineKey(b)
	case scopeFinale:
		if b != nil && b.Action == actionReveal {
			return a.revealSurprise()
		}
	}
	return nil
}

func (a *App) show(id puzzle.ID) tea.Cmd {
	res, err := a.manager.Show(id)
	if err != nil {
		a.log.Debug("navigation blocked", zap.Int("puzzle", int(id)), zap.Error(err))
	}
	return a.applyResult(res)
}

// applyResult reflects an orchestrator result on screen.
func (a *App) applyResult(res puzzle.Result) tea.Cmd {
	var cmds []tea.Cmd
	if res.Notice != nil {
		cmds = append(cmds, a.notify(res.Notice.Text, res.Notice.Level))
	}
	if res.Moved {
		a.syncFocus()
	}
	if res.Revealed {
		a.screen = screenFinale
		a.answer.Blur()
		cmds = append(cmds, a.celebrate())
	}
	return tea.Batch(cmds...)
}

func (a *App) handleCompleted(id puzzle.ID) tea.Cmd {
	res, err := a.manager.Complete(id)
	if err != nil {
		a.log.Warn("completion rejected", zap.Int("puzzle", int(id)), zap.Error(err))
		return nil
	}
	cmds := []tea.Cmd{a.applyResult(res)}
	if res.Pending.Kind != puzzle.NoTransition {
		t := res.Pending
		cmds = append(cmds, after(t.Delay, transitionMsg{t: t}))
	}
	return tea.Batch(cmds...)
}

func (a *App) notify(text string, level puzzle.Level) tea.Cmd {
	a.toast = &puzzle.Notice{Text: text, Level: level}
	a.toastGen++
	return after(a.cfg.Timing.Feedback, toastExpireMsg{gen: a.toastGen})
}

// celebrate starts a confetti burst; a new burst replaces a running one.
func (a *App) celebrate() tea.Cmd {
	a.confettiGen++
	a.confetti = confettiFrames
	return after(confettiRate, confettiTickMsg{gen: a.confettiGen})
}

func (a *App) enterPuzzles() {
	a.screen = screenPuzzles
	a.syncFocus()
}

func (a *App) syncFocus() {
	if a.screen == screenPuzzles && a.manager.Current() == puzzle.Memory {
		a.loadAnswer()
		a.answer.Focus()
		return
	}
	a.answer.Blur()
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	var body string
	switch a.screen {
	case screenIntro:
		body = a.renderIntro()
	case screenFinale:
		body = a.renderFinale()
	case screenSurprise:
		body = a.renderSurprise()
	default:
		body = a.renderPuzzles()
	}
	parts := []string{body}
	if a.confetti > 0 {
		parts = append([]string{a.renderConfetti()}, parts...)
	}
	if t := a.renderToast(); t != "" {
		parts = append(parts, t)
	}
	parts = append(parts, a.renderFooter())
	return strings.Join(parts, "\n\n")
}

package puzzle

import (
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
)

// ID identifies a puzzle. Valid ids are 1..Total.
type ID int

const (
	Memory     ID = 1
	WordSearch ID = 2
	Timeline   ID = 3

	// Total is the number of puzzles in a session.
	Total = 3
)

var (
	ErrUnknownPuzzle = errors.New("unknown puzzle")
	ErrLocked        = errors.New("puzzle locked")
)

var names = map[ID]string{
	Memory:     "Memory Quiz",
	WordSearch: "Word Search",
	Timeline:   "Timeline Challenge",
}

// Name returns the display name of id.
func Name(id ID) string {
	if n, ok := names[id]; ok {
		return n
	}
	return fmt.Sprintf("Puzzle %d", int(id))
}

// Valid reports whether id names a puzzle.
func (id ID) Valid() bool { return id >= 1 && id <= Total }

// CompletedMsg is the completion signal a widget sends to the orchestrator.
type CompletedMsg struct {
	ID ID
}

// Level grades a Notice.
type Level int

const (
	Info Level = iota
	Success
	Warning
)

// Notice is a short message for the toast area.
type Notice struct {
	Text  string
	Level Level
}

// TransitionKind says what a pending transition does when applied.
type TransitionKind int

const (
	NoTransition TransitionKind = iota
	AutoAdvance
	Reveal
)

// Transition is a delayed state change issued by Complete.
type Transition struct {
	Kind  TransitionKind
	Delay time.Duration
	gen   uint64
}

// Result reports what an operation did.
type Result struct {
	Notice   *Notice
	Moved    bool
	Revealed bool
	Pending  Transition
}

// Manager is the puzzle state machine.
type Manager struct {
	current      ID
	completed    [Total + 1]bool
	revealed     bool
	gen          uint64
	advanceDelay time.Duration
	revealDelay  time.Duration
	log          *zap.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithDelays sets the auto-advance and reveal delays.
func WithDelays(advance, reveal time.Duration) Option {
	return func(m *Manager) {
		m.advanceDelay = advance
		m.revealDelay = reveal
	}
}

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// NewManager starts on the first puzzle with nothing completed.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		current:      Memory,
		advanceDelay: time.Second,
		revealDelay:  1500 * time.Millisecond,
		log:          zap.NewNop(),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

func (m *Manager) Current() ID    { return m.current }
func (m *Manager) Revealed() bool { return m.revealed }

// Completed reports whether id is done.
func (m *Manager) Completed(id ID) bool {
	return id.Valid() && m.completed[id]
}

// CompletedCount is the size of the completion set.
func (m *Manager) CompletedCount() int {
	n := 0
	for id := ID(1); id <= Total; id++ {
		if m.completed[id] {
			n++
		}
	}
	return n
}

func (m *Manager) AllCompleted() bool { return m.CompletedCount() == Total }

// Progress is count(completed)/Total.
func (m *Manager) Progress() float64 {
	return float64(m.CompletedCount()) / float64(Total)
}

// Percent is Progress as a rounded percentage.
func (m *Manager) Percent() int {
	return int(math.Round(m.Progress() * 100))
}

// Unlocked reports whether every puzzle before id is complete.
func (m *Manager) Unlocked(id ID) bool {
	if !id.Valid() {
		return false
	}
	for prev := ID(1); prev < id; prev++ {
		if !m.completed[prev] {
			return false
		}
	}
	return true
}

// Show navigates to id if it is unlocked.
func (m *Manager) Show(id ID) (Result, error) {
	if !id.Valid() {
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownPuzzle, int(id))
	}
	if m.revealed {
		return Result{}, nil
	}
	if !m.Unlocked(id) {
		return Result{Notice: &Notice{Text: "Complete the previous puzzle first!", Level: Warning}},
			fmt.Errorf("%w: %s", ErrLocked, Name(id))
	}
	moved := id != m.current
	m.current = id
	return Result{Moved: moved}, nil
}

// Advance moves to the next puzzle, or reveals the final screen from the last
// puzzle once everything is complete.
func (m *Manager) Advance() Result {
	if m.revealed {
		return Result{}
	}
	if m.current < Total {
		res, _ := m.Show(m.current + 1)
		return res
	}
	if m.AllCompleted() {
		return m.reveal()
	}
	return Result{Notice: &Notice{Text: "Complete all puzzles to unlock the surprise!", Level: Info}}
}

// Retreat moves to the previous puzzle.
func (m *Manager) Retreat() Result {
	if m.revealed || m.current <= 1 {
		return Result{}
	}
	res, _ := m.Show(m.current - 1)
	return res
}

// Complete records id as done. Completing twice is a no-op.
func (m *Manager) Complete(id ID) (Result, error) {
	if !id.Valid() {
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownPuzzle, int(id))
	}
	if m.completed[id] || m.revealed {
		return Result{}, nil
	}
	m.completed[id] = true
	m.gen++
	m.log.Debug("puzzle completed",
		zap.Int("puzzle", int(id)),
		zap.Int("current", int(m.current)),
		zap.Int("completed", m.CompletedCount()),
		zap.Int("percent", m.Percent()))

	res := Result{Notice: &Notice{Text: "✅ " + Name(id) + " completed!", Level: Success}}
	if m.AllCompleted() {
		res.Pending = Transition{Kind: Reveal, Delay: m.revealDelay, gen: m.gen}
	} else {
		res.Pending = Transition{Kind: AutoAdvance, Delay: m.advanceDelay, gen: m.gen}
	}
	return res, nil
}

// Apply runs a transition issued by Complete. Stale transitions are ignored.
func (m *Manager) Apply(t Transition) Result {
	if t.Kind == NoTransition || t.gen != m.gen || m.revealed {
		m.log.Debug("transition dropped", zap.Int("kind", int(t.Kind)), zap.Uint64("gen", t.gen), zap.Uint64("current_gen", m.gen))
		return Result{}
	}
	switch t.Kind {
	case Reveal:
		return m.reveal()
	case AutoAdvance:
		next := m.nextIncomplete()
		if next == 0 {
			return Result{Notice: &Notice{Text: "Complete the other puzzles to unlock the surprise!", Level: Info}}
		}
		res, err := m.Show(next)
		if err != nil {
			m.log.Debug("auto-advance blocked", zap.Int("target", int(next)), zap.Error(err))
		}
		return res
	}
	return Result{}
}

// nextIncomplete returns the first incomplete puzzle after the current one, or 0.
func (m *Manager) nextIncomplete() ID {
	for id := m.current + 1; id <= Total; id++ {
		if !m.completed[id] {
			return id
		}
	}
	return 0
}

func (m *Manager) reveal() Result {
	if m.revealed || !m.AllCompleted() {
		return Result{}
	}
	m.revealed = true
	m.gen++
	m.log.Info("all puzzles completed, revealing final screen")
	return Result{Revealed: true}
}

package puzzle

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func completeAndApply(t *testing.T, m *Manager, id ID) Result {
	t.Helper()
	res, err := m.Complete(id)
	require.NoError(t, err)
	require.NotEqual(t, NoTransition, res.Pending.Kind)
	return m.Apply(res.Pending)
}

func TestCompleteInOrderRevealsOnce(t *testing.T) {
	m := NewManager()
	reveals := 0

	res := completeAndApply(t, m, Memory)
	require.Equal(t, WordSearch, m.Current())
	require.True(t, res.Moved)
	require.Equal(t, 33, m.Percent())

	completeAndApply(t, m, WordSearch)
	require.Equal(t, Timeline, m.Current())
	require.Equal(t, 67, m.Percent())

	res, err := m.Complete(Timeline)
	require.NoError(t, err)
	require.Equal(t, Reveal, res.Pending.Kind)
	require.Equal(t, 1500*time.Millisecond, res.Pending.Delay)
	require.False(t, m.Revealed())

	if r := m.Apply(res.Pending); r.Revealed {
		reveals++
	}
	// late duplicate timer, user pressing next, and a repeated completion
	if r := m.Apply(res.Pending); r.Revealed {
		reveals++
	}
	if r := m.Advance(); r.Revealed {
		reveals++
	}
	again, err := m.Complete(Timeline)
	require.NoError(t, err)
	require.Equal(t, NoTransition, again.Pending.Kind)

	require.Equal(t, 1, reveals)
	require.True(t, m.Revealed())
	require.Equal(t, 100, m.Percent())
}

func TestOutOfOrderCompletionDoesNotUnlockThird(t *testing.T) {
	m := NewManager()

	res := completeAndApply(t, m, WordSearch)
	require.Equal(t, Memory, m.Current())
	require.False(t, res.Moved)
	require.NotNil(t, res.Notice)
	require.Equal(t, "Complete the previous puzzle first!", res.Notice.Text)

	require.False(t, m.Unlocked(Timeline))
	require.False(t, m.Unlocked(WordSearch))
	_, err := m.Show(Timeline)
	require.ErrorIs(t, err, ErrLocked)
	require.Equal(t, Memory, m.Current())

	r := m.Advance()
	require.False(t, r.Moved)
	require.Equal(t, Memory, m.Current())

	// finishing the first puzzle skips the already-completed second
	completeAndApply(t, m, Memory)
	require.Equal(t, Timeline, m.Current())
	require.False(t, m.Revealed())
}

func TestStaleTransitionIsDropped(t *testing.T) {
	m := NewManager(WithDelays(10*time.Millisecond, 20*time.Millisecond))
	first, err := m.Complete(Memory)
	require.NoError(t, err)
	require.Equal(t, 10*time.Millisecond, first.Pending.Delay)

	_, err = m.Show(WordSearch)
	require.NoError(t, err)
	second, err := m.Complete(WordSearch)
	require.NoError(t, err)

	require.Equal(t, Result{}, m.Apply(first.Pending))
	require.Equal(t, WordSearch, m.Current())

	m.Apply(second.Pending)
	require.Equal(t, Timeline, m.Current())
}

func TestAdvanceAndRetreat(t *testing.T) {
	m := NewManager()
	require.Equal(t, Result{}, m.Retreat())

	r := m.Advance()
	require.NotNil(t, r.Notice)
	require.Equal(t, Warning, r.Notice.Level)

	completeAndApply(t, m, Memory)
	require.Equal(t, WordSearch, m.Current())

	r = m.Retreat()
	require.True(t, r.Moved)
	require.Equal(t, Memory, m.Current())

	r = m.Advance()
	require.True(t, r.Moved)
	require.Equal(t, WordSearch, m.Current())
}

func TestLastPuzzleWithOthersIncomplete(t *testing.T) {
	m := NewManager()
	completeAndApply(t, m, Memory)
	completeAndApply(t, m, WordSearch)
	require.Equal(t, Timeline, m.Current())

	r := m.Advance()
	require.NotNil(t, r.Notice)
	require.Equal(t, "Complete all puzzles to unlock the surprise!", r.Notice.Text)
	require.False(t, r.Revealed)
}

func TestCompleteRejectsUnknownIDs(t *testing.T) {
	m := NewManager()
	_, err := m.Complete(0)
	require.ErrorIs(t, err, ErrUnknownPuzzle)
	_, err = m.Complete(4)
	require.ErrorIs(t, err, ErrUnknownPuzzle)
	_, err = m.Show(-1)
	require.ErrorIs(t, err, ErrUnknownPuzzle)
	require.Equal(t, 0, m.CompletedCount())
}

func TestCompletionNotice(t *testing.T) {
	m := NewManager()
	res, err := m.Complete(WordSearch)
	require.NoError(t, err)
	require.Equal(t, &Notice{Text: "✅ Word Search completed!", Level: Success}, res.Notice)
}

func TestNavAndIndicators(t *testing.T) {
	m := NewManager()
	require.Equal(t, Nav{NextVisible: true, NextLabel: "Next Puzzle →"}, m.Nav())

	completeAndApply(t, m, Memory)
	completeAndApply(t, m, WordSearch)
	require.Equal(t, Nav{PrevVisible: true}, m.Nav())

	want := []Indicator{
		{ID: Memory, Name: "Memory Quiz", Completed: true},
		{ID: WordSearch, Name: "Word Search", Completed: true},
		{ID: Timeline, Name: "Timeline Challenge", Active: true},
	}
	if diff := cmp.Diff(want, m.Indicators()); diff != "" {
		t.Fatalf("indicators mismatch (-want +got):\n%s", diff)
	}

	_, err := m.Complete(Timeline)
	require.NoError(t, err)
	require.Equal(t, Nav{PrevVisible: true, NextVisible: true, NextLabel: "See Results →"}, m.Nav())

	r := m.Advance()
	require.True(t, r.Revealed)
	require.Equal(t, Nav{}, m.Nav())
}

func TestIndicatorsShowLocks(t *testing.T) {
	m := NewManager()
	ind := m.Indicators()
	require.False(t, ind[0].Locked)
	require.True(t, ind[1].Locked)
	require.True(t, ind[2].Locked)
}

package tui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupFallsBackToGlobal(t *testing.T) {
	r := NewKeyRegistry()

	b := r.Lookup("pgdown", scopeTimeline)
	require.NotNil(t, b)
	require.Equal(t, actionNextPuzzle, b.Action)

	b = r.Lookup(" ", scopeWordSearch)
	require.NotNil(t, b)
	require.Equal(t, actionSelect, b.Action)

	require.Nil(t, r.Lookup("q", scopeTrivia), "trivia leaves printable keys to the input")
	require.Nil(t, r.Lookup("", scopeGlobal))
}

func TestUppercaseKeysStayDistinct(t *testing.T) {
	r := NewKeyRegistry()
	require.Equal(t, actionMoveDown, r.Lookup("J", scopeTimeline).Action)
	require.Equal(t, actionDown, r.Lookup("j", scopeTimeline).Action)
}

func TestRegisterSkipsTakenKeys(t *testing.T) {
	r := NewKeyRegistry()
	before := len(r.BindingsForScope(scopeFinale))
	r.Register(Binding{Action: actionHint, Keys: []string{"enter"}, Help: "dup", Scopes: []string{scopeFinale}})
	require.Len(t, r.BindingsForScope(scopeFinale), before)
}

func TestHelpBindingsSkipUnlabelled(t *testing.T) {
	r := NewKeyRegistry()
	for _, b := range r.HelpBindings(scopeWordSearch) {
		require.NotEmpty(t, b.Help().Desc)
	}
	require.Equal(t, "space", r.HelpBindings(scopeIntro)[0].Help().Key)
}

func TestCanonicalKey(t *testing.T) {
	cases := map[string]string{
		" ":         "space",
		"Control+S": "ctrl+s",
		"return":    "enter",
		"K":         "K",
		"?":         "?",
		"  ":        "",
	}
	for in, want := range cases {
		require.Equal(t, want, canonicalKey(in), "key %q", in)
	}
}

package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scopes []string
}

// KeyRegistry maps keys to actions per scope. Lookups fall back to the
// global scope.
type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

const (
	scopeGlobal     = "global"
	scopeIntro      = "intro"
	scopeTrivia     = "trivia"
	scopeWordSearch = "wordsearch"
	scopeTimeline   = "timeline"
	scopeFinale     = "finale"
	scopeSurprise   = "surprise"
)

const (
	actionQuit         Action = "quit"
	actionBlow         Action = "blow"
	actionConfirm      Action = "confirm"
	actionPrevPuzzle   Action = "prev_puzzle"
	actionNextPuzzle   Action = "next_puzzle"
	actionShowMemory   Action = "show_memory"
	actionShowSearch   Action = "show_search"
	actionShowTimeline Action = "show_timeline"
	actionSubmit       Action = "submit"
	actionPrevQuestion Action = "prev_question"
	actionNextQuestion Action = "next_question"
	actionComplete     Action = "complete"
	actionUp           Action = "up"
	actionDown         Action = "down"
	actionLeft         Action = "left"
	actionRight        Action = "right"
	actionUpLeft       Action = "up_left"
	actionUpRight      Action = "up_right"
	actionDownLeft     Action = "down_left"
	actionDownRight    Action = "down_right"
	actionSelect       Action = "select"
	actionCancel       Action = "cancel"
	actionHint         Action = "hint"
	actionReset        Action = "reset"
	actionProgress     Action = "progress"
	actionPlace        Action = "place"
	actionUnplace      Action = "unplace"
	actionMoveUp       Action = "move_up"
	actionMoveDown     Action = "move_down"
	actionCheck        Action = "check"
	actionReveal       Action = "reveal"
)

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}})
	}

	reg(scopeGlobal, actionQuit, []string{"ctrl+c"}, "quit")
	reg(scopeGlobal, actionPrevPuzzle, []string{"pgup"}, "prev puzzle")
	reg(scopeGlobal, actionNextPuzzle, []string{"pgdown"}, "next puzzle")
	reg(scopeGlobal, actionShowMemory, []string{"f1"}, "quiz")
	reg(scopeGlobal, actionShowSearch, []string{"f2"}, "word search")
	reg(scopeGlobal, actionShowTimeline, []string{"f3"}, "timeline")

	reg(scopeIntro, actionBlow, []string{"space"}, "blow")
	reg(scopeIntro, actionConfirm, []string{"enter"}, "continue")
	reg(scopeIntro, actionQuit, []string{"q", "esc"}, "quit")

	// Trivia has a focused text input, so printable keys stay unbound.
	reg(scopeTrivia, actionSubmit, []string{"enter"}, "check answer")
	reg(scopeTrivia, actionNextQuestion, []string{"tab", "down"}, "next question")
	reg(scopeTrivia, actionPrevQuestion, []string{"shift+tab", "up"}, "prev question")
	reg(scopeTrivia, actionComplete, []string{"ctrl+s"}, "complete quiz")
	reg(scopeTrivia, actionNextPuzzle, []string{"ctrl+n"}, "next puzzle")

	reg(scopeWordSearch, actionUp, []string{"k", "up"}, "")
	reg(scopeWordSearch, actionDown, []string{"j", "down"}, "")
	reg(scopeWordSearch, actionLeft, []string{"h", "left"}, "")
	reg(scopeWordSearch, actionRight, []string{"l", "right"}, "move")
	reg(scopeWordSearch, actionUpLeft, []string{"y"}, "")
	reg(scopeWordSearch, actionUpRight, []string{"u"}, "")
	reg(scopeWordSearch, actionDownLeft, []string{"b"}, "")
	reg(scopeWordSearch, actionDownRight, []string{"n"}, "diagonals")
	reg(scopeWordSearch, actionSelect, []string{"space", "enter"}, "start/end selection")
	reg(scopeWordSearch, actionCancel, []string{"esc"}, "cancel")
	reg(scopeWordSearch, actionHint, []string{"?"}, "hint")
	reg(scopeWordSearch, actionReset, []string{"r"}, "new grid")
	reg(scopeWordSearch, actionProgress, []string{"p"}, "progress")
	reg(scopeWordSearch, actionComplete, []string{"s"}, "complete")

	reg(scopeTimeline, actionLeft, []string{"h", "left"}, "")
	reg(scopeTimeline, actionRight, []string{"l", "right"}, "pick memory")
	reg(scopeTimeline, actionUp, []string{"k", "up"}, "")
	reg(scopeTimeline, actionDown, []string{"j", "down"}, "pick slot")
	reg(scopeTimeline, actionPlace, []string{"enter", "space"}, "place")
	reg(scopeTimeline, actionUnplace, []string{"x", "backspace"}, "return to pool")
	reg(scopeTimeline, actionMoveUp, []string{"K"}, "")
	reg(scopeTimeline, actionMoveDown, []string{"J"}, "move")
	reg(scopeTimeline, actionCheck, []string{"c"}, "check order")
	reg(scopeTimeline, actionReset, []string{"r"}, "reset")
	reg(scopeTimeline, actionComplete, []string{"s"}, "complete")

	for _, scope := range []string{scopeWordSearch, scopeTimeline} {
		reg(scope, actionPrevPuzzle, []string{"["}, "prev")
		reg(scope, actionNextPuzzle, []string{"]"}, "next")
		reg(scope, actionShowMemory, []string{"1"}, "")
		reg(scope, actionShowSearch, []string{"2"}, "")
		reg(scope, actionShowTimeline, []string{"3"}, "")
		reg(scope, actionQuit, []string{"q"}, "quit")
	}

	reg(scopeFinale, actionReveal, []string{"enter", "space"}, "reveal surprise")
	reg(scopeFinale, actionQuit, []string{"q", "esc"}, "quit")
	reg(scopeSurprise, actionQuit, []string{"q", "esc", "enter"}, "close")

	return r
}

// Register adds b to each of its scopes. Keys already bound in a scope stay
// with their first binding; b is skipped there.
func (r *KeyRegistry) Register(b Binding) {
	if r == nil || len(b.Keys) == 0 {
		return
	}
	keys := canonicalKeys(b.Keys)
	if len(keys) == 0 {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" || r.taken(scope, keys) {
			continue
		}
		bound := b
		bound.Keys = keys
		bound.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &bound)
		index := r.indexByScope[scope]
		if index == nil {
			index = make(map[string]*Binding, len(keys))
			r.indexByScope[scope] = index
		}
		for _, k := range keys {
			index[k] = &bound
		}
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	out := make([]Binding, 0, len(r.bindingsByScope[scope]))
	for _, b := range r.bindingsByScope[scope] {
		out = append(out, *b)
	}
	return out
}

// Lookup resolves a key pressed in scope, then in the global scope.
func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil {
		return nil
	}
	k := canonicalKey(keyName)
	if k == "" {
		return nil
	}
	if b := r.indexByScope[scope][k]; b != nil {
		return b
	}
	return r.indexByScope[scopeGlobal][k]
}

// HelpBindings returns footer help for scope. Bindings without help text are
// folded into a neighbour and skipped.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	var out []key.Binding
	for _, b := range r.BindingsForScope(scope) {
		if b.Help == "" {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

func (r *KeyRegistry) taken(scope string, keys []string) bool {
	for _, k := range keys {
		if r.indexByScope[scope][k] != nil {
			return true
		}
	}
	return false
}

func canonicalKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if c := canonicalKey(k); c != "" && !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out
}

var keyAliases = strings.NewReplacer("control+", "ctrl+", "return", "enter", "spacebar", "space")

// canonicalKey maps a key name to the form tea.KeyMsg.String reports. J and j
// are different keys.
func canonicalKey(k string) string {
	if k == " " {
		return "space"
	}
	k = strings.TrimSpace(k)
	switch {
	case k == "":
		return ""
	case len(k) == 1:
		return k
	}
	return keyAliases.Replace(strings.ReplaceAll(strings.ToLower(k), " ", ""))
}

package wordsearch

import (
	"fmt"
	"slices"
)

// Hint points at a cell worth looking at.
type Hint struct {
	Word    string
	Cell    Cell
	Located bool
	Message string
}

// Puzzle is the word-search session state.
type Puzzle struct {
	opts     Options
	words    []string
	layout   Layout
	found    map[string]bool
	foundAt  map[Cell]bool
	sel      Selection
	dragging bool
}

// New generates a grid for words. Words the fallback layout had to drop are
// removed from the puzzle so it stays solvable.
func New(words []string, opts Options) *Puzzle {
	p := &Puzzle{opts: opts.withDefaults()}
	p.generate(words)
	return p
}

func (p *Puzzle) generate(words []string) {
	p.layout = Generate(words, p.opts)
	p.words = slices.DeleteFunc(slices.Clone(words), func(w string) bool {
		return slices.Contains(p.layout.Dropped, w)
	})
	p.found = make(map[string]bool, len(p.words))
	p.foundAt = make(map[Cell]bool)
	p.sel.Clear()
	p.dragging = false
}

func (p *Puzzle) Grid() *Grid { return p.layout.Grid }

func (p *Puzzle) Layout() Layout { return p.layout }

func (p *Puzzle) Words() []string { return p.words }

func (p *Puzzle) Found(word string) bool { return p.found[word] }

// FoundCell reports whether c belongs to a found word's selection.
func (p *Puzzle) FoundCell(c Cell) bool { return p.foundAt[c] }

func (p *Puzzle) FoundCount() int { return len(p.found) }

func (p *Puzzle) AllFound() bool { return len(p.found) == len(p.words) }

func (p *Puzzle) Selection() *Selection { return &p.sel }

func (p *Puzzle) Dragging() bool { return p.dragging }

// Press starts a drag at c.
func (p *Puzzle) Press(c Cell) {
	if !p.Grid().In(c) {
		return
	}
	p.sel.Start(c)
	p.dragging = true
}

// Enter extends the drag to c.
func (p *Puzzle) Enter(c Cell) bool {
	if !p.dragging || !p.Grid().In(c) {
		return false
	}
	return p.sel.Extend(c)
}

// Release ends the drag and returns the words it found. The selection stays
// until ClearSelection so it can be shown briefly.
func (p *Puzzle) Release() []string {
	if !p.dragging {
		return nil
	}
	p.dragging = false
	if p.sel.Len() < 2 {
		return nil
	}
	text := p.sel.Text(p.Grid())
	var hits []string
	for _, cand := range []string{text, reverse(text)} {
		for _, w := range p.words {
			if w == cand && !p.found[w] {
				p.found[w] = true
				hits = append(hits, w)
			}
		}
	}
	if len(hits) > 0 {
		for _, c := range p.sel.Cells() {
			p.foundAt[c] = true
		}
	}
	return hits
}

func (p *Puzzle) ClearSelection() {
	p.sel.Clear()
	p.dragging = false
}

// Hint picks a random unfound word and points at its first letter.
func (p *Puzzle) Hint() (Hint, bool) {
	var unfound []string
	for _, w := range p.words {
		if !p.found[w] {
			unfound = append(unfound, w)
		}
	}
	if len(unfound) == 0 {
		return Hint{Message: "All words found! No hints needed."}, false
	}
	w := unfound[p.opts.Rand.IntN(len(unfound))]
	if pl, ok := p.Grid().Locate(w); ok {
		return Hint{
			Word:    w,
			Cell:    pl.Start,
			Located: true,
			Message: fmt.Sprintf("💡 Hint: Look for %q - the first letter is highlighted!", w),
		}, true
	}
	g := p.Grid()
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			c := Cell{x, y}
			if g.At(c) == w[0] && !p.foundAt[c] {
				return Hint{
					Word:    w,
					Cell:    c,
					Message: fmt.Sprintf("💡 Hint: Look for %q - a possible first letter is highlighted!", w),
				}, true
			}
		}
	}
	return Hint{Word: w, Message: fmt.Sprintf("💡 Hint: Look for %q somewhere in the grid!", w)}, false
}

// Reset regenerates the grid and clears found words.
func (p *Puzzle) Reset() {
	p.generate(p.words)
}

// Progress reports how far along the player is.
func (p *Puzzle) Progress() (string, bool) {
	if p.AllFound() {
		return "🎉 Amazing! You found all the words!", true
	}
	return fmt.Sprintf("You've found %d out of %d words. Keep going!", p.FoundCount(), len(p.words)), false
}

// Finish checks the win condition.
func (p *Puzzle) Finish() (string, bool) {
	if !p.AllFound() {
		return "Find all words first!", false
	}
	return "🎉 Congratulations! You found all the words!", true
}

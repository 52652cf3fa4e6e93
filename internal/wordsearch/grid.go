// Package wordsearch builds letter grids with hidden words and tracks a
// player's drag selections across them.
package wordsearch

import (
	"math/rand/v2"
	"slices"
	"strings"
)

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Dir is a step between neighbouring cells.
type Dir struct{ DX, DY int }

// Directions are the placement directions: right, down, down-right, up-right.
var Directions = []Dir{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// Cell is a grid coordinate; X is the column.
type Cell struct{ X, Y int }

func (c Cell) step(d Dir) Cell { return Cell{c.X + d.DX, c.Y + d.DY} }

// Placement records where a word sits.
type Placement struct {
	Word  string
	Start Cell
	Dir   Dir
}

// Cells lists the cells covered by p.
func (p Placement) Cells() []Cell {
	out := make([]Cell, 0, len(p.Word))
	c := p.Start
	for range len(p.Word) {
		out = append(out, c)
		c = c.step(p.Dir)
	}
	return out
}

// Grid is a square letter grid. Zero bytes mark empty cells during generation.
type Grid struct {
	size  int
	cells [][]byte
}

func newGrid(size int) *Grid {
	cells := make([][]byte, size)
	for y := range cells {
		cells[y] = make([]byte, size)
	}
	return &Grid{size: size, cells: cells}
}

// ParseGrid builds a grid from equal-length upper-case rows.
func ParseGrid(rows []string) *Grid {
	g := newGrid(len(rows))
	for y, row := range rows {
		copy(g.cells[y], row)
	}
	return g
}

func (g *Grid) Size() int { return g.size }

func (g *Grid) In(c Cell) bool {
	return c.X >= 0 && c.X < g.size && c.Y >= 0 && c.Y < g.size
}

// At returns the letter at c, or 0 outside the grid.
func (g *Grid) At(c Cell) byte {
	if !g.In(c) {
		return 0
	}
	return g.cells[c.Y][c.X]
}

// Rows renders the grid one string per row.
func (g *Grid) Rows() []string {
	out := make([]string, g.size)
	for y := range g.cells {
		out[y] = string(g.cells[y])
	}
	return out
}

func (g *Grid) String() string { return strings.Join(g.Rows(), "\n") }

// canPlace reports whether word fits at start going d; shared cells must agree.
func (g *Grid) canPlace(word string, start Cell, d Dir) bool {
	c := start
	for i := 0; i < len(word); i++ {
		if !g.In(c) {
			return false
		}
		if cur := g.cells[c.Y][c.X]; cur != 0 && cur != word[i] {
			return false
		}
		c = c.step(d)
	}
	return true
}

func (g *Grid) place(word string, start Cell, d Dir) {
	c := start
	for i := 0; i < len(word); i++ {
		g.cells[c.Y][c.X] = word[i]
		c = c.step(d)
	}
}

func (g *Grid) fill(rng *rand.Rand) {
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] == 0 {
				g.cells[y][x] = letters[rng.IntN(len(letters))]
			}
		}
	}
}

// Spells reports whether word reads forward from start going d.
func (g *Grid) Spells(word string, start Cell, d Dir) bool {
	c := start
	for i := 0; i < len(word); i++ {
		if g.At(c) != word[i] {
			return false
		}
		c = c.step(d)
	}
	return true
}

// Locate scans row by row for word in any placement direction.
func (g *Grid) Locate(word string) (Placement, bool) {
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			for _, d := range Directions {
				if g.Spells(word, Cell{x, y}, d) {
					return Placement{Word: word, Start: Cell{x, y}, Dir: d}, true
				}
			}
		}
	}
	return Placement{}, false
}

// Options tune Generate.
type Options struct {
	Size         int
	WordAttempts int
	GridAttempts int
	Rand         *rand.Rand
}

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = 12
	}
	if o.WordAttempts <= 0 {
		o.WordAttempts = 100
	}
	if o.GridAttempts <= 0 {
		o.GridAttempts = 50
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return o
}

// Layout is a generated grid.
type Layout struct {
	Grid       *Grid
	Placements []Placement
	// Attempts is the number of grids tried; zero when the fallback was used.
	Attempts int
	Fallback bool
	// Dropped lists words the fallback layout could not fit.
	Dropped []string
}

// Generate places every word with randomized retries, regenerating the whole
// grid when a word cannot be placed. After GridAttempts failures it falls back
// to a fixed layout.
func Generate(words []string, opts Options) Layout {
	opts = opts.withDefaults()
	for attempt := 1; attempt <= opts.GridAttempts; attempt++ {
		g := newGrid(opts.Size)
		placements, ok := placeAll(g, words, opts)
		if ok {
			g.fill(opts.Rand)
			return Layout{Grid: g, Placements: placements, Attempts: attempt}
		}
	}
	return fallback(words, opts)
}

func placeAll(g *Grid, words []string, opts Options) ([]Placement, bool) {
	placements := make([]Placement, 0, len(words))
	for _, w := range words {
		placed := false
		for try := 0; try < opts.WordAttempts && !placed; try++ {
			d := Directions[opts.Rand.IntN(len(Directions))]
			start := Cell{opts.Rand.IntN(opts.Size), opts.Rand.IntN(opts.Size)}
			if g.canPlace(w, start, d) {
				g.place(w, start, d)
				placements = append(placements, Placement{Word: w, Start: start, Dir: d})
				placed = true
			}
		}
		if !placed {
			return nil, false
		}
	}
	return placements, true
}

var defaultWords = []string{"LOVE", "LAUGH", "FUN", "JOY", "HUG", "KISS", "DATE", "TIME"}

var staticRows = []string{
	"LOVEXYZABCDE",
	"ABCDEFGHIJKL",
	"FUNXYZABCDEF",
	"GHIJOYKLMNOP",
	"QRSTUVWXYZAB",
	"LAUGHXYZABCD",
	"EFGHIJKLMNOP",
	"DATEXYZABCDE",
	"FGHIJKLMNOPQ",
	"HUGXYZABCDEF",
	"KISSXYZABCDE",
	"TIMEKLMNOPQR",
}

func isDefaultSet(words []string) bool {
	a := slices.Clone(words)
	b := slices.Clone(defaultWords)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}

// fallback uses the static grid for the default words, otherwise packs the
// words left to right into rows.
func fallback(words []string, opts Options) Layout {
	if opts.Size == len(staticRows) && isDefaultSet(words) {
		g := ParseGrid(staticRows)
		l := Layout{Grid: g, Fallback: true}
		for _, w := range words {
			if p, ok := g.Locate(w); ok {
				l.Placements = append(l.Placements, p)
			}
		}
		return l
	}

	g := newGrid(opts.Size)
	l := Layout{Grid: g, Fallback: true}
	row, col := 0, 0
	for _, w := range words {
		if col+len(w) > opts.Size {
			row, col = row+1, 0
		}
		if row >= opts.Size || len(w) > opts.Size {
			l.Dropped = append(l.Dropped, w)
			continue
		}
		start := Cell{col, row}
		g.place(w, start, Dir{1, 0})
		l.Placements = append(l.Placements, Placement{Word: w, Start: start, Dir: Dir{1, 0}})
		col += len(w)
	}
	g.fill(opts.Rand)
	return l
}

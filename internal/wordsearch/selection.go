package wordsearch

// Selection is a drag path across the grid. The first extension fixes the
// direction and later cells must repeat that step.
type Selection struct {
	cells []Cell
}

// Start begins a new path at c.
func (s *Selection) Start(c Cell) {
	s.cells = append(s.cells[:0], c)
}

// Extend appends c when it continues the path. It returns false and leaves
// the path unchanged otherwise.
func (s *Selection) Extend(c Cell) bool {
	if len(s.cells) == 0 || s.Contains(c) {
		return false
	}
	last := s.cells[len(s.cells)-1]
	step := Dir{c.X - last.X, c.Y - last.Y}
	if len(s.cells) == 1 {
		if step.DX < -1 || step.DX > 1 || step.DY < -1 || step.DY > 1 {
			return false
		}
	} else if step != s.Dir() {
		return false
	}
	s.cells = append(s.cells, c)
	return true
}

// Dir is the fixed step, or the zero Dir before the first extension.
func (s *Selection) Dir() Dir {
	if len(s.cells) < 2 {
		return Dir{}
	}
	return Dir{s.cells[1].X - s.cells[0].X, s.cells[1].Y - s.cells[0].Y}
}

func (s *Selection) Contains(c Cell) bool {
	for _, sc := range s.cells {
		if sc == c {
			return true
		}
	}
	return false
}

func (s *Selection) Cells() []Cell { return s.cells }

func (s *Selection) Len() int { return len(s.cells) }

func (s *Selection) Clear() { s.cells = s.cells[:0] }

// Text reads the selected letters from g.
func (s *Selection) Text(g *Grid) string {
	b := make([]byte, len(s.cells))
	for i, c := range s.cells {
		b[i] = g.At(c)
	}
	return string(b)
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

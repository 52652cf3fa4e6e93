package puzzle

// Nav is the navigation view-state for the current puzzle.
type Nav struct {
	PrevVisible bool
	NextVisible bool
	NextLabel   string
}

// Nav derives button visibility and labels.
func (m *Manager) Nav() Nav {
	if m.revealed {
		return Nav{}
	}
	n := Nav{PrevVisible: m.current > 1}
	switch {
	case m.current < Total:
		n.NextVisible = true
		n.NextLabel = "Next Puzzle →"
	case m.AllCompleted():
		n.NextVisible = true
		n.NextLabel = "See Results →"
	}
	return n
}

// Indicator is one dot in the progress strip.
type Indicator struct {
	ID        ID
	Name      string
	Active    bool
	Completed bool
	Locked    bool
}

func (m *Manager) Indicators() []Indicator {
	out := make([]Indicator, 0, Total)
	for id := ID(1); id <= Total; id++ {
		out = append(out, Indicator{
			ID:        id,
			Name:      Name(id),
			Active:    id == m.current && !m.revealed,
			Completed: m.completed[id],
			Locked:    !m.Unlocked(id),
		})
	}
	return out
}

package wordsearch

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestGeneratePlacesEveryWord(t *testing.T) {
	for seed := uint64(1); seed <= 200; seed++ {
		l := Generate(defaultWords, Options{Size: 12, Rand: seeded(seed)})
		require.False(t, l.Fallback, "seed %d fell back", seed)
		require.LessOrEqual(t, l.Attempts, 50)
		require.Len(t, l.Placements, len(defaultWords))

		claimed := map[Cell]byte{}
		for _, p := range l.Placements {
			require.True(t, l.Grid.Spells(p.Word, p.Start, p.Dir), "seed %d: %s not readable", seed, p.Word)
			for i, c := range p.Cells() {
				require.True(t, l.Grid.In(c))
				if prev, ok := claimed[c]; ok {
					require.Equal(t, prev, p.Word[i], "seed %d: words disagree at %v", seed, c)
				}
				claimed[c] = p.Word[i]
			}
		}
		for _, row := range l.Grid.Rows() {
			require.Len(t, row, 12)
			for _, ch := range row {
				require.True(t, ch >= 'A' && ch <= 'Z')
			}
		}
	}
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	a := Generate(defaultWords, Options{Rand: seeded(7)})
	b := Generate(defaultWords, Options{Rand: seeded(7)})
	require.Equal(t, a.Grid.Rows(), b.Grid.Rows())
}

func TestStaticGridHoldsDefaultWords(t *testing.T) {
	g := ParseGrid(staticRows)
	require.Equal(t, 12, g.Size())
	for _, w := range defaultWords {
		_, ok := g.Locate(w)
		require.True(t, ok, w)
	}
}

func TestFallbackWhenPlacementImpossible(t *testing.T) {
	// 30 letters cannot fit in 25 cells.
	words := []string{"ABCDE", "FGHIJ", "KLMNO", "PQRST", "UVWXY", "ZABCD"}
	l := Generate(words, Options{Size: 5, WordAttempts: 20, GridAttempts: 3, Rand: seeded(1)})
	require.True(t, l.Fallback)
	require.Equal(t, []string{"ZABCD"}, l.Dropped)
	for _, p := range l.Placements {
		require.True(t, l.Grid.Spells(p.Word, p.Start, p.Dir))
	}
}

func TestFallbackUsesStaticGridForDefaults(t *testing.T) {
	l := fallback(defaultWords, Options{Size: 12}.withDefaults())
	require.True(t, l.Fallback)
	require.Equal(t, staticRows, l.Grid.Rows())
	require.Len(t, l.Placements, len(defaultWords))
}

package sudoku

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"mindgym.dev/mindgym/internal/domain"
)

func requireValidSolution(t *testing.T, g *[9][9]uint8) {
	t.Helper()
	want := 0x3FE // bits 1..9 set
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			m |= 1 << g[r][c]
		}
		require.Equal(t, want, m, "row %d is not a permutation of 1..9", r)
	}
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			m |= 1 << g[r][c]
		}
		require.Equal(t, want, m, "col %d is not a permutation of 1..9", c)
	}
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					m |= 1 << g[br*3+dr][bc*3+dc]
				}
			}
			require.Equal(t, want, m, "box %d,%d is not a permutation of 1..9", br, bc)
		}
	}
}

func TestGenerateValidSolutions(t *testing.T) {
	g := New()
	seeds := []string{"", "2024-1-1", "2024-12-31", "practice-1", "練習"}
	for _, seed := range seeds {
		for _, diff := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard} {
			b, _, err := g.Generate(context.Background(), seed, diff)
			require.NoError(t, err)
			requireValidSolution(t, &b.Solution)
		}
	}
}

func TestPuzzleIsSubsetWithExactReveals(t *testing.T) {
	g := New()
	cases := []struct {
		diff    domain.Difficulty
		reveals int
	}{
		{domain.Easy, 45},
		{domain.Medium, 35},
		{domain.Hard, 24},
	}
	for _, tc := range cases {
		t.Run(tc.diff.String(), func(t *testing.T) {
			b, _, err := g.Generate(context.Background(), "2024-1-1", tc.diff)
			require.NoError(t, err)
			revealed := 0
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					if v := b.Puzzle[r][c]; v != 0 {
						revealed++
						require.Equal(t, b.Solution[r][c], v, "puzzle cell %d,%d disagrees with solution", r, c)
					}
				}
			}
			require.Equal(t, tc.reveals, revealed)
		})
	}
}

func TestUnknownDifficultyFallsBackToMedium(t *testing.T) {
	require.Equal(t, 35, domain.ParseDifficulty("nightmare").Reveals())
	require.Equal(t, 35, domain.ParseDifficulty("").Reveals())
}

func TestGenerateDeterministic(t *testing.T) {
	g := New()
	a, _, err := g.Generate(context.Background(), "2024-1-1", domain.Hard)
	require.NoError(t, err)
	b, _, err := g.Generate(context.Background(), "2024-1-1", domain.Hard)
	require.NoError(t, err)
	require.Equal(t, a.Solution, b.Solution)
	require.Equal(t, a.Puzzle, b.Puzzle)
}

func TestDistinctSeedsUsuallyDiffer(t *testing.T) {
	g := New()
	a, _, err := g.Generate(context.Background(), "2024-1-1", domain.Medium)
	require.NoError(t, err)
	differ := false
	for _, seed := range []string{"2024-1-2", "2024-1-3", "2024-1-4"} {
		b, _, err := g.Generate(context.Background(), seed, domain.Medium)
		require.NoError(t, err)
		if b.Solution != a.Solution {
			differ = true
		}
	}
	require.True(t, differ, "three neighboring daily seeds all produced the same solution")
}

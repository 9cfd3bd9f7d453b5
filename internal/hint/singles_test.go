package hint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"mindgym.dev/mindgym/internal/domain"
	"mindgym.dev/mindgym/internal/sudoku"
)

func TestHintFindsNakedSingle(t *testing.T) {
	b, _, err := sudoku.New().Generate(context.Background(), "2024-1-1", domain.Easy)
	require.NoError(t, err)

	// Blank one cell of the full solution: it has exactly one candidate.
	grid := b.Solution
	grid[3][5] = 0

	h, ok, err := New().Hint(context.Background(), &grid)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []domain.CellCoord{{Row: 3, Col: 5}}, h.Cells)
	require.Equal(t, b.Solution[3][5], h.Value)
	require.NotEmpty(t, h.Message)
}

func TestHintNoneOnCompleteGrid(t *testing.T) {
	b, _, err := sudoku.New().Generate(context.Background(), "2024-1-1", domain.Easy)
	require.NoError(t, err)
	_, ok, err := New().Hint(context.Background(), &b.Solution)
	require.NoError(t, err)
	require.False(t, ok)
}

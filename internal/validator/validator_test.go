package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"mindgym.dev/mindgym/internal/domain"
	"mindgym.dev/mindgym/internal/sudoku"
)

func TestValidateCleanAndConflictingGrids(t *testing.T) {
	b, _, err := sudoku.New().Generate(context.Background(), "2024-1-1", domain.Medium)
	require.NoError(t, err)

	v := New()
	ok, conflicts, err := v.Validate(context.Background(), &b.Solution)
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, conflicts)

	// Introduce a row conflict.
	bad := b.Solution
	bad[0][1] = bad[0][0]
	ok, conflicts, err = v.Validate(context.Background(), &bad)
	require.NoError(t, err)
	require.False(t, ok)
	require.NotEmpty(t, conflicts)
}

func TestValidateIgnoresEmptyCells(t *testing.T) {
	b, _, err := sudoku.New().Generate(context.Background(), "2024-1-1", domain.Hard)
	require.NoError(t, err)
	ok, conflicts, err := New().Validate(context.Background(), &b.Puzzle)
	require.NoError(t, err)
	require.True(t, ok, "a freshly masked puzzle cannot conflict: %v", conflicts)
}

func TestSolved(t *testing.T) {
	b, _, err := sudoku.New().Generate(context.Background(), "2024-1-1", domain.Easy)
	require.NoError(t, err)
	grid := b.Solution
	require.True(t, Solved(&grid, &b.Solution))
	grid[4][4] = 0
	require.False(t, Solved(&grid, &b.Solution))
}

// Package sudoku generates complete boards by deterministic,
// solution-preserving transformation of one canonical solved grid.
// There is no solver in the loop: the solution is known before the
// puzzle exists, and generation cannot fail.
package sudoku

import (
	"context"
	"time"

	"mindgym.dev/mindgym/internal/domain"
	"mindgym.dev/mindgym/internal/ports"
	"mindgym.dev/mindgym/internal/rng"
)

// base is a valid solved grid; every generated board is a
// symmetry-transform of it.
var base = [9][9]uint8{
	{1, 2, 3, 4, 5, 6, 7, 8, 9},
	{4, 5, 6, 7, 8, 9, 1, 2, 3},
	{7, 8, 9, 1, 2, 3, 4, 5, 6},
	{2, 3, 1, 5, 6, 4, 8, 9, 7},
	{5, 6, 4, 8, 9, 7, 2, 3, 1},
	{8, 9, 7, 2, 3, 1, 5, 6, 4},
	{3, 1, 2, 6, 4, 5, 9, 7, 8},
	{6, 4, 5, 9, 7, 8, 3, 1, 2},
	{9, 7, 8, 3, 1, 2, 6, 4, 5},
}

// Generator is the transformation-based sudoku generator.
type Generator struct{}

func New() *Generator { return &Generator{} }

// Generate builds the solution and masked puzzle for (seed, difficulty).
// Identical inputs yield identical grids; the error is always nil and
// exists only to satisfy the port.
func (g *Generator) Generate(ctx context.Context, seed string, diff domain.Difficulty) (*domain.SudokuBoard, ports.Stats, error) {
	start := time.Now()
	stream := rng.New(seed)

	grid := base
	if stream.Coin() {
		transpose(&grid)
	}
	shuffleRowsWithinBands(&grid, stream)
	// Column bands: transpose, reuse the row routine, transpose back.
	transpose(&grid)
	shuffleRowsWithinBands(&grid, stream)
	transpose(&grid)
	if stream.Coin() {
		shuffleBands(&grid, stream)
	}
	if stream.Coin() {
		relabelDigits(&grid, stream)
	}

	puzzle := mask(&grid, diff.Reveals(), stream)

	out := &domain.SudokuBoard{Solution: grid, Puzzle: puzzle}
	return out, ports.Stats{Duration: time.Since(start)}, nil
}

// mask reveals exactly n cells of the solution, chosen by shuffling all
// 81 cell indices and keeping the first n.
func mask(solution *[9][9]uint8, n int, stream *rng.Stream) [9][9]uint8 {
	idx := make([]int, 81)
	for i := range idx {
		idx[i] = i
	}
	stream.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

	var puzzle [9][9]uint8
	for _, pos := range idx[:n] {
		r, c := pos/9, pos%9
		puzzle[r][c] = solution[r][c]
	}
	return puzzle
}

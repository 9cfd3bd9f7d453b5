// Package memory generates flash sequences for the spatial-memory game.
// It rides the same deterministic stream contract as the sudoku
// generator, so the daily sequence is shared by all players.
package memory

import (
	"context"
	"errors"

	"mindgym.dev/mindgym/internal/domain"
	"mindgym.dev/mindgym/internal/rng"
)

// DefaultGridSize is the side of the spatial-memory board.
const DefaultGridSize = 3

// baseLength is the round-1 sequence length; each round adds one cell.
const baseLength = 3

var (
	errBadRound = errors.New("memory: round must be >= 1")
	errBadGrid  = errors.New("memory: grid must be at least 2x2")
)

// Sequencer implements ports.MemorySequencer.
type Sequencer struct{}

func New() *Sequencer { return &Sequencer{} }

// Sequence returns the cells to flash for a round. The full sequence
// for round n extends the one for round n-1 by a single cell, so a
// player replays the prefix they already know. Consecutive cells never
// repeat, which keeps every flash visible.
func (s *Sequencer) Sequence(ctx context.Context, seed string, round, gridSize int) ([]domain.CellCoord, error) {
	if round < 1 {
		return nil, errBadRound
	}
	if gridSize <= 0 {
		gridSize = DefaultGridSize
	}
	// A single cell cannot satisfy the no-immediate-repeat rule.
	if gridSize < 2 {
		return nil, errBadGrid
	}
	stream := rng.New(seed)
	n := baseLength + round - 1
	out := make([]domain.CellCoord, 0, n)
	for len(out) < n {
		cell := domain.CellCoord{
			Row: stream.IntN(gridSize),
			Col: stream.IntN(gridSize),
		}
		if len(out) > 0 && out[len(out)-1] == cell {
			continue
		}
		out = append(out, cell)
	}
	return out, nil
}

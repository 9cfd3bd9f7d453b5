package ports

import (
	"context"
	"time"

	"mindgym.dev/mindgym/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Duration time.Duration
}

// SudokuGenerator produces a full solution plus masked puzzle from a seed.
type SudokuGenerator interface {
	Generate(ctx context.Context, seed string, difficulty domain.Difficulty) (*domain.SudokuBoard, Stats, error)
}

// CrosswordLayouter places oracle words on a square grid. The returned
// list may be shorter than the input; callers must tolerate dropped words.
type CrosswordLayouter interface {
	Layout(ctx context.Context, words []domain.WordEntry, size int) ([]domain.PlacedWord, *domain.CrosswordGrid, Stats, error)
}

// MemorySequencer derives the flash sequence for a spatial-memory round.
type MemorySequencer interface {
	Sequence(ctx context.Context, seed string, round, gridSize int) ([]domain.CellCoord, error)
}

// Validator performs fast constraint checks (row/col/box) on a board.
type Validator interface {
	Validate(ctx context.Context, grid *[9][9]uint8) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical sudoku step, if one exists.
type Hinter interface {
	Hint(ctx context.Context, grid *[9][9]uint8) (domain.Hint, bool, error)
}

// Oracle supplies crossword word/clue pairs for a topic. Implemented by
// the generative content service and by a built-in offline list.
type Oracle interface {
	Words(ctx context.Context, topic string, count int) ([]domain.WordEntry, error)
}

// Storage persists and retrieves puzzles.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}

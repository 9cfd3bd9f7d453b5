package validator

import (
	"context"

	"mindgym.dev/mindgym/internal/domain"
)

// FastValidator reports rule conflicts on a user-entered sudoku grid
// using per-unit bitmasks. Zero cells are ignored.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, grid *[9][9]uint8) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			m = mark(m, grid[r][c], r, c, &conf)
		}
	}
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			m = mark(m, grid[r][c], r, c, &conf)
		}
	}
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r, c := br*3+dr, bc*3+dc
					m = mark(m, grid[r][c], r, c, &conf)
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}

func mark(m int, val uint8, r, c int, conf *[]domain.CellCoord) int {
	if val == 0 {
		return m
	}
	bit := 1 << val
	if m&bit != 0 {
		*conf = append(*conf, domain.CellCoord{Row: r, Col: c})
	}
	return m | bit
}

// Solved reports whether grid is complete and equal to solution.
func Solved(grid, solution *[9][9]uint8) bool {
	return *grid == *solution
}

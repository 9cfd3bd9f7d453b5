package hint

import (
	"context"
	"fmt"

	"mindgym.dev/mindgym/internal/domain"
)

// Singles suggests naked singles: empty cells with exactly one
// candidate left. That is all the hinting MindGym offers; harder
// deductions stay with the player.
type Singles struct{}

func New() *Singles { return &Singles{} }

// Hint returns the first naked single found in scan order.
func (h *Singles) Hint(ctx context.Context, grid *[9][9]uint8) (domain.Hint, bool, error) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if grid[r][c] != 0 {
				continue
			}
			if v, ok := soleCandidate(grid, r, c); ok {
				return domain.Hint{
					Message: fmt.Sprintf("Only %d fits here", v),
					Cells:   []domain.CellCoord{{Row: r, Col: c}},
					Value:   v,
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}

func soleCandidate(g *[9][9]uint8, r, c int) (uint8, bool) {
	var last uint8
	count := 0
	for v := uint8(1); v <= 9; v++ {
		if allowed(g, r, c, v) {
			count++
			last = v
			if count > 1 {
				return 0, false
			}
		}
	}
	return last, count == 1
}

func allowed(g *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

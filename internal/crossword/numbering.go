package crossword

import "mindgym.dev/mindgym/internal/domain"

// number assigns standard clue numbers in row-major order of start
// cells. Across and down words starting at the same cell share one
// number.
func number(placed []domain.PlacedWord) {
	byStart := make(map[domain.CellCoord][]int, len(placed))
	for i, p := range placed {
		key := domain.CellCoord{Row: p.Row, Col: p.Col}
		byStart[key] = append(byStart[key], i)
	}

	maxRow, maxCol := 0, 0
	for _, p := range placed {
		if p.Row > maxRow {
			maxRow = p.Row
		}
		if p.Col > maxCol {
			maxCol = p.Col
		}
	}

	next := 1
	for r := 0; r <= maxRow; r++ {
		for c := 0; c <= maxCol; c++ {
			idxs, ok := byStart[domain.CellCoord{Row: r, Col: c}]
			if !ok {
				continue
			}
			for _, i := range idxs {
				placed[i].Number = next
			}
			next++
		}
	}
}

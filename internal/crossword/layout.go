// Package crossword places answer/clue pairs on a square grid using a
// deterministic greedy strategy. Placement is lossy: words without a
// legal intersection are dropped, and callers must render whatever
// subset survives.
package crossword

import (
	"context"
	"sort"
	"time"

	"mindgym.dev/mindgym/internal/domain"
	"mindgym.dev/mindgym/internal/ports"
)

// DefaultGridSize is the standard MindGym crossword board.
const DefaultGridSize = 12

// Engine implements ports.CrosswordLayouter.
type Engine struct{}

func New() *Engine { return &Engine{} }

// gridState is owned exclusively by one Layout call. It is never
// aliased by the caller; only the finished immutable outputs escape.
type gridState struct {
	size  int
	cells [][]byte
}

func newGridState(size int) *gridState {
	cells := make([][]byte, size)
	for i := range cells {
		cells[i] = make([]byte, size)
	}
	return &gridState{size: size, cells: cells}
}

func (g *gridState) at(r, c int) byte {
	if r < 0 || r >= g.size || c < 0 || c >= g.size {
		return 0
	}
	return g.cells[r][c]
}

func (g *gridState) empty(r, c int) bool {
	if r < 0 || r >= g.size || c < 0 || c >= g.size {
		return true // off-grid counts as empty for adjacency checks
	}
	return g.cells[r][c] == 0
}

// Layout places words on a size×size grid and numbers the result.
// A size of 0 or less selects DefaultGridSize.
func (e *Engine) Layout(ctx context.Context, words []domain.WordEntry, size int) ([]domain.PlacedWord, *domain.CrosswordGrid, ports.Stats, error) {
	start := time.Now()
	if size <= 0 {
		size = DefaultGridSize
	}
	placed, grid := layout(words, size)
	number(placed)
	return placed, grid.render(), ports.Stats{Duration: time.Since(start)}, nil
}

func layout(words []domain.WordEntry, size int) ([]domain.PlacedWord, *gridState) {
	grid := newGridState(size)
	if len(words) == 0 {
		return []domain.PlacedWord{}, grid
	}

	// Longest first; ties keep original order so layout is a pure
	// function of the input list.
	sorted := make([]domain.WordEntry, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Answer) > len(sorted[j].Answer)
	})

	// Anchor with the longest word that fits the grid at all; longer
	// answers can never be placed and are dropped like any other
	// unplaceable word.
	anchor := -1
	for i, w := range sorted {
		if n := len(w.Answer); n > 0 && n <= size {
			anchor = i
			break
		}
	}
	if anchor == -1 {
		return []domain.PlacedWord{}, grid
	}

	placed := make([]domain.PlacedWord, 0, len(sorted))
	first := sorted[anchor]
	row := size / 2
	col := (size - len(first.Answer)) / 2
	grid.write(first.Answer, row, col, domain.Across)
	placed = append(placed, domain.PlacedWord{
		Answer: first.Answer, Clue: first.Clue,
		Row: row, Col: col, Direction: domain.Across,
	})

	// Two ordered passes: a word whose only anchor is placed later in
	// pass one still gets a chance in pass two. Anything left after
	// that is dropped.
	done := make([]bool, len(sorted))
	done[anchor] = true
	for pass := 0; pass < 2; pass++ {
		for i, w := range sorted {
			if done[i] {
				continue
			}
			if pw, ok := tryPlace(grid, w, placed); ok {
				grid.write(pw.Answer, pw.Row, pw.Col, pw.Direction)
				placed = append(placed, pw)
				done[i] = true
			}
		}
	}
	return placed, grid
}

// tryPlace searches every placed word for a shared letter and tests the
// perpendicular position it implies. The first legal fit wins.
func tryPlace(grid *gridState, w domain.WordEntry, placed []domain.PlacedWord) (domain.PlacedWord, bool) {
	for _, p := range placed {
		for j := 0; j < len(w.Answer); j++ {
			for k := 0; k < len(p.Answer); k++ {
				if w.Answer[j] != p.Answer[k] {
					continue
				}
				var row, col int
				var dir domain.Direction
				if p.Direction == domain.Across {
					dir = domain.Down
					row = p.Row - j
					col = p.Col + k
				} else {
					dir = domain.Across
					row = p.Row + k
					col = p.Col - j
				}
				if grid.canPlace(w.Answer, row, col, dir) {
					return domain.PlacedWord{
						Answer: w.Answer, Clue: w.Clue,
						Row: row, Col: col, Direction: dir,
					}, true
				}
			}
		}
	}
	return domain.PlacedWord{}, false
}

// canPlace applies the adjacency rules: the word fits on the grid, the
// cells just before and after it along its axis are empty, every
// overlap matches exactly, and every freshly written letter has empty
// perpendicular neighbors.
func (g *gridState) canPlace(answer string, row, col int, dir domain.Direction) bool {
	n := len(answer)
	if n == 0 {
		return false
	}
	dr, dc := 0, 1
	if dir == domain.Down {
		dr, dc = 1, 0
	}
	if row < 0 || col < 0 || row+dr*(n-1) >= g.size || col+dc*(n-1) >= g.size {
		return false
	}
	if !g.empty(row-dr, col-dc) || !g.empty(row+dr*n, col+dc*n) {
		return false
	}
	for i := 0; i < n; i++ {
		r, c := row+dr*i, col+dc*i
		if cur := g.at(r, c); cur != 0 {
			if cur != answer[i] {
				return false
			}
			continue
		}
		// New letter: both perpendicular neighbors must be empty so we
		// never create an unintended word fragment.
		if !g.empty(r-dc, c-dr) || !g.empty(r+dc, c+dr) {
			return false
		}
	}
	return true
}

// render freezes the working grid into the immutable output form.
func (g *gridState) render() *domain.CrosswordGrid {
	rows := make([]string, g.size)
	buf := make([]byte, g.size)
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.cells[r][c] == 0 {
				buf[c] = '.'
			} else {
				buf[c] = g.cells[r][c]
			}
		}
		rows[r] = string(buf)
	}
	return &domain.CrosswordGrid{Size: g.size, Rows: rows}
}

func (g *gridState) write(answer string, row, col int, dir domain.Direction) {
	dr, dc := 0, 1
	if dir == domain.Down {
		dr, dc = 1, 0
	}
	for i := 0; i < len(answer); i++ {
		g.cells[row+dr*i][col+dc*i] = answer[i]
	}
}

package sudoku

import "mindgym.dev/mindgym/internal/rng"

// The transform set is deliberately narrow: row permutations within a
// band, whole-band permutations, transposition, and digit relabeling
// all preserve row/column/box uniqueness. Arbitrary row swaps across
// bands would not.

func transpose(g *[9][9]uint8) {
	for r := 0; r < 9; r++ {
		for c := r + 1; c < 9; c++ {
			g[r][c], g[c][r] = g[c][r], g[r][c]
		}
	}
}

// shuffleRowsWithinBands permutes the 3 rows inside each horizontal
// band, each band gated by its own coin flip.
func shuffleRowsWithinBands(g *[9][9]uint8, stream *rng.Stream) {
	for band := 0; band < 3; band++ {
		if !stream.Coin() {
			continue
		}
		baseRow := band * 3
		stream.Shuffle(3, func(i, j int) {
			g[baseRow+i], g[baseRow+j] = g[baseRow+j], g[baseRow+i]
		})
	}
}

// shuffleBands permutes the three 3-row bands as blocks.
func shuffleBands(g *[9][9]uint8, stream *rng.Stream) {
	stream.Shuffle(3, func(i, j int) {
		for k := 0; k < 3; k++ {
			g[i*3+k], g[j*3+k] = g[j*3+k], g[i*3+k]
		}
	})
}

// relabelDigits applies a random bijection of 1..9 to every cell.
func relabelDigits(g *[9][9]uint8, stream *rng.Stream) {
	digits := [9]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	stream.Shuffle(9, func(i, j int) {
		digits[i], digits[j] = digits[j], digits[i]
	})
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g[r][c] = digits[g[r][c]-1]
		}
	}
}

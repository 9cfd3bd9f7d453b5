package domain

// SudokuBoard pairs the full solution with the masked puzzle grid.
// A zero in Puzzle marks a masked cell; every non-zero cell equals
// the corresponding Solution cell.
type SudokuBoard struct {
	Solution [9][9]uint8 `json:"solution"`
	Puzzle   [9][9]uint8 `json:"puzzle"`
}

// CellCoord identifies a cell on a grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// WordEntry is an answer/clue pair from the content oracle.
// Answers are uppercase alphabetic tokens; the layout engine trusts
// that and simply fails placement for anything else.
type WordEntry struct {
	Answer string `json:"answer"`
	Clue   string `json:"clue"`
}

// PlacedWord is a WordEntry with a committed grid position.
// Immutable once the layout completes.
type PlacedWord struct {
	Answer    string    `json:"answer"`
	Clue      string    `json:"clue"`
	Row       int       `json:"row"`
	Col       int       `json:"col"`
	Direction Direction `json:"direction"`
	Number    int       `json:"number"`
}

// CrosswordGrid is the finished letter grid, one string per row. A '.'
// is a cell no word passes through (rendered black).
type CrosswordGrid struct {
	Size int      `json:"size"`
	Rows []string `json:"rows"`
}

// At returns the letter at (r, c), or '.' for an empty cell.
func (g *CrosswordGrid) At(r, c int) byte {
	return g.Rows[r][c]
}

// Hint describes a suggested sudoku move for the UI.
type Hint struct {
	Message string      `json:"message,omitempty"`
	Cells   []CellCoord `json:"cells,omitempty"`
	Value   uint8       `json:"value,omitempty"`
}

// Puzzle is a persisted puzzle of any game with metadata.
// Exactly one of Sudoku, Crossword, Memory is set, per Game.
type Puzzle struct {
	ID         string       `json:"id"`
	Game       Game         `json:"game"`
	Mode       Mode         `json:"mode"`
	Seed       string       `json:"seed"`
	Difficulty Difficulty   `json:"difficulty,omitempty"`
	Sudoku     *SudokuBoard `json:"sudoku,omitempty"`
	Crossword  []PlacedWord `json:"crossword,omitempty"`
	Memory     []CellCoord  `json:"memory,omitempty"`
	CreatedAt  int64        `json:"createdAt"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Game      Game   `json:"game"`
	Mode      Mode   `json:"mode"`
	Seed      string `json:"seed"`
	CreatedAt int64  `json:"createdAt"`
}

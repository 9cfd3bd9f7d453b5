package domain

import "strings"

// Difficulty selects how many cells a generated sudoku reveals.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// ParseDifficulty maps the wire strings to a Difficulty.
// Unrecognized values fall back to Medium.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	default:
		return Medium
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

// Reveals returns how many of the 81 cells stay visible in the puzzle grid.
func (d Difficulty) Reveals() int {
	switch d {
	case Easy:
		return 45
	case Hard:
		return 24
	default:
		return 35
	}
}

// Mode distinguishes the shared daily puzzle from per-request practice puzzles.
type Mode int

const (
	Daily Mode = iota
	Practice
)

// ParseMode maps the wire strings to a Mode. Unrecognized values mean Practice.
func ParseMode(s string) Mode {
	if strings.ToLower(strings.TrimSpace(s)) == "daily" {
		return Daily
	}
	return Practice
}

func (m Mode) String() string {
	if m == Daily {
		return "daily"
	}
	return "practice"
}

// Game identifies a MindGym mini-game.
type Game int

const (
	GameSudoku Game = iota
	GameCrossword
	GameMemory
)

func (g Game) String() string {
	switch g {
	case GameCrossword:
		return "crossword"
	case GameMemory:
		return "memory"
	default:
		return "sudoku"
	}
}

// Direction is a crossword placement axis.
type Direction string

const (
	Across Direction = "across"
	Down   Direction = "down"
)

package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"mindgym.dev/mindgym/internal/crossword"
	"mindgym.dev/mindgym/internal/domain"
	"mindgym.dev/mindgym/internal/ports"
	"mindgym.dev/mindgym/internal/seed"
	"mindgym.dev/mindgym/internal/validator"
)

// wordCount is how many entries we request from the oracle per
// crossword; layout may place fewer.
const wordCount = 10

var errNotConfigured = errors.New("usecase dependency not configured")

var oracleFallbacks = promauto.NewCounter(prometheus.CounterOpts{
	Name: "mindgym_oracle_fallbacks_total",
	Help: "Crossword requests served from the built-in word list after an oracle failure.",
})

// Service orchestrates generation, validation, hints and persistence
// for all mini-games. The deterministic cores stay pure; everything
// stateful (storage, the oracle, the clock) lives here.
type Service struct {
	Sudoku    ports.SudokuGenerator
	Crossword ports.CrosswordLayouter
	Memory    ports.MemorySequencer
	Validator ports.Validator
	Hinter    ports.Hinter
	Oracle    ports.Oracle
	Fallback  ports.Oracle
	Storage   ports.Storage
	Logger    *slog.Logger

	// Now is the clock used for daily seeds; overridable in tests.
	Now func() time.Time
}

func NewService(
	sg ports.SudokuGenerator,
	cl ports.CrosswordLayouter,
	ms ports.MemorySequencer,
	v ports.Validator,
	h ports.Hinter,
	oracle, fallback ports.Oracle,
	st ports.Storage,
	logger *slog.Logger,
) *Service {
	return &Service{
		Sudoku:    sg,
		Crossword: cl,
		Memory:    ms,
		Validator: v,
		Hinter:    h,
		Oracle:    oracle,
		Fallback:  fallback,
		Storage:   st,
		Logger:    logger,
		Now:       time.Now,
	}
}

// log guards against literal construction leaving Logger nil.
func (u *Service) log() *slog.Logger {
	if u.Logger != nil {
		return u.Logger
	}
	return slog.Default()
}

// seedAndID resolves the seed and persistent ID for a game/mode pair.
// Daily puzzles are keyed by date so every player shares one instance;
// practice puzzles get a random seed and a uuid.
func (u *Service) seedAndID(game domain.Game, mode domain.Mode) (string, string, error) {
	if mode == domain.Daily {
		s := seed.Daily(u.Now())
		return s, fmt.Sprintf("%s-daily-%s", game, s), nil
	}
	s, err := seed.Practice()
	if err != nil {
		return "", "", err
	}
	return s, fmt.Sprintf("%s-%s", game, uuid.NewString()), nil
}

// loadExisting returns the persisted puzzle for id, if any. A stored
// daily puzzle wins over regeneration so restored sessions keep their
// state.
func (u *Service) loadExisting(ctx context.Context, mode domain.Mode, id string) *domain.Puzzle {
	if mode != domain.Daily || u.Storage == nil {
		return nil
	}
	p, err := u.Storage.Load(ctx, id)
	if err != nil {
		return nil
	}
	return p
}

func (u *Service) persist(ctx context.Context, p *domain.Puzzle) {
	if u.Storage == nil {
		return
	}
	if err := u.Storage.Save(ctx, p); err != nil {
		u.log().Warn("persist puzzle", "id", p.ID, "err", err)
	}
}

// NewSudoku generates (or restores) a sudoku puzzle.
func (u *Service) NewSudoku(ctx context.Context, mode domain.Mode, diff domain.Difficulty) (*domain.Puzzle, error) {
	if u.Sudoku == nil {
		return nil, errNotConfigured
	}
	sd, id, err := u.seedAndID(domain.GameSudoku, mode)
	if err != nil {
		return nil, err
	}
	// Daily ids include the difficulty: easy and hard players on the
	// same date play different reveals of the same solution.
	if mode == domain.Daily {
		id = fmt.Sprintf("%s-%s", id, diff)
	}
	if p := u.loadExisting(ctx, mode, id); p != nil {
		return p, nil
	}
	board, _, err := u.Sudoku.Generate(ctx, sd, diff)
	if err != nil {
		return nil, err
	}
	p := &domain.Puzzle{
		ID:         id,
		Game:       domain.GameSudoku,
		Mode:       mode,
		Seed:       sd,
		Difficulty: diff,
		Sudoku:     board,
		CreatedAt:  u.Now().UnixNano(),
	}
	u.persist(ctx, p)
	return p, nil
}

// CheckSudoku validates a player's grid against the stored puzzle.
func (u *Service) CheckSudoku(ctx context.Context, id string, grid [9][9]uint8) (ok bool, solved bool, conflicts []domain.CellCoord, err error) {
	if u.Validator == nil || u.Storage == nil {
		return false, false, nil, errNotConfigured
	}
	p, err := u.Storage.Load(ctx, id)
	if err != nil {
		return false, false, nil, err
	}
	if p.Sudoku == nil {
		return false, false, nil, fmt.Errorf("puzzle %s is not a sudoku", id)
	}
	ok, conflicts, err = u.Validator.Validate(ctx, &grid)
	if err != nil {
		return false, false, nil, err
	}
	solved = validator.Solved(&grid, &p.Sudoku.Solution)
	return ok, solved, conflicts, nil
}

// HintSudoku suggests the next move for a player's grid.
func (u *Service) HintSudoku(ctx context.Context, grid [9][9]uint8) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, &grid)
}

// NewCrossword asks the oracle for words about topic and lays them out.
// An oracle failure falls back to the built-in list; the layout itself
// never fails, it just places fewer words.
//
// There is exactly one daily crossword per calendar date: the first
// daily request fixes its words, and later daily requests return that
// stored puzzle whatever topic they carry. Topic variety belongs to
// practice mode.
func (u *Service) NewCrossword(ctx context.Context, mode domain.Mode, topic string) (*domain.Puzzle, *domain.CrosswordGrid, error) {
	if u.Crossword == nil {
		return nil, nil, errNotConfigured
	}
	sd, id, err := u.seedAndID(domain.GameCrossword, mode)
	if err != nil {
		return nil, nil, err
	}
	if p := u.loadExisting(ctx, mode, id); p != nil {
		grid := rebuildGrid(p.Crossword)
		return p, grid, nil
	}

	words, err := u.fetchWords(ctx, topic)
	if err != nil {
		return nil, nil, err
	}
	placed, grid, _, err := u.Crossword.Layout(ctx, words, crossword.DefaultGridSize)
	if err != nil {
		return nil, nil, err
	}
	p := &domain.Puzzle{
		ID:        id,
		Game:      domain.GameCrossword,
		Mode:      mode,
		Seed:      sd,
		Crossword: placed,
		CreatedAt: u.Now().UnixNano(),
	}
	u.persist(ctx, p)
	return p, grid, nil
}

func (u *Service) fetchWords(ctx context.Context, topic string) ([]domain.WordEntry, error) {
	if u.Oracle != nil {
		words, err := u.Oracle.Words(ctx, topic, wordCount)
		if err == nil {
			return words, nil
		}
		u.log().Warn("oracle failed, using built-in words", "topic", topic, "err", err)
		oracleFallbacks.Inc()
	}
	if u.Fallback == nil {
		return nil, errNotConfigured
	}
	return u.Fallback.Words(ctx, topic, wordCount)
}

// rebuildGrid re-renders the letter grid from persisted placements.
func rebuildGrid(placed []domain.PlacedWord) *domain.CrosswordGrid {
	size := crossword.DefaultGridSize
	cells := make([][]byte, size)
	for i := range cells {
		cells[i] = bytes.Repeat([]byte{'.'}, size)
	}
	for _, p := range placed {
		dr, dc := 0, 1
		if p.Direction == domain.Down {
			dr, dc = 1, 0
		}
		for i := 0; i < len(p.Answer); i++ {
			cells[p.Row+dr*i][p.Col+dc*i] = p.Answer[i]
		}
	}
	rows := make([]string, size)
	for i, row := range cells {
		rows[i] = string(row)
	}
	return &domain.CrosswordGrid{Size: size, Rows: rows}
}

// NewMemory generates (or restores) a spatial-memory sequence.
func (u *Service) NewMemory(ctx context.Context, mode domain.Mode, round int) (*domain.Puzzle, error) {
	if u.Memory == nil {
		return nil, errNotConfigured
	}
	sd, id, err := u.seedAndID(domain.GameMemory, mode)
	if err != nil {
		return nil, err
	}
	if mode == domain.Daily {
		id = fmt.Sprintf("%s-r%d", id, round)
	}
	if p := u.loadExisting(ctx, mode, id); p != nil {
		return p, nil
	}
	seq, err := u.Memory.Sequence(ctx, sd, round, 0)
	if err != nil {
		return nil, err
	}
	p := &domain.Puzzle{
		ID:        id,
		Game:      domain.GameMemory,
		Mode:      mode,
		Seed:      sd,
		Memory:    seq,
		CreatedAt: u.Now().UnixNano(),
	}
	u.persist(ctx, p)
	return p, nil
}

// Persistence passthroughs.

func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}

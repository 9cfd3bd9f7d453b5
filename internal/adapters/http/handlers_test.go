package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mindgym.dev/mindgym/internal/crossword"
	"mindgym.dev/mindgym/internal/domain"
	"mindgym.dev/mindgym/internal/hint"
	"mindgym.dev/mindgym/internal/infrastructure/storage"
	"mindgym.dev/mindgym/internal/memory"
	"mindgym.dev/mindgym/internal/oracle"
	"mindgym.dev/mindgym/internal/sudoku"
	"mindgym.dev/mindgym/internal/usecase"
	"mindgym.dev/mindgym/internal/validator"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := usecase.NewService(
		sudoku.New(),
		crossword.New(),
		memory.New(),
		validator.New(),
		hint.New(),
		nil,
		oracle.NewStatic(),
		storage.NewFS(t.TempDir()),
		logger,
	)
	uc.Now = func() time.Time {
		return time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
	}
	mux := http.NewServeMux()
	New(uc).Register(mux)
	return mux
}

func postJSON(t *testing.T, mux *http.ServeMux, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestSudokuNewEndpoint(t *testing.T) {
	mux := newTestMux(t)
	rec := postJSON(t, mux, "/api/sudoku/new", sudokuNewReq{Mode: "daily", Difficulty: "hard"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp sudokuNewResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "2024-1-1", resp.Seed)
	require.Equal(t, "sudoku-daily-2024-1-1-hard", resp.ID)
	require.Equal(t, "hard", resp.Difficulty)

	revealed := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if resp.Puzzle[r][c] != 0 {
				revealed++
			}
		}
	}
	require.Equal(t, 24, revealed)
}

func TestSudokuNewRejectsGet(t *testing.T) {
	mux := newTestMux(t)
	req := httptest.NewRequest(http.MethodGet, "/api/sudoku/new", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSudokuCheckEndpoint(t *testing.T) {
	mux := newTestMux(t)
	rec := postJSON(t, mux, "/api/sudoku/new", sudokuNewReq{Mode: "daily", Difficulty: "easy"})
	require.Equal(t, http.StatusOK, rec.Code)
	var created sudokuNewResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = postJSON(t, mux, "/api/sudoku/check", sudokuCheckReq{ID: created.ID, Grid: created.Puzzle})
	require.Equal(t, http.StatusOK, rec.Code)
	var check sudokuCheckResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &check))
	require.True(t, check.OK)
	require.False(t, check.Solved)

	rec = postJSON(t, mux, "/api/sudoku/check", sudokuCheckReq{ID: "nope", Grid: created.Puzzle})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSudokuHintEndpoint(t *testing.T) {
	mux := newTestMux(t)

	// A nearly complete grid has exactly one naked single at the blank.
	b, _, err := sudoku.New().Generate(context.Background(), "2024-1-1", domain.Easy)
	require.NoError(t, err)
	grid := b.Solution
	grid[2][7] = 0

	rec := postJSON(t, mux, "/api/sudoku/hint", sudokuHintReq{Grid: grid})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp sudokuHintResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Found)
	require.Equal(t, b.Solution[2][7], resp.Hint.Value)
}

func TestCrosswordNewEndpoint(t *testing.T) {
	mux := newTestMux(t)
	rec := postJSON(t, mux, "/api/crossword/new", crosswordNewReq{Mode: "practice", Topic: "minds"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp crosswordNewResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Words)
	require.Equal(t, crossword.DefaultGridSize, resp.Grid.Size)
	for _, w := range resp.Words {
		require.Positive(t, w.Number)
	}
}

func TestMemoryNewEndpoint(t *testing.T) {
	mux := newTestMux(t)
	rec := postJSON(t, mux, "/api/memory/new", memoryNewReq{Mode: "daily", Round: 2})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp memoryNewResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Sequence, 4)
	require.Equal(t, "2024-1-1", resp.Seed)
}

func TestSaveEndpoint(t *testing.T) {
	mux := newTestMux(t)

	b, _, err := sudoku.New().Generate(context.Background(), "2024-1-2", domain.Medium)
	require.NoError(t, err)
	p := domain.Puzzle{
		ID:     "sudoku-resumed-game",
		Game:   domain.GameSudoku,
		Mode:   domain.Practice,
		Seed:   "2024-1-2",
		Sudoku: b,
	}
	rec := postJSON(t, mux, "/api/puzzles/save", p)
	require.Equal(t, http.StatusOK, rec.Code)
	var saved saveResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	require.Equal(t, p.ID, saved.ID)

	// The saved puzzle is loadable again.
	req := httptest.NewRequest(http.MethodGet, "/api/puzzles/load?id="+p.ID, nil)
	rec2 := httptest.NewRecorder()
	mux.ServeHTTP(rec2, req)
	require.Equal(t, http.StatusOK, rec2.Code)
	var got domain.Puzzle
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &got))
	require.Equal(t, p.Sudoku.Puzzle, got.Sudoku.Puzzle)

	// Missing ID is rejected before storage.
	rec = postJSON(t, mux, "/api/puzzles/save", domain.Puzzle{Game: domain.GameSudoku})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoadAndListEndpoints(t *testing.T) {
	mux := newTestMux(t)
	rec := postJSON(t, mux, "/api/sudoku/new", sudokuNewReq{Mode: "daily"})
	var created sudokuNewResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	req := httptest.NewRequest(http.MethodGet, "/api/puzzles/load?id="+created.ID, nil)
	rec2 := httptest.NewRecorder()
	mux.ServeHTTP(rec2, req)
	require.Equal(t, http.StatusOK, rec2.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/puzzles/load?id=ghost", nil)
	rec2 = httptest.NewRecorder()
	mux.ServeHTTP(rec2, req)
	require.Equal(t, http.StatusNotFound, rec2.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/puzzles/list", nil)
	rec2 = httptest.NewRecorder()
	mux.ServeHTTP(rec2, req)
	require.Equal(t, http.StatusOK, rec2.Code)
	var list listResp
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &list))
	require.Equal(t, 1, list.Count)
}

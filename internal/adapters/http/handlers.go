package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"mindgym.dev/mindgym/internal/domain"
	"mindgym.dev/mindgym/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/sudoku/new", h.handleSudokuNew)
	mux.HandleFunc("/api/sudoku/check", h.handleSudokuCheck)
	mux.HandleFunc("/api/sudoku/hint", h.handleSudokuHint)
	mux.HandleFunc("/api/crossword/new", h.handleCrosswordNew)
	mux.HandleFunc("/api/memory/new", h.handleMemoryNew)
	mux.HandleFunc("/api/puzzles/save", h.handleSave)
	mux.HandleFunc("/api/puzzles/load", h.handleLoad)
	mux.HandleFunc("/api/puzzles/list", h.handleList)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errResp struct {
	Error string `json:"error"`
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errResp{Error: "method not allowed"})
		return false
	}
	return true
}

// ---- Sudoku ----

type sudokuNewReq struct {
	Mode       string `json:"mode,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

type sudokuNewResp struct {
	ID         string      `json:"id"`
	Seed       string      `json:"seed"`
	Mode       string      `json:"mode"`
	Difficulty string      `json:"difficulty"`
	Puzzle     [9][9]uint8 `json:"puzzle"`
}

func (h *Handler) handleSudokuNew(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req sudokuNewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		writeJSON(w, http.StatusBadRequest, errResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	mode := domain.ParseMode(req.Mode)
	diff := domain.ParseDifficulty(req.Difficulty)
	p, err := h.UC.NewSudoku(r.Context(), mode, diff)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errResp{Error: err.Error()})
		return
	}
	puzzlesGenerated.WithLabelValues("sudoku", mode.String()).Inc()
	// The solution stays server-side; checking goes through /api/sudoku/check.
	writeJSON(w, http.StatusOK, sudokuNewResp{
		ID:         p.ID,
		Seed:       p.Seed,
		Mode:       mode.String(),
		Difficulty: diff.String(),
		Puzzle:     p.Sudoku.Puzzle,
	})
}

type sudokuCheckReq struct {
	ID   string      `json:"id"`
	Grid [9][9]uint8 `json:"grid"`
}

type sudokuCheckResp struct {
	OK        bool               `json:"ok"`
	Solved    bool               `json:"solved"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
}

func (h *Handler) handleSudokuCheck(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req sudokuCheckReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	ok, solved, conflicts, err := h.UC.CheckSudoku(r.Context(), req.ID, req.Grid)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			writeJSON(w, http.StatusNotFound, errResp{Error: "unknown puzzle: " + req.ID})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, sudokuCheckResp{OK: ok, Solved: solved, Conflicts: conflicts})
}

type sudokuHintReq struct {
	Grid [9][9]uint8 `json:"grid"`
}

type sudokuHintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
}

func (h *Handler) handleSudokuHint(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req sudokuHintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	hint, found, err := h.UC.HintSudoku(r.Context(), req.Grid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, sudokuHintResp{Found: found, Hint: hint})
}

// ---- Crossword ----

type crosswordNewReq struct {
	Mode  string `json:"mode,omitempty"`
	Topic string `json:"topic,omitempty"`
}

type crosswordNewResp struct {
	ID    string                `json:"id"`
	Seed  string                `json:"seed"`
	Mode  string                `json:"mode"`
	Words []domain.PlacedWord   `json:"words"`
	Grid  *domain.CrosswordGrid `json:"grid"`
}

func (h *Handler) handleCrosswordNew(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req crosswordNewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		writeJSON(w, http.StatusBadRequest, errResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.Topic == "" {
		req.Topic = "general knowledge"
	}
	mode := domain.ParseMode(req.Mode)
	p, grid, err := h.UC.NewCrossword(r.Context(), mode, req.Topic)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errResp{Error: err.Error()})
		return
	}
	puzzlesGenerated.WithLabelValues("crossword", mode.String()).Inc()
	writeJSON(w, http.StatusOK, crosswordNewResp{
		ID:    p.ID,
		Seed:  p.Seed,
		Mode:  mode.String(),
		Words: p.Crossword,
		Grid:  grid,
	})
}

// ---- Memory ----

type memoryNewReq struct {
	Mode  string `json:"mode,omitempty"`
	Round int    `json:"round,omitempty"`
}

type memoryNewResp struct {
	ID       string             `json:"id"`
	Seed     string             `json:"seed"`
	Mode     string             `json:"mode"`
	Round    int                `json:"round"`
	Sequence []domain.CellCoord `json:"sequence"`
}

func (h *Handler) handleMemoryNew(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req memoryNewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		writeJSON(w, http.StatusBadRequest, errResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.Round == 0 {
		req.Round = 1
	}
	mode := domain.ParseMode(req.Mode)
	p, err := h.UC.NewMemory(r.Context(), mode, req.Round)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errResp{Error: err.Error()})
		return
	}
	puzzlesGenerated.WithLabelValues("memory", mode.String()).Inc()
	writeJSON(w, http.StatusOK, memoryNewResp{
		ID:       p.ID,
		Seed:     p.Seed,
		Mode:     mode.String(),
		Round:    req.Round,
		Sequence: p.Memory,
	})
}

// ---- Persistence ----

type saveResp struct {
	ID string `json:"id"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var p domain.Puzzle
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, errResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if p.ID == "" {
		writeJSON(w, http.StatusBadRequest, errResp{Error: "missing id"})
		return
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		writeJSON(w, http.StatusInternalServerError, errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, saveResp{ID: p.ID})
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errResp{Error: "missing id"})
		return
	}
	p, err := h.UC.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			writeJSON(w, http.StatusNotFound, errResp{Error: "unknown puzzle: " + id})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
	Count   int                 `json:"count"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	metas, err := h.UC.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, listResp{Puzzles: metas, Count: len(metas)})
}

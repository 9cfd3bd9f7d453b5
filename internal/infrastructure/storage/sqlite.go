package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"mindgym.dev/mindgym/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS puzzles (
	id         TEXT PRIMARY KEY,
	game       TEXT NOT NULL,
	mode       TEXT NOT NULL,
	seed       TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	payload    TEXT NOT NULL
);
`

// SQLite stores puzzles in a single table with the full puzzle as a
// JSON payload column; the remaining columns exist for listing.
type SQLite struct{ db *sql.DB }

// OpenSQLite opens (and if needed creates) the database at path.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	payload, err := json.Marshal(p)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO puzzles (id, game, mode, seed, created_at, payload)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Game.String(), p.Mode.String(), p.Seed, p.CreatedAt, string(payload))
	return err
}

func (s *SQLite) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM puzzles WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, os.ErrNotExist
	}
	if err != nil {
		return nil, err
	}
	var out domain.Puzzle
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SQLite) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM puzzles ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PuzzleMeta
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var p domain.Puzzle
		if err := json.Unmarshal([]byte(payload), &p); err != nil {
			continue
		}
		out = append(out, domain.PuzzleMeta{
			ID:        p.ID,
			Game:      p.Game,
			Mode:      p.Mode,
			Seed:      p.Seed,
			CreatedAt: p.CreatedAt,
		})
	}
	return out, rows.Err()
}

// Package storage provides an optional SQLite journal of played games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The journal is write-mostly history; it is never used to restore a game.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the journal.
type Store struct {
	db *sql.DB
}

// GameEntry summarizes one journaled game.
type GameEntry struct {
	ID        string
	Player    string
	StartedAt time.Time
	EndedAt   time.Time // Zero while the game is still open
	MovesUsed int
	FinalGrid string // Letters as produced by game.Grid.String
}

// MoveEntry is one input applied to a journaled game.
type MoveEntry struct {
	Seq       int
	Action    string
	Accepted  bool
	MovesLeft int
	CreatedAt time.Time
}

// Stats aggregates the whole journal.
type Stats struct {
	Games      int
	Moves      int
	Rejected   int
	Exhausted  int // Games that ended with the full budget spent
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			player TEXT NOT NULL DEFAULT '',
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			ended_at DATETIME,
			moves_used INTEGER NOT NULL DEFAULT 0,
			final_grid TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_games_started ON games(started_at DESC);

		CREATE TABLE IF NOT EXISTS moves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL REFERENCES games(id),
			seq INTEGER NOT NULL,
			action TEXT NOT NULL,
			accepted INTEGER NOT NULL,
			moves_left INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_moves_game ON moves(game_id, seq);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// StartGame records the beginning of a game.
func (s *Store) StartGame(gameID, player string) error {
	_, err := s.db.Exec(
		"INSERT INTO games (id, player) VALUES (?, ?)",
		gameID, player,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot start game: %w", err)
	}
	return nil
}

// RecordMove appends one input to a game's journal.
func (s *Store) RecordMove(gameID string, seq int, action string, accepted bool, movesLeft int) error {
	_, err := s.db.Exec(
		`INSERT INTO moves (game_id, seq, action, accepted, moves_left)
		 VALUES (?, ?, ?, ?, ?)`,
		gameID, seq, action, accepted, movesLeft,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record move: %w", err)
	}
	return nil
}

// FinishGame closes a game with its final board and spent moves.
// Finishing an already finished game overwrites the previous result.
func (s *Store) FinishGame(gameID string, finalGrid string, movesUsed int) error {
	res, err := s.db.Exec(
		`UPDATE games SET ended_at = CURRENT_TIMESTAMP, final_grid = ?, moves_used = ?
		 WHERE id = ?`,
		finalGrid, movesUsed, gameID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot finish game: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("storage: unknown game %q", gameID)
	}
	return nil
}

// RecentGames retrieves the most recently started games.
func (s *Store) RecentGames(limit int) ([]GameEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, started_at, ended_at, moves_used, final_grid
		 FROM games
		 ORDER BY started_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var entries []GameEntry
	for rows.Next() {
		var e GameEntry
		var startedAt, endedAt any
		if err := rows.Scan(&e.ID, &e.Player, &startedAt, &endedAt, &e.MovesUsed, &e.FinalGrid); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.StartedAt = parseTime(startedAt)
		e.EndedAt = parseTime(endedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Moves retrieves the journal of one game in input order.
func (s *Store) Moves(gameID string) ([]MoveEntry, error) {
	rows, err := s.db.Query(
		`SELECT seq, action, accepted, moves_left, created_at
		 FROM moves
		 WHERE game_id = ?
		 ORDER BY seq ASC`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query moves: %w", err)
	}
	defer rows.Close()

	var entries []MoveEntry
	for rows.Next() {
		var e MoveEntry
		var createdAt any
		if err := rows.Scan(&e.Seq, &e.Action, &e.Accepted, &e.MovesLeft, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// GetStats retrieves aggregated statistics for the journal.
func (s *Store) GetStats(budget int) (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(CASE WHEN moves_used >= ? THEN 1 ELSE 0 END), 0)
		 FROM games`,
		budget,
	).Scan(&stats.Games, &stats.Exhausted)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	err = s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(CASE WHEN accepted = 0 THEN 1 ELSE 0 END), 0)
		 FROM moves`,
	).Scan(&stats.Moves, &stats.Rejected)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get move stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT started_at FROM games ORDER BY started_at DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

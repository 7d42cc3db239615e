// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/tracepad/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

const lastPlayedKey = "last_played"

// Store wraps SQLite access for attempts and progress.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY,
			session_id TEXT NOT NULL,
			game TEXT NOT NULL,
			target TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			tolerance REAL NOT NULL,
			percentage REAL NOT NULL,
			on_path INTEGER NOT NULL,
			total_points INTEGER NOT NULL,
			avg_distance REAL NOT NULL,
			max_distance REAL NOT NULL,
			completed INTEGER NOT NULL,
			attempts INTEGER NOT NULL,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS progress (
			game TEXT PRIMARY KEY,
			completed INTEGER NOT NULL,
			accuracy REAL NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_attempts_ended_at ON attempts(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_attempts_game_target ON attempts(game, target);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertAttempt stores one scored attempt.
func (s *Store) InsertAttempt(ctx context.Context, a model.Attempt) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO attempts (session_id, game, target, difficulty, tolerance, percentage, on_path, total_points, avg_distance, max_distance, completed, attempts, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.SessionID,
		a.Game,
		a.Target,
		a.Difficulty,
		a.Tolerance,
		a.Metrics.Percentage,
		a.Metrics.OnPathPoints,
		a.Metrics.TotalPoints,
		finite(a.Metrics.AvgDistance),
		finite(a.Metrics.MaxDistance),
		boolInt(a.Metrics.Completed),
		a.Attempts,
		a.StartedAt.UTC().Format(time.RFC3339Nano),
		a.EndedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateProgress records the latest accuracy for a game and marks it played
// last. Completion is kept once reached.
func (s *Store) UpdateProgress(ctx context.Context, game string, completed bool, accuracy float64) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO progress (game, completed, accuracy) VALUES (?, ?, ?)
		 ON CONFLICT(game) DO UPDATE SET completed = MAX(completed, excluded.completed), accuracy = excluded.accuracy`,
		game, boolInt(completed), accuracy,
	); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO meta (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		lastPlayedKey, game,
	); err != nil {
		return err
	}
	return tx.Commit()
}

// LoadProgress returns the progress document with a default entry for every
// game in games.
func (s *Store) LoadProgress(ctx context.Context, games []string) (model.Progress, error) {
	progress := model.Progress{
		GamesCompleted: map[string]bool{},
		AccuracyStats:  map[string]float64{},
	}
	for _, g := range games {
		progress.GamesCompleted[g] = false
		progress.AccuracyStats[g] = 0
	}

	rows, err := s.db.QueryContext(ctx, `SELECT game, completed, accuracy FROM progress`)
	if err != nil {
		return progress, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()
	for rows.Next() {
		var game string
		var completed int
		var acc float64
		if err := rows.Scan(&game, &completed, &acc); err != nil {
			return progress, err
		}
		progress.GamesCompleted[game] = completed != 0
		progress.AccuracyStats[game] = acc
	}
	if err := rows.Err(); err != nil {
		return progress, err
	}

	var last string
	err = s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, lastPlayedKey).Scan(&last)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return progress, err
	}
	progress.LastPlayed = last
	return progress, nil
}

// ListAttempts returns attempts filtered by stats config, oldest first. When
// cfg.Last is set only the most recent attempts are returned.
func (s *Store) ListAttempts(ctx context.Context, cfg model.StatsConfig) ([]model.AttemptRecord, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Game != "" {
		clauses = append(clauses, "game = ?")
		args = append(args, cfg.Game)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, cfg.Since.UTC().Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, session_id, game, target, percentage, completed, started_at, ended_at
		FROM attempts
		WHERE %s
		ORDER BY ended_at DESC, id DESC`, strings.Join(clauses, " AND "))
	if cfg.Last > 0 {
		query += " LIMIT ?"
		args = append(args, cfg.Last)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var out []model.AttemptRecord
	for rows.Next() {
		var rec model.AttemptRecord
		var completed int
		var startedAt, endedAt string
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.Game, &rec.Target, &rec.Percentage, &completed, &startedAt, &endedAt); err != nil {
			return nil, err
		}
		started, err := time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, err
		}
		ended, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		rec.Completed = completed != 0
		rec.EndedAt = ended
		rec.DurationMs = ended.Sub(started).Milliseconds()
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// TargetAggregates aggregates the most recent window attempts of a game per
// target. A window of zero or less covers every attempt.
func (s *Store) TargetAggregates(ctx context.Context, game string, window int) ([]model.TargetAggregate, error) {
	limit := window
	if limit <= 0 {
		limit = -1
	}
	query := `WITH recent AS (
		SELECT game, target, percentage, completed FROM attempts
		WHERE (? = '' OR game = ?)
		ORDER BY ended_at DESC, id DESC
		LIMIT ?
	)
	SELECT game, target, COUNT(*), SUM(completed), MAX(percentage), SUM(percentage)
	FROM recent
	GROUP BY game, target
	ORDER BY game, target`
	rows, err := s.db.QueryContext(ctx, query, game, game, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var out []model.TargetAggregate
	for rows.Next() {
		var agg model.TargetAggregate
		if err := rows.Scan(&agg.Game, &agg.Target, &agg.Attempts, &agg.Completions, &agg.Best, &agg.SumPct); err != nil {
			return nil, err
		}
		out = append(out, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// finite maps infinities to -1 so they survive the REAL column.
func finite(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return -1
	}
	return v
}

// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/lfun/analysis"
	"github.com/katalvlaran/lfun/ball"
	"github.com/katalvlaran/lfun/lfunc"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	rank         INTEGER,
	rank_status  INTEGER NOT NULL,
	status       INTEGER NOT NULL,
	leading_term TEXT NOT NULL,
	epsilon_re   REAL NOT NULL,
	epsilon_im   REAL NOT NULL,
	started_ns   INTEGER NOT NULL,
	elapsed_ns   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_ns);

CREATE TABLE IF NOT EXISTS sides (
	run_id     TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	side       INTEGER NOT NULL,
	status     INTEGER NOT NULL,
	zero_count INTEGER NOT NULL,
	PRIMARY KEY (run_id, side)
);

CREATE TABLE IF NOT EXISTS zeros (
	run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	side   INTEGER NOT NULL,
	idx    INTEGER NOT NULL,
	value  TEXT NOT NULL,
	PRIMARY KEY (run_id, side, idx)
);
`

// Store is a handle on the result database. It is safe for concurrent use.
type Store struct {
	db   *sql.DB
	path string
	log  *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store's logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// Open opens (creating if needed) the database at path and its schema.
func Open(path string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("store: create directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	// SQLite serialises writers; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: path, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}
	s.log = s.log.Named("store").With(zap.String("path", path))
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// Run is the stored summary of one report.
type Run struct {
	ID          string
	Name        string
	Rank        lfunc.Rank
	RankStatus  lfunc.Status
	Status      lfunc.Status
	LeadingTerm ball.Ball
	Epsilon     complex128
	Started     time.Time
	Elapsed     time.Duration
	Sides       []Side
}

// Side is the stored summary of one analysed side.
type Side struct {
	Side      lfunc.Side
	Status    lfunc.Status
	ZeroCount int
}

// Save writes rep in a single transaction. Saving the same id twice fails.
func (s *Store) Save(ctx context.Context, rep *analysis.Report) error {
	if rep == nil {
		return ErrNilReport
	}
	lead, err := rep.LeadingTerm.MarshalText()
	if err != nil {
		return fmt.Errorf("store: leading term: %w", err)
	}
	var rank sql.NullInt64
	if r, ok := rep.Rank.Value(); ok {
		rank = sql.NullInt64{Int64: int64(r), Valid: true}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, name, rank, rank_status, status, leading_term, epsilon_re, epsilon_im, started_ns, elapsed_ns)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rep.ID, rep.Name, rank, int64(rep.RankStatus), int64(rep.Status), string(lead),
		real(rep.Epsilon), imag(rep.Epsilon), rep.Started.UnixNano(), int64(rep.Elapsed))
	if err != nil {
		return fmt.Errorf("store: insert run %s: %w", rep.ID, err)
	}

	for _, sr := range rep.Sides {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO sides (run_id, side, status, zero_count) VALUES (?, ?, ?, ?)`,
			rep.ID, int(sr.Side), int64(sr.Status), len(sr.Zeros)); err != nil {
			return fmt.Errorf("store: insert side %s: %w", sr.Side, err)
		}
		for i, z := range sr.Zeros {
			txt, err := z.MarshalText()
			if err != nil {
				return fmt.Errorf("store: zero %d: %w", i, err)
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO zeros (run_id, side, idx, value) VALUES (?, ?, ?, ?)`,
				rep.ID, int(sr.Side), i, string(txt)); err != nil {
				return fmt.Errorf("store: insert zero %d: %w", i, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}
	s.log.Debug("report saved", zap.String("id", rep.ID), zap.String("name", rep.Name))
	return nil
}

const runColumns = `id, name, rank, rank_status, status, leading_term, epsilon_re, epsilon_im, started_ns, elapsed_ns`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r                Run
		rank             sql.NullInt64
		rankSt, st       int64
		lead             string
		re, im           float64
		started, elapsed int64
	)
	if err := sc.Scan(&r.ID, &r.Name, &rank, &rankSt, &st, &lead, &re, &im, &started, &elapsed); err != nil {
		return Run{}, err
	}
	if err := r.LeadingTerm.UnmarshalText([]byte(lead)); err != nil {
		return Run{}, fmt.Errorf("store: run %s leading term: %w", r.ID, err)
	}
	r.Rank = lfunc.UnknownRank()
	if rank.Valid {
		r.Rank = lfunc.KnownRank(int(rank.Int64))
	}
	r.RankStatus = lfunc.Status(rankSt)
	r.Status = lfunc.Status(st)
	r.Epsilon = complex(re, im)
	r.Started = time.Unix(0, started)
	r.Elapsed = time.Duration(elapsed)
	return r, nil
}

// List returns the most recent runs first, at most limit of them
// (limit <= 0 means all). Side summaries are included.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs ORDER BY started_ns DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("store: list: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("store: list: %w", err)
	}
	rows.Close()

	for i := range runs {
		if runs[i].Sides, err = s.sides(ctx, runs[i].ID); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

// Get returns one run by id.
//
// Errors:
//   - ErrNotFound — no run has that id.
func (s *Store) Get(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("store: get %s: %w", id, err)
	}
	if r.Sides, err = s.sides(ctx, id); err != nil {
		return Run{}, err
	}
	return r, nil
}

func (s *Store) sides(ctx context.Context, id string) ([]Side, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT side, status, zero_count FROM sides WHERE run_id = ? ORDER BY side`, id)
	if err != nil {
		return nil, fmt.Errorf("store: sides of %s: %w", id, err)
	}
	defer rows.Close()

	var out []Side
	for rows.Next() {
		var (
			sd    Side
			side  int
			st    int64
			count int
		)
		if err := rows.Scan(&side, &st, &count); err != nil {
			return nil, fmt.Errorf("store: sides of %s: %w", id, err)
		}
		sd.Side, sd.Status, sd.ZeroCount = lfunc.Side(side), lfunc.Status(st), count
		out = append(out, sd)
	}
	return out, rows.Err()
}

// Zeros returns the zeros stored for side of run id, in scan order.
//
// Errors:
//   - ErrNotFound — no run has that id.
func (s *Store) Zeros(ctx context.Context, id string, side lfunc.Side) ([]ball.Ball, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs WHERE id = ?`, id).Scan(&n); err != nil {
		return nil, fmt.Errorf("store: zeros of %s: %w", id, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT value FROM zeros WHERE run_id = ? AND side = ? ORDER BY idx`, id, int(side))
	if err != nil {
		return nil, fmt.Errorf("store: zeros of %s: %w", id, err)
	}
	defer rows.Close()

	var out []ball.Ball
	for rows.Next() {
		var txt string
		if err := rows.Scan(&txt); err != nil {
			return nil, fmt.Errorf("store: zeros of %s: %w", id, err)
		}
		var z ball.Ball
		if err := z.UnmarshalText([]byte(txt)); err != nil {
			return nil, fmt.Errorf("store: zeros of %s: %w", id, err)
		}
		out = append(out, z)
	}
	return out, rows.Err()
}

// Delete removes run id and everything stored under it.
//
// Errors:
//   - ErrNotFound — no run has that id.
func (s *Store) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	for _, q := range []string{
		`DELETE FROM zeros WHERE run_id = ?`,
		`DELETE FROM sides WHERE run_id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return fmt.Errorf("store: delete %s: %w", id, err)
		}
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return tx.Commit()
}

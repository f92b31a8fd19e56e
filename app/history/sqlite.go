package history

import (
	"fmt"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // sqlite driver

	"github.com/umputun/sqlbind/app/script"
)

// Status of a recorded run
type Status string

// run statuses
const (
	StatusOK     Status = "ok"
	StatusFailed Status = "failed"
)

// Run is a recorded script run with per statement outcome
type Run struct {
	ID         int64
	Script     string
	Database   string
	StartedAt  time.Time
	Duration   time.Duration
	Status     Status
	Error      string
	Statements []Statement
}

// Statement is the outcome of one statement of a run
type Statement struct {
	Name         string `db:"name"`
	Rows         int    `db:"row_count"`
	Changes      int    `db:"changes"`
	LastInsertID int64  `db:"last_insert_id"`
}

type runRow struct {
	ID         int64  `db:"id"`
	Script     string `db:"script"`
	Database   string `db:"db_path"`
	StartedAt  int64  `db:"started_at"`
	DurationMs int64  `db:"duration_ms"`
	Status     string `db:"status"`
	Error      string `db:"error"`
}

type statementRow struct {
	RunID int64 `db:"run_id"`
	Statement
}

// SQLiteStore records runs in a SQLite file
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore opens the history database and creates its schema
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// enable WAL mode
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to set WAL mode: %w (also failed to close db: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.initialize(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) initialize() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			script TEXT NOT NULL,
			db_path TEXT NOT NULL,
			started_at INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			status TEXT NOT NULL,
			error TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS statements (
			run_id INTEGER NOT NULL,
			seq INTEGER NOT NULL,
			name TEXT NOT NULL,
			row_count INTEGER NOT NULL,
			changes INTEGER NOT NULL,
			last_insert_id INTEGER NOT NULL,
			PRIMARY KEY (run_id, seq),
			FOREIGN KEY (run_id) REFERENCES runs(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

// Record stores a run report and returns the id of the run
func (s *SQLiteStore) Record(rep script.Report) (int64, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	row := runRow{
		Script:     rep.Script,
		Database:   rep.Database,
		StartedAt:  rep.Started.UnixMilli(),
		DurationMs: rep.Duration.Milliseconds(),
		Status:     string(StatusOK),
	}
	if rep.Err != nil {
		row.Status, row.Error = string(StatusFailed), rep.Err.Error()
	}

	res, err := tx.NamedExec(`INSERT INTO runs (script, db_path, started_at, duration_ms, status, error)
		VALUES (:script, :db_path, :started_at, :duration_ms, :status, :error)`, row)
	if err != nil {
		return 0, fmt.Errorf("failed to record run of %s: %w", rep.Script, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}

	for i, r := range rep.Results {
		_, err := tx.Exec(`INSERT INTO statements (run_id, seq, name, row_count, changes, last_insert_id)
			VALUES (?, ?, ?, ?, ?, ?)`, id, i, r.Name, len(r.Rows), r.Changes, r.LastInsertID)
		if err != nil {
			return 0, fmt.Errorf("failed to record statement %s: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	log.Printf("[DEBUG] recorded run %d of %s, %s", id, rep.Script, row.Status)
	return id, nil
}

// Runs returns up to limit most recent runs, newest first
func (s *SQLiteStore) Runs(limit int) ([]Run, error) {
	var rows []runRow
	err := s.db.Select(&rows, `SELECT id, script, db_path, started_at, duration_ms, status, error
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	if len(rows) == 0 {
		return []Run{}, nil
	}

	ids := make([]int64, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	query, args, err := sqlx.In(`SELECT run_id, name, row_count, changes, last_insert_id
		FROM statements WHERE run_id IN (?) ORDER BY run_id, seq`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build statements query: %w", err)
	}
	var stmts []statementRow
	if err := s.db.Select(&stmts, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query statements: %w", err)
	}
	byRun := map[int64][]Statement{}
	for _, st := range stmts {
		byRun[st.RunID] = append(byRun[st.RunID], st.Statement)
	}

	res := make([]Run, 0, len(rows))
	for _, r := range rows {
		res = append(res, Run{
			ID:         r.ID,
			Script:     r.Script,
			Database:   r.Database,
			StartedAt:  time.UnixMilli(r.StartedAt),
			Duration:   time.Duration(r.DurationMs) * time.Millisecond,
			Status:     Status(r.Status),
			Error:      r.Error,
			Statements: byRun[r.ID],
		})
	}
	return res, nil
}

// Close closes the history database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Package history keeps a local ledger of executed build and test commands.
//
// The ledger records outcomes only; it is never consulted to skip work.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id      TEXT NOT NULL,
	phase       TEXT NOT NULL,
	function    TEXT NOT NULL,
	command     TEXT NOT NULL,
	status      TEXT NOT NULL,
	duration_ms INTEGER NOT NULL,
	created_at  TEXT NOT NULL
);
`

// Ledger stores command outcomes in a SQLite database.
type Ledger struct {
	db *sql.DB
}

// Entry is one recorded command.
type Entry struct {
	RunID     string
	Phase     string
	Function  string
	Command   string
	Status    string
	Duration  time.Duration
	CreatedAt string
}

// Open creates or opens the ledger at path, creating parent directories as
// needed.
func Open(path string) (*Ledger, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history schema: %w", err)
	}
	return &Ledger{db: db}, nil
}

// Close releases the underlying database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Record appends one command outcome.
func (l *Ledger) Record(runID, phase, function, command, status string, d time.Duration) error {
	_, err := l.db.Exec(
		`INSERT INTO runs (run_id, phase, function, command, status, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, phase, function, command, status, d.Milliseconds(),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// Recent returns the n most recent entries, newest first.
func (l *Ledger) Recent(n int) ([]Entry, error) {
	rows, err := l.db.Query(
		`SELECT run_id, phase, function, command, status, duration_ms, created_at
		 FROM runs ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("querying run history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ms int64
		if err := rows.Scan(&e.RunID, &e.Phase, &e.Function, &e.Command, &e.Status, &ms, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		e.Duration = time.Duration(ms) * time.Millisecond
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// RunRecorder stamps every entry with one invocation's run ID. It satisfies
// the build phase's Recorder interface.
type RunRecorder struct {
	ledger *Ledger
	runID  string
}

// ForRun scopes the ledger to runID.
func (l *Ledger) ForRun(runID string) *RunRecorder {
	return &RunRecorder{ledger: l, runID: runID}
}

// Record appends one command outcome under the recorder's run ID.
func (r *RunRecorder) Record(phase, function, command, status string, d time.Duration) error {
	return r.ledger.Record(r.runID, phase, function, command, status, d)
}

// Package logging keeps an operation journal alongside a persisted store:
// one row per head-advancing engine operation, for audit and inspection.
package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS operation_log (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	op         TEXT NOT NULL,
	version_id TEXT,
	branch     TEXT,
	detail     TEXT,
	created_at TEXT NOT NULL
);
`
// #endregion schema

// #region types
// OperationEntry is a single row in the operation_log table.
type OperationEntry struct {
	ID        int64
	Op        string // "commit" | "merge" | "cherry-pick" | "rollback" | "branch" | "checkout" | "tag"
	VersionID string
	Branch    string
	Detail    string
	CreatedAt time.Time
}

// Journal manages the operation_log table.
type Journal struct {
	db *sql.DB
}

// #endregion types

// #region constructor
// NewJournal creates the table on the shared handle and returns a Journal.
func NewJournal(db *sql.DB) (*Journal, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("journal schema: %w", err)
	}
	return &Journal{db: db}, nil
}

// #endregion constructor

// #region log
// Log writes one operation entry.
func (j *Journal) Log(entry OperationEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	_, err := j.db.Exec(
		`INSERT INTO operation_log (op, version_id, branch, detail, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.Op,
		nullIfEmpty(entry.VersionID),
		nullIfEmpty(entry.Branch),
		nullIfEmpty(entry.Detail),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log operation: %w", err)
	}
	return nil
}

// #endregion log

// #region list
// List returns the most recent entries, newest first.
func (j *Journal) List(limit int) ([]OperationEntry, error) {
	rows, err := j.db.Query(
		`SELECT id, op, version_id, branch, detail, created_at
		 FROM operation_log ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	defer rows.Close()

	var out []OperationEntry
	for rows.Next() {
		var e OperationEntry
		var versionID, branch, detail sql.NullString
		var createdStr string
		if err := rows.Scan(&e.ID, &e.Op, &versionID, &branch, &detail, &createdStr); err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		e.VersionID = versionID.String
		e.Branch = branch.String
		e.Detail = detail.String
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		out = append(out, e)
	}
	return out, rows.Err()
}

// #endregion list

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers

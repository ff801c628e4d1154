// Package persist is the durability adapter for hosts that want it: the whole
// commit graph is exported to and imported from SQLite in one transaction.
// The engine never touches the database during normal operation.
package persist

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielpatrickdp/stance-vcs/internal/graph"
	"github.com/danielpatrickdp/stance-vcs/internal/stance"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS versions (
	version_id    TEXT PRIMARY KEY,
	parent_id     TEXT,
	branch        TEXT NOT NULL,
	message       TEXT,
	author        TEXT,
	created_at    TEXT NOT NULL,
	tags_json     TEXT,
	snapshot_json TEXT NOT NULL,
	seq           INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS branches (
	name        TEXT PRIMARY KEY,
	head        TEXT,
	created_at  TEXT NOT NULL,
	description TEXT,
	protected   INTEGER NOT NULL DEFAULT 0,
	seq         INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS current_branch (
	id   INTEGER PRIMARY KEY CHECK (id = 1),
	name TEXT NOT NULL
);
`
// #endregion schema

// #region store-struct
// Store wraps the SQLite handle used for export and import.
type Store struct {
	db *sql.DB
}
// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStoreWithDB wraps an existing handle, running migrations on it.
func NewStoreWithDB(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}
// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}
// #endregion close

// #region save
// Save writes the full version and branch tables plus the current-branch name,
// replacing any previous export, in one transaction.
func (s *Store) Save(g *graph.Store) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"versions", "branches", "current_branch"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i, v := range g.Versions() {
		snapJSON, err := json.Marshal(v.Snapshot)
		if err != nil {
			return fmt.Errorf("marshal snapshot %s: %w", v.ID, err)
		}
		tagsJSON, err := json.Marshal(v.Tags)
		if err != nil {
			return fmt.Errorf("marshal tags %s: %w", v.ID, err)
		}
		_, err = tx.Exec(
			`INSERT INTO versions (version_id, parent_id, branch, message, author, created_at, tags_json, snapshot_json, seq)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			v.ID, nullIfEmpty(v.ParentID), v.Branch, v.Message, v.Author,
			v.CreatedAt.Format(time.RFC3339Nano), string(tagsJSON), string(snapJSON), i,
		)
		if err != nil {
			return fmt.Errorf("insert version %s: %w", v.ID, err)
		}
	}

	for i, br := range g.Branches() {
		_, err = tx.Exec(
			`INSERT INTO branches (name, head, created_at, description, protected, seq)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			br.Name, nullIfEmpty(br.Head), br.CreatedAt.Format(time.RFC3339Nano),
			br.Description, boolToInt(br.Protected), i,
		)
		if err != nil {
			return fmt.Errorf("insert branch %q: %w", br.Name, err)
		}
	}

	_, err = tx.Exec(`INSERT INTO current_branch (id, name) VALUES (1, ?)`, g.CurrentBranch())
	if err != nil {
		return fmt.Errorf("set current branch: %w", err)
	}

	return tx.Commit()
}
// #endregion save

// #region load
// Load reads the exported tables and rebuilds an invariant-checked store.
// A corrupt or partial export fails whole; there is no partial import.
func (s *Store) Load() (*graph.Store, error) {
	rows, err := s.db.Query(
		`SELECT version_id, parent_id, branch, message, author, created_at, tags_json, snapshot_json
		 FROM versions ORDER BY seq ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("load versions: %w", err)
	}
	defer rows.Close()

	var versions []graph.Version
	for rows.Next() {
		var v graph.Version
		var parentID, tagsJSON sql.NullString
		var createdStr, snapJSON string

		if err := rows.Scan(&v.ID, &parentID, &v.Branch, &v.Message, &v.Author, &createdStr, &tagsJSON, &snapJSON); err != nil {
			return nil, fmt.Errorf("scan version: %w", err)
		}
		if parentID.Valid {
			v.ParentID = parentID.String
		}
		v.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		if tagsJSON.Valid && tagsJSON.String != "" {
			if err := json.Unmarshal([]byte(tagsJSON.String), &v.Tags); err != nil {
				return nil, fmt.Errorf("unmarshal tags for %s: %w", v.ID, err)
			}
		}
		var snap stance.Snapshot
		if err := json.Unmarshal([]byte(snapJSON), &snap); err != nil {
			return nil, fmt.Errorf("unmarshal snapshot for %s: %w", v.ID, err)
		}
		v.Snapshot = snap
		versions = append(versions, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load versions: %w", err)
	}

	brows, err := s.db.Query(
		`SELECT name, head, created_at, description, protected FROM branches ORDER BY seq ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("load branches: %w", err)
	}
	defer brows.Close()

	var branches []graph.Branch
	for brows.Next() {
		var br graph.Branch
		var head sql.NullString
		var createdStr string
		var protected int

		if err := brows.Scan(&br.Name, &head, &createdStr, &br.Description, &protected); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		if head.Valid {
			br.Head = head.String
		}
		br.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		br.Protected = protected != 0
		branches = append(branches, br)
	}
	if err := brows.Err(); err != nil {
		return nil, fmt.Errorf("load branches: %w", err)
	}

	var current string
	err = s.db.QueryRow(`SELECT name FROM current_branch WHERE id = 1`).Scan(&current)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("load current branch: %w", err)
	}

	if len(branches) == 0 {
		// Fresh database: nothing was ever exported.
		return graph.NewStore(), nil
	}

	g, err := graph.Restore(versions, branches, current)
	if err != nil {
		return nil, fmt.Errorf("restore: %w", err)
	}
	return g, nil
}
// #endregion load

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
// #endregion helpers

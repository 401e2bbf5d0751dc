// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// The blank import below registers the sqlite3 driver with database/sql.
// The driver's init() function does this automatically when the package
// is loaded; we never call anything from it directly.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aanand-mishra/its-api/internal/config"
	"github.com/aanand-mishra/its-api/internal/storage"
	"github.com/aanand-mishra/its-api/internal/types"

	_ "github.com/mattn/go-sqlite3"
)

// schema is applied on every startup. CREATE TABLE IF NOT EXISTS is
// idempotent, so an existing database is left untouched.
//
// Columns are snake_case; a database file written by the legacy admin
// panel, which used camelCase columns, is not readable by this schema.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS students (
		id                TEXT    PRIMARY KEY,
		name              TEXT    NOT NULL,
		mobile            TEXT    NOT NULL,
		address           TEXT    NOT NULL,
		email             TEXT    NOT NULL,
		internship_domain TEXT    NOT NULL,
		college           TEXT    NOT NULL,
		password          TEXT    NOT NULL,
		is_active         INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS faculties (
		id        TEXT    PRIMARY KEY,
		name      TEXT    NOT NULL,
		mobile    TEXT    NOT NULL,
		address   TEXT    NOT NULL,
		email     TEXT    NOT NULL,
		college   TEXT    NOT NULL,
		password  TEXT    NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS taskmanage (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		title         TEXT,
		description   TEXT,
		assigned_to   TEXT,
		priority      TEXT,
		status        TEXT,
		assigned_date TEXT,
		due_date      TEXT
	)`,
}

// SQLite is the concrete implementation of storage.Storage.
// It holds a *sql.DB which is a connection pool managed by database/sql.
type SQLite struct {
	Db *sql.DB

	students  *memberTable[types.Student]
	faculties *memberTable[types.Faculty]
	tasks     *taskTable
}

// New opens the SQLite database at cfg.StoragePath, creates the tables
// if they do not already exist, and returns a ready-to-use *SQLite.
func New(cfg *config.Config) (*SQLite, error) {
	if err := ensureDir(cfg.StoragePath); err != nil {
		return nil, fmt.Errorf("sqlite.New: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// SQLite allows a single writer. One connection also keeps a
	// ":memory:" database alive and shared across queries.
	db.SetMaxOpenConns(1)

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite.New: create table: %w", err)
		}
	}

	return &SQLite{
		Db:        db,
		students:  newStudentTable(db),
		faculties: newFacultyTable(db),
		tasks:     &taskTable{db: db},
	}, nil
}

func (s *SQLite) Students() storage.MemberTable[types.Student] { return s.students }

func (s *SQLite) Faculties() storage.MemberTable[types.Faculty] { return s.faculties }

func (s *SQLite) Tasks() storage.TaskTable { return s.tasks }

func (s *SQLite) Close() error { return s.Db.Close() }

func ensureDir(path string) error {
	if path == ":memory:" || strings.HasPrefix(path, "file:") {
		return nil
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create storage dir %s: %w", dir, err)
	}
	return nil
}

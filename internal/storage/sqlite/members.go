package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/aanand-mishra/its-api/internal/storage"
	"github.com/aanand-mishra/its-api/internal/types"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// memberTable implements storage.MemberTable for one table. Students and
// faculties differ only in their column list, so the SQL is built once
// from the columns and the per-kind values/scan functions.
type memberTable[T any] struct {
	db      *sql.DB
	name    string
	columns []string
	values  func(T) []any
	scan    func(rowScanner) (T, error)
}

func newStudentTable(db *sql.DB) *memberTable[types.Student] {
	return &memberTable[types.Student]{
		db:   db,
		name: "students",
		columns: []string{
			"id", "name", "mobile", "address", "email",
			"internship_domain", "college", "password", "is_active",
		},
		values: func(s types.Student) []any {
			return []any{
				s.ID, s.Name, s.Mobile, s.Address, s.Email,
				s.InternshipDomain, s.College, s.Password, bool(s.IsActive),
			}
		},
		scan: func(row rowScanner) (types.Student, error) {
			var s types.Student
			var active bool
			err := row.Scan(
				&s.ID, &s.Name, &s.Mobile, &s.Address, &s.Email,
				&s.InternshipDomain, &s.College, &s.Password, &active,
			)
			s.IsActive = types.ActiveFlag(active)
			return s, err
		},
	}
}

func newFacultyTable(db *sql.DB) *memberTable[types.Faculty] {
	return &memberTable[types.Faculty]{
		db:   db,
		name: "faculties",
		columns: []string{
			"id", "name", "mobile", "address", "email",
			"college", "password", "is_active",
		},
		values: func(f types.Faculty) []any {
			return []any{
				f.ID, f.Name, f.Mobile, f.Address, f.Email,
				f.College, f.Password, bool(f.IsActive),
			}
		},
		scan: func(row rowScanner) (types.Faculty, error) {
			var f types.Faculty
			var active bool
			err := row.Scan(
				&f.ID, &f.Name, &f.Mobile, &f.Address, &f.Email,
				&f.College, &f.Password, &active,
			)
			f.IsActive = types.ActiveFlag(active)
			return f, err
		},
	}
}

func (t *memberTable[T]) selectFrom() string {
	return fmt.Sprintf("SELECT %s FROM %s", strings.Join(t.columns, ", "), t.name)
}

func (t *memberTable[T]) Insert(ctx context.Context, record T) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(t.columns)), ", ")
	stmt, err := t.db.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		t.name, strings.Join(t.columns, ", "), placeholders,
	))
	if err != nil {
		return fmt.Errorf("Insert %s: prepare: %w", t.name, err)
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(ctx, t.values(record)...); err != nil {
		return fmt.Errorf("Insert %s: exec: %w", t.name, err)
	}

	return nil
}

func (t *memberTable[T]) SelectAll(ctx context.Context) ([]T, error) {
	return t.query(ctx, "SelectAll", t.selectFrom()+" ORDER BY rowid")
}

func (t *memberTable[T]) SelectByEmail(ctx context.Context, email string) ([]T, error) {
	return t.query(ctx, "SelectByEmail", t.selectFrom()+" WHERE email = ? ORDER BY rowid", email)
}

func (t *memberTable[T]) SelectByID(ctx context.Context, id string) (T, error) {
	var zero T

	stmt, err := t.db.PrepareContext(ctx, t.selectFrom()+" WHERE id = ? LIMIT 1")
	if err != nil {
		return zero, fmt.Errorf("SelectByID %s: prepare: %w", t.name, err)
	}
	defer stmt.Close()

	record, err := t.scan(stmt.QueryRowContext(ctx, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, storage.ErrNotFound
		}
		return zero, fmt.Errorf("SelectByID %s: scan: %w", t.name, err)
	}

	return record, nil
}

func (t *memberTable[T]) UpdateActive(ctx context.Context, id string, active bool) error {
	stmt, err := t.db.PrepareContext(ctx, fmt.Sprintf("UPDATE %s SET is_active = ? WHERE id = ?", t.name))
	if err != nil {
		return fmt.Errorf("UpdateActive %s: prepare: %w", t.name, err)
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, active, id)
	if err != nil {
		return fmt.Errorf("UpdateActive %s: exec: %w", t.name, err)
	}

	return requireRow(result, "UpdateActive", t.name)
}

func (t *memberTable[T]) Delete(ctx context.Context, id string) error {
	stmt, err := t.db.PrepareContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", t.name))
	if err != nil {
		return fmt.Errorf("Delete %s: prepare: %w", t.name, err)
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, id)
	if err != nil {
		return fmt.Errorf("Delete %s: exec: %w", t.name, err)
	}

	return requireRow(result, "Delete", t.name)
}

func (t *memberTable[T]) query(ctx context.Context, op, query string, args ...any) ([]T, error) {
	stmt, err := t.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s %s: prepare: %w", op, t.name, err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("%s %s: query: %w", op, t.name, err)
	}
	defer rows.Close()

	records := make([]T, 0)
	for rows.Next() {
		record, err := t.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%s %s: scan row: %w", op, t.name, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s %s: rows iteration: %w", op, t.name, err)
	}

	return records, nil
}

// requireRow turns "no row matched" into storage.ErrNotFound.
func requireRow(result sql.Result, op, table string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %s: rows affected: %w", op, table, err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

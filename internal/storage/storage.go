// Package storage defines the record store contract, one table per
// record kind, that any database backend must satisfy.
//
// Services depend only on these interfaces:
//
//   - Switching databases = implement the interfaces for the new DB,
//     change one line in main.go. Zero service changes.
//
//   - Writing tests = pass the in-memory store (storage/memory).
//
// There are no joins, cascades, or transactions spanning tables.
package storage

import (
	"context"
	"errors"

	"github.com/aanand-mishra/its-api/internal/types"
)

// ErrNotFound is returned when no row has the requested id.
var ErrNotFound = errors.New("record not found")

// MemberTable is the table for one member kind (students or faculties).
type MemberTable[T any] interface {
	// Insert stores a new record. The record's ID must already be set.
	Insert(ctx context.Context, record T) error

	// SelectAll returns every record in storage order.
	// Returns an empty slice (not nil) if the table is empty.
	SelectAll(ctx context.Context) ([]T, error)

	// SelectByID returns ErrNotFound if no record has the id.
	SelectByID(ctx context.Context, id string) (T, error)

	// SelectByEmail returns every record registered with email.
	SelectByEmail(ctx context.Context, email string) ([]T, error)

	// UpdateActive sets the activation flag. It is the only update a
	// member record supports. Returns ErrNotFound for an unknown id.
	UpdateActive(ctx context.Context, id string, active bool) error

	// Delete removes the record permanently. Returns ErrNotFound for an
	// unknown id.
	Delete(ctx context.Context, id string) error
}

// TaskTable is the task table. Tasks are never updated or deleted.
type TaskTable interface {
	// Insert stores task and returns its generated id.
	Insert(ctx context.Context, task types.Task) (int64, error)

	// SelectAll returns every task in storage order.
	SelectAll(ctx context.Context) ([]types.Task, error)
}

// Storage is the database handle passed to the services.
type Storage interface {
	Students() MemberTable[types.Student]
	Faculties() MemberTable[types.Faculty]
	Tasks() TaskTable
	Close() error
}

// Package service implements the operations behind the HTTP endpoints:
// member registration and activation, tasks, login and the admin
// dashboard. Services receive their store as a storage.Storage and never
// touch the database directly.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/aanand-mishra/its-api/internal/auth"
	"github.com/aanand-mishra/its-api/internal/storage"
	"github.com/aanand-mishra/its-api/internal/types"
)

// Registry manages one member kind: students or faculties. Both follow
// the same lifecycle: register inactive, toggle active, remove.
type Registry[T types.Entity[T]] struct {
	kind     string
	table    storage.MemberTable[T]
	verifier auth.Verifier
}

// NewRegistry returns a Registry for the member table. kind is the
// singular display name used in messages, e.g. "Student".
func NewRegistry[T types.Entity[T]](kind string, table storage.MemberTable[T], verifier auth.Verifier) *Registry[T] {
	return &Registry[T]{kind: kind, table: table, verifier: verifier}
}

// Kind returns the display name of the member kind.
func (r *Registry[T]) Kind() string { return r.kind }

func (r *Registry[T]) noun() string { return strings.ToLower(r.kind) }

// Register validates that every required field is present, assigns a new
// id, marks the record inactive and stores it. Any id or isActive value
// supplied by the caller is ignored.
func (r *Registry[T]) Register(ctx context.Context, record T) error {
	if err := check(record); err != nil {
		return err
	}

	m := record.Base()
	sealed, err := r.verifier.Seal(m.Password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return fmt.Errorf("%w: field password: %w", ErrValidation, err)
	}
	if err != nil {
		return fmt.Errorf("%w: seal %s password: %w", ErrStorage, r.noun(), err)
	}

	m.ID = uuid.NewString()
	m.Password = sealed
	m.IsActive = false

	if err := r.table.Insert(ctx, record.WithBase(m)); err != nil {
		return fmt.Errorf("%w: insert %s: %w", ErrStorage, r.noun(), err)
	}
	return nil
}

// List returns every record in storage order.
func (r *Registry[T]) List(ctx context.Context) ([]T, error) {
	records, err := r.table.SelectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %w", ErrStorage, r.noun(), err)
	}
	return records, nil
}

// Remove deletes the record with id.
func (r *Registry[T]) Remove(ctx context.Context, id string) error {
	if err := r.table.Delete(ctx, id); err != nil {
		return r.wrap("delete", id, err)
	}
	return nil
}

// ToggleActive flips the activation flag of the record with id and
// returns the new value. Calling it twice restores the original value.
//
// The read and the write are separate store calls with no lock between
// them: two concurrent toggles of the same id may both read the same
// state and leave the flag flipped once instead of twice.
func (r *Registry[T]) ToggleActive(ctx context.Context, id string) (bool, error) {
	record, err := r.table.SelectByID(ctx, id)
	if err != nil {
		return false, r.wrap("toggle", id, err)
	}

	next := !bool(record.Base().IsActive)
	if err := r.table.UpdateActive(ctx, id, next); err != nil {
		return false, r.wrap("toggle", id, err)
	}
	return next, nil
}

// matchCredentials reports whether any record registered with email has
// a stored password that verifies against password.
func (r *Registry[T]) matchCredentials(ctx context.Context, email, password string) (bool, error) {
	records, err := r.table.SelectByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("%w: find %s by email: %w", ErrStorage, r.noun(), err)
	}

	for _, record := range records {
		if r.verifier.Verify(password, record.Base().Password) {
			return true, nil
		}
	}
	return false, nil
}

func (r *Registry[T]) wrap(op, id string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%s %w", r.kind, ErrNotFound)
	}
	return fmt.Errorf("%w: %s %s %s: %w", ErrStorage, op, r.noun(), id, err)
}

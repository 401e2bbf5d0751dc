// Package memory is an in-process implementation of storage.Storage.
//
// It backs the "memory" storage driver (handy for demos, nothing survives
// a restart) and is the store the service and handler tests run against.
// Fail makes every subsequent call return an error, to exercise the
// storage-fault paths.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/aanand-mishra/its-api/internal/storage"
	"github.com/aanand-mishra/its-api/internal/types"
)

// Store keeps all tables behind one mutex.
type Store struct {
	mu   sync.Mutex
	fail error

	students  *memberTable[types.Student]
	faculties *memberTable[types.Faculty]
	tasks     *taskTable
}

func New() *Store {
	s := &Store{}
	s.students = &memberTable[types.Student]{store: s, name: "students"}
	s.faculties = &memberTable[types.Faculty]{store: s, name: "faculties"}
	s.tasks = &taskTable{store: s}
	return s
}

// Fail makes every table operation return err until Fail(nil).
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = err
}

func (s *Store) Students() storage.MemberTable[types.Student] { return s.students }

func (s *Store) Faculties() storage.MemberTable[types.Faculty] { return s.faculties }

func (s *Store) Tasks() storage.TaskTable { return s.tasks }

func (s *Store) Close() error { return nil }

type memberTable[T types.Entity[T]] struct {
	store *Store
	name  string
	rows  []T
}

func (t *memberTable[T]) index(id string) int {
	return slices.IndexFunc(t.rows, func(r T) bool { return r.Base().ID == id })
}

func (t *memberTable[T]) Insert(_ context.Context, record T) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if err := t.store.fail; err != nil {
		return err
	}

	if t.index(record.Base().ID) >= 0 {
		return fmt.Errorf("Insert %s: duplicate id %q", t.name, record.Base().ID)
	}
	t.rows = append(t.rows, record)
	return nil
}

func (t *memberTable[T]) SelectAll(_ context.Context) ([]T, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if err := t.store.fail; err != nil {
		return nil, err
	}

	return append(make([]T, 0, len(t.rows)), t.rows...), nil
}

func (t *memberTable[T]) SelectByID(_ context.Context, id string) (T, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	var zero T
	if err := t.store.fail; err != nil {
		return zero, err
	}

	i := t.index(id)
	if i < 0 {
		return zero, storage.ErrNotFound
	}
	return t.rows[i], nil
}

func (t *memberTable[T]) SelectByEmail(_ context.Context, email string) ([]T, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if err := t.store.fail; err != nil {
		return nil, err
	}

	found := make([]T, 0)
	for _, r := range t.rows {
		if r.Base().Email == email {
			found = append(found, r)
		}
	}
	return found, nil
}

func (t *memberTable[T]) UpdateActive(_ context.Context, id string, active bool) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if err := t.store.fail; err != nil {
		return err
	}

	i := t.index(id)
	if i < 0 {
		return storage.ErrNotFound
	}
	m := t.rows[i].Base()
	m.IsActive = types.ActiveFlag(active)
	t.rows[i] = t.rows[i].WithBase(m)
	return nil
}

func (t *memberTable[T]) Delete(_ context.Context, id string) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if err := t.store.fail; err != nil {
		return err
	}

	i := t.index(id)
	if i < 0 {
		return storage.ErrNotFound
	}
	t.rows = slices.Delete(t.rows, i, i+1)
	return nil
}

type taskTable struct {
	store  *Store
	lastID int64
	rows   []types.Task
}

func (t *taskTable) Insert(_ context.Context, task types.Task) (int64, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if err := t.store.fail; err != nil {
		return 0, err
	}

	t.lastID++
	task.ID = t.lastID
	t.rows = append(t.rows, task)
	return task.ID, nil
}

func (t *taskTable) SelectAll(_ context.Context) ([]types.Task, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if err := t.store.fail; err != nil {
		return nil, err
	}

	return append(make([]types.Task, 0, len(t.rows)), t.rows...), nil
}

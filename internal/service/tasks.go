package service

import (
	"context"
	"fmt"

	"github.com/aanand-mishra/its-api/internal/storage"
	"github.com/aanand-mishra/its-api/internal/types"
)

// Tasks creates and lists tasks.
//
// Unlike members, tasks are stored as given unless strict validation is
// on: the admin UI checks title, assignee and due date before posting,
// and older clients rely on the server accepting partial tasks.
type Tasks struct {
	table  storage.TaskTable
	strict bool
}

func NewTasks(table storage.TaskTable, strict bool) *Tasks {
	return &Tasks{table: table, strict: strict}
}

// Create stores task and returns its generated id.
func (s *Tasks) Create(ctx context.Context, task types.Task) (int64, error) {
	if s.strict {
		if err := check(task); err != nil {
			return 0, err
		}
	}

	task.ID = 0
	id, err := s.table.Insert(ctx, task)
	if err != nil {
		return 0, fmt.Errorf("%w: insert task: %w", ErrStorage, err)
	}
	return id, nil
}

// List returns every task in storage order.
func (s *Tasks) List(ctx context.Context) ([]types.Task, error) {
	tasks, err := s.table.SelectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list tasks: %w", ErrStorage, err)
	}
	return tasks, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aanand-mishra/its-api/internal/types"
)

type taskTable struct {
	db *sql.DB
}

// Insert stores task and returns the id SQLite generated for it.
// Nil fields are written as NULL.
func (t *taskTable) Insert(ctx context.Context, task types.Task) (int64, error) {
	stmt, err := t.db.PrepareContext(ctx, `
		INSERT INTO taskmanage
			(title, description, assigned_to, priority, status, assigned_date, due_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, fmt.Errorf("Insert taskmanage: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		task.Title, task.Description, task.AssignedTo,
		task.Priority, task.Status, task.AssignedDate, task.DueDate,
	)
	if err != nil {
		return 0, fmt.Errorf("Insert taskmanage: exec: %w", err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("Insert taskmanage: last insert id: %w", err)
	}

	return lastID, nil
}

func (t *taskTable) SelectAll(ctx context.Context) ([]types.Task, error) {
	stmt, err := t.db.PrepareContext(ctx, `
		SELECT id, title, description, assigned_to, priority, status, assigned_date, due_date
		FROM taskmanage ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("SelectAll taskmanage: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("SelectAll taskmanage: query: %w", err)
	}
	defer rows.Close()

	tasks := make([]types.Task, 0)
	for rows.Next() {
		var task types.Task
		if err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.AssignedTo,
			&task.Priority,
			&task.Status,
			&task.AssignedDate,
			&task.DueDate,
		); err != nil {
			return nil, fmt.Errorf("SelectAll taskmanage: scan row: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("SelectAll taskmanage: rows iteration: %w", err)
	}

	return tasks, nil
}

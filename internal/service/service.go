package service

import (
	"context"
	"fmt"

	"github.com/aanand-mishra/its-api/internal/auth"
	"github.com/aanand-mishra/its-api/internal/storage"
	"github.com/aanand-mishra/its-api/internal/types"
)

// Options configures New.
type Options struct {
	// Verifier seals and checks member passwords. Defaults to
	// auth.Plaintext.
	Verifier auth.Verifier

	// Admin is the administrator login.
	Admin auth.Account

	// StrictTasks enables server-side task validation.
	StrictTasks bool
}

// Services bundles every service built on one store.
type Services struct {
	Students  *Registry[types.Student]
	Faculties *Registry[types.Faculty]
	Tasks     *Tasks
	Auth      *Auth
	Dashboard *Dashboard
}

func New(store storage.Storage, opts Options) *Services {
	verifier := opts.Verifier
	if verifier == nil {
		verifier = auth.Plaintext{}
	}

	students := NewRegistry("Student", store.Students(), verifier)
	faculties := NewRegistry("Faculty", store.Faculties(), verifier)
	tasks := NewTasks(store.Tasks(), opts.StrictTasks)

	return &Services{
		Students:  students,
		Faculties: faculties,
		Tasks:     tasks,
		Auth:      NewAuth(opts.Admin, students, faculties),
		Dashboard: &Dashboard{students: students, faculties: faculties, tasks: tasks},
	}
}

// Dashboard builds the admin overview.
type Dashboard struct {
	students  *Registry[types.Student]
	faculties *Registry[types.Faculty]
	tasks     *Tasks
}

// Get returns the three tables as they are. No statistics are derived
// here; the dashboard charts are rendered from fixed sample data.
func (d *Dashboard) Get(ctx context.Context) (types.Dashboard, error) {
	var (
		out types.Dashboard
		err error
	)

	if out.Students, err = d.students.List(ctx); err != nil {
		return types.Dashboard{}, fmt.Errorf("dashboard: %w", err)
	}
	if out.Faculties, err = d.faculties.List(ctx); err != nil {
		return types.Dashboard{}, fmt.Errorf("dashboard: %w", err)
	}
	if out.Tasks, err = d.tasks.List(ctx); err != nil {
		return types.Dashboard{}, fmt.Errorf("dashboard: %w", err)
	}

	return out, nil
}

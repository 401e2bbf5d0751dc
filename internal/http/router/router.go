// Package router wires the HTTP handlers to their routes.
package router

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/aanand-mishra/its-api/internal/http/handlers/dashboard"
	"github.com/aanand-mishra/its-api/internal/http/handlers/login"
	"github.com/aanand-mishra/its-api/internal/http/handlers/member"
	"github.com/aanand-mishra/its-api/internal/http/handlers/task"
	"github.com/aanand-mishra/its-api/internal/service"
	"github.com/aanand-mishra/its-api/internal/types"
)

// New returns the API handler.
//
// Route table:
//
//	POST   /students                      → register a student
//	GET    /students                      → list all students
//	DELETE /students/{id}                 → delete a student
//	PUT    /students/{id}/toggle-active   → activate / deactivate
//	(same four routes under /faculties)
//	POST   /login                         → check credentials
//	GET    /tasks                         → list all tasks
//	POST   /tasks                         → create a task
//	GET    /admin/dashboard               → students, faculties and tasks
//
// The admin UI is served from another origin, so every route is wrapped
// in CORS handling for corsOrigins.
func New(svc *service.Services, corsOrigins []string) http.Handler {
	mux := http.NewServeMux()

	member.Mount[types.Student, types.StudentForm](mux, "students", svc.Students)
	member.Mount[types.Faculty, types.FacultyForm](mux, "faculties", svc.Faculties)

	mux.HandleFunc("POST /login", login.New(svc.Auth))

	mux.HandleFunc("GET /tasks", task.GetList(svc.Tasks))
	mux.HandleFunc("POST /tasks", task.New(svc.Tasks))

	mux.HandleFunc("GET /admin/dashboard", dashboard.Get(svc.Dashboard))

	c := cors.New(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete,
		},
		AllowedHeaders: []string{"Content-Type"},
	})

	return c.Handler(mux)
}

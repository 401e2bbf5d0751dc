// Package member contains the HTTP handlers shared by the Student and
// Faculty resources. Both are served by the same generic handlers over a
// service.Registry; only the URL prefix and the messages differ.
//
// Handlers are built by factory functions that close over the registry:
//
//	router.HandleFunc("POST /students", member.New[types.Student, types.StudentForm](services.Students))
//
// The factory runs once at startup; the returned func runs per request.
package member

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aanand-mishra/its-api/internal/service"
	"github.com/aanand-mishra/its-api/internal/types"
	"github.com/aanand-mishra/its-api/internal/utils/request"
	"github.com/aanand-mishra/its-api/internal/utils/response"
)

// Mount registers the member routes under /{resource}, e.g. "students".
// F is the registration body decoded by POST /{resource}.
//
//	POST   /{resource}                    → register
//	GET    /{resource}                    → list all
//	DELETE /{resource}/{id}               → remove
//	PUT    /{resource}/{id}/toggle-active → flip isActive
func Mount[T types.Entity[T], F types.Form[T]](router *http.ServeMux, resource string, svc *service.Registry[T]) {
	router.HandleFunc("POST /"+resource, New[T, F](svc))
	router.HandleFunc("GET /"+resource, GetList(svc, resource))
	router.HandleFunc("DELETE /"+resource+"/{id}", Delete(svc))
	router.HandleFunc("PUT /"+resource+"/{id}/toggle-active", ToggleActive(svc))
}

// New handles POST /{resource}.
//
// Request body (JSON), every field required:
//
//	{ "name": "A", "mobile": "1", "address": "x", "email": "a@a.com",
//	  "internshipDomain": "SE", "college": "X", "password": "p" }
//
// Numbers are accepted for text fields. Unknown keys, id and isActive
// are ignored.
//
// Success response (201 Created):
//
//	{ "status": "ok", "message": "Student created successfully" }
func New[T types.Entity[T], F types.Form[T]](svc *service.Registry[T]) http.HandlerFunc {
	kind := svc.Kind()
	failMsg := fmt.Sprintf("Failed to create %s", strings.ToLower(kind))

	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("registering member", slog.String("kind", kind))

		var form F
		if err := request.DecodeJSON(r, &form); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := svc.Register(request.Context(r), form.Record()); err != nil {
			response.WriteServiceError(w, err, failMsg)
			return
		}

		slog.Info("member registered", slog.String("kind", kind))
		response.WriteJSON(w, http.StatusCreated, response.OK(kind+" created successfully"))
	}
}

// GetList handles GET /{resource} and returns a JSON array of every
// record, [] when there are none.
func GetList[T types.Entity[T]](svc *service.Registry[T], resource string) http.HandlerFunc {
	failMsg := "Failed to fetch " + resource

	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("listing members", slog.String("kind", svc.Kind()))

		records, err := svc.List(request.Context(r))
		if err != nil {
			response.WriteServiceError(w, err, failMsg)
			return
		}

		response.WriteJSON(w, http.StatusOK, records)
	}
}

// Delete handles DELETE /{resource}/{id}.
//
// Error responses:
//
//	404 Not Found — no record with that id
//	500 Internal  — database error
func Delete[T types.Entity[T]](svc *service.Registry[T]) http.HandlerFunc {
	kind := svc.Kind()
	failMsg := fmt.Sprintf("Failed to delete %s", strings.ToLower(kind))

	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("deleting member", slog.String("kind", kind), slog.String("id", id))

		if err := svc.Remove(request.Context(r), id); err != nil {
			response.WriteServiceError(w, err, failMsg)
			return
		}

		slog.Info("member deleted", slog.String("kind", kind), slog.String("id", id))
		response.WriteJSON(w, http.StatusOK, response.OK(kind+" deleted successfully"))
	}
}

// ToggleActive handles PUT /{resource}/{id}/toggle-active.
//
// Success response (200 OK):
//
//	{ "status": "ok", "message": "Student activated successfully", "isActive": 1 }
func ToggleActive[T types.Entity[T]](svc *service.Registry[T]) http.HandlerFunc {
	kind := svc.Kind()
	failMsg := fmt.Sprintf("Failed to toggle %s status", strings.ToLower(kind))

	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("toggling member status", slog.String("kind", kind), slog.String("id", id))

		active, err := svc.ToggleActive(request.Context(r), id)
		if err != nil {
			response.WriteServiceError(w, err, failMsg)
			return
		}

		verb := "deactivated"
		if active {
			verb = "activated"
		}
		flag := types.ActiveFlag(active).Int()

		msg := response.OK(fmt.Sprintf("%s %s successfully", kind, verb))
		msg.IsActive = &flag

		slog.Info("member status toggled",
			slog.String("kind", kind),
			slog.String("id", id),
			slog.Bool("active", active))
		response.WriteJSON(w, http.StatusOK, msg)
	}
}

// Package task contains the HTTP handlers for the Task resource.
package task

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/its-api/internal/service"
	"github.com/aanand-mishra/its-api/internal/types"
	"github.com/aanand-mishra/its-api/internal/utils/request"
	"github.com/aanand-mishra/its-api/internal/utils/response"
)

// New handles POST /tasks.
//
// Request body (JSON), every field optional unless strict task
// validation is enabled:
//
//	{ "title": "Build login page", "description": "...", "assignedTo": "Asha",
//	  "priority": "Medium", "status": "Pending",
//	  "assignedDate": "2024-06-01", "dueDate": "2024-06-10" }
//
// Success response (201 Created):
//
//	{ "status": "ok", "message": "Task inserted successfully", "taskId": 7 }
func New(svc *service.Tasks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a task")

		var task types.Task
		if err := request.DecodeJSON(r, &task); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		id, err := svc.Create(request.Context(r), task)
		if err != nil {
			response.WriteServiceError(w, err, "Failed to insert task")
			return
		}

		slog.Info("task created", slog.Int64("id", id))

		msg := response.OK("Task inserted successfully")
		msg.TaskID = &id
		response.WriteJSON(w, http.StatusCreated, msg)
	}
}

// GetList handles GET /tasks.
func GetList(svc *service.Tasks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all tasks")

		tasks, err := svc.List(request.Context(r))
		if err != nil {
			response.WriteServiceError(w, err, "Failed to fetch tasks")
			return
		}

		response.WriteJSON(w, http.StatusOK, tasks)
	}
}

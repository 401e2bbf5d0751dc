// Package response provides helpers for writing consistent JSON HTTP
// responses.
//
// Success responses may be any JSON shape (a list, an email, a message).
// Error responses always look like:
//
//	{ "status": "error", "error": "Student not found" }
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/its-api/internal/service"
)

// Response is the envelope for errors.
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// Message is the envelope for successful writes.
//
// IsActive is set by the toggle endpoints and TaskID by task creation;
// both are omitted elsewhere.
type Message struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	IsActive *int   `json:"isActive,omitempty"`
	TaskID   *int64 `json:"taskId,omitempty"`
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON writes data as JSON with the given HTTP status code.
// Header() → WriteHeader() → body, in that order: headers are locked
// once the status line is written.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// OK builds a success Message.
func OK(msg string) Message {
	return Message{Status: StatusOK, Message: msg}
}

// GeneralError wraps any Go error into the standard Response shape.
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ValidationError converts validator field errors into one readable
// Response:
//
//	{ "status": "error", "error": "field name is required, field role is invalid" }
func ValidationError(errs validator.ValidationErrors) Response {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		case "min":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must not be empty", e.Field()))
		case "oneof":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be one of: %s", e.Field(), e.Param()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(errMessages, ", "),
	}
}

// WriteServiceError maps an error returned by the service layer to a
// status code and writes it.
//
// Storage faults are logged and answered with failMsg only, so driver
// details never reach the client.
func WriteServiceError(w http.ResponseWriter, err error, failMsg string) {
	var verr *service.ValidationError

	switch {
	case errors.As(err, &verr):
		WriteJSON(w, http.StatusBadRequest, ValidationError(verr.Fields))
	case errors.Is(err, service.ErrValidation):
		WriteJSON(w, http.StatusBadRequest, GeneralError(err))
	case errors.Is(err, service.ErrNotFound):
		WriteJSON(w, http.StatusNotFound, GeneralError(err))
	case errors.Is(err, service.ErrInvalidCredentials):
		WriteJSON(w, http.StatusUnauthorized, GeneralError(err))
	default:
		slog.Error(failMsg, slog.String("error", err.Error()))
		WriteJSON(w, http.StatusInternalServerError, GeneralError(errors.New(failMsg)))
	}
}

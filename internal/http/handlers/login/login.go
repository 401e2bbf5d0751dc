// Package login contains the credential check endpoint.
package login

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/its-api/internal/service"
	"github.com/aanand-mishra/its-api/internal/types"
	"github.com/aanand-mishra/its-api/internal/utils/request"
	"github.com/aanand-mishra/its-api/internal/utils/response"
)

// New handles POST /login.
//
// Request body (JSON):
//
//	{ "email": "admin@admin.com", "password": "...", "role": "Admin" }
//
// role is one of Admin, Faculty, Student. On success the response body
// is the email as a JSON string; there is no session or token.
//
// Error responses:
//
//	400 Bad Request  — a field is missing or the role is unknown
//	401 Unauthorized — no matching credentials
//	500 Internal     — database error
func New(svc *service.Auth) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds types.Credentials
		if err := request.DecodeJSON(r, &creds); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// Never log the password.
		slog.Info("login attempt",
			slog.String("email", creds.Email),
			slog.String("role", string(creds.Role)))

		email, err := svc.Authenticate(request.Context(r), creds)
		if err != nil {
			slog.Info("login rejected",
				slog.String("email", creds.Email),
				slog.String("error", err.Error()))
			response.WriteServiceError(w, err, "Login failed")
			return
		}

		response.WriteJSON(w, http.StatusOK, email)
	}
}

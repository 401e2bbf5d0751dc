// Package dashboard serves the admin overview.
package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/its-api/internal/service"
	"github.com/aanand-mishra/its-api/internal/utils/request"
	"github.com/aanand-mishra/its-api/internal/utils/response"
)

// Get handles GET /admin/dashboard.
//
//	{ "students": [...], "faculties": [...], "tasks": [...] }
func Get(svc *service.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("building admin dashboard")

		data, err := svc.Get(request.Context(r))
		if err != nil {
			response.WriteServiceError(w, err, "Failed to fetch dashboard data")
			return
		}

		response.WriteJSON(w, http.StatusOK, data)
	}
}

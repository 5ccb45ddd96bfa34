package httpx

import (
	"net/http"

	"github.com/auroracrm/console/internal/service"
)

// LookupHandlers serves the form option and assignee lookups.
type LookupHandlers struct {
	FormOptions *service.FormOptionsService
}

// Options handles GET /api/form-options.
func (h *LookupHandlers) Options(w http.ResponseWriter, r *http.Request) {
	opts, err := h.FormOptions.Options(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, opts)
}

// Employees handles GET /api/employees?departmentId=...&accountId=...
func (h *LookupHandlers) Employees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.FormOptions.Employees(r.Context(),
		r.URL.Query().Get("departmentId"),
		r.URL.Query().Get("accountId"))
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, employees)
}

package httpx

import (
	"net/http"

	"github.com/auroracrm/console/internal/domain/model"
	"github.com/auroracrm/console/internal/service"
)

// CustomerHandlers serves the customer search endpoint.
type CustomerHandlers struct {
	Customers *service.CustomerService
}

// Search handles POST /api/customers/search. The response carries the
// outcome classification so the client can branch without counting.
func (h *CustomerHandlers) Search(w http.ResponseWriter, r *http.Request) {
	var query model.CustomerSearchQuery
	if !DecodeJSON(w, r, &query) {
		return
	}

	result, err := h.Customers.Search(r.Context(), query)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

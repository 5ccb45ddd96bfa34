package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/auroracrm/console/internal/errors"
)

// DecodeJSON decodes JSON from the request body into the destination and handles errors.
// Returns true if successful, false if there was an error (error response already written).
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_json", Message: err.Error()})
		return false
	}

	return true
}

// WriteJSON writes a JSON response with the given status code and data.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		// Response writer errors (e.g. client disconnect) can't be recovered from here.
		return
	}
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// WriteError maps an application error onto an HTTP status and a uniform
// JSON error body. Unknown errors are reported as internal without
// leaking their text.
func WriteError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	body := errorBody{
		Error:   string(code),
		Message: err.Error(),
		Field:   errors.GetField(err),
	}
	if code == "" || code == errors.ErrCodeInternal {
		body.Error = string(errors.ErrCodeInternal)
		body.Message = "internal server error"
	}
	WriteJSON(w, statusFor(err), body)
}

func statusFor(err error) int {
	switch {
	case errors.IsValidation(err), errors.IsOTPIncomplete(err):
		return http.StatusBadRequest
	case errors.IsAuthentication(err), errors.IsAuthExpired(err):
		return http.StatusUnauthorized
	case errors.IsNotFound(err):
		return http.StatusNotFound
	case errors.IsUpstream(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

package helpers

import (
	"encoding/json"
	"net/http"

	"invitationservice/internal/domain"
)

// Error keys for failures that are not tied to a request field.
const (
	ErrKeyBody   = "body"
	ErrKeyRoute  = "route"
	ErrKeyServer = "server"
)

// ErrorResponse is the body of every error response: field name -> message.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Errors domain.FieldErrors `json:"errors"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and encodes data.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteNoContent writes a 204 with no body.
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// WriteFieldErrors writes statusCode with an ErrorResponse carrying errs.
func WriteFieldErrors(w http.ResponseWriter, statusCode int, errs domain.FieldErrors) {
	WriteJSON(w, statusCode, ErrorResponse{Errors: errs})
}

// WriteJSONError writes statusCode with a single error under key.
func WriteJSONError(w http.ResponseWriter, statusCode int, key, message string) {
	WriteFieldErrors(w, statusCode, domain.FieldErrors{key: message})
}

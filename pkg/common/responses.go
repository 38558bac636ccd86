package common

import (
	"encoding/json"
	"net/http"

	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// RespondJSON sends a JSON response with the standard envelope
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	response := APIResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

// RespondMessage sends a success response with a human-readable message
func RespondMessage(w http.ResponseWriter, status int, message string, data interface{}) {
	response := APIResponse{
		Success: status >= 200 && status < 300,
		Message: message,
		Data:    data,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

// RespondRaw sends an arbitrary payload as JSON without the envelope.
// Used where the response shape is dictated by the endpoint contract.
func RespondRaw(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// ParseJSONBody parses a JSON request body with a size limit
func ParseJSONBody(w http.ResponseWriter, r *http.Request, v interface{}, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(v); err != nil {
		return pkgerrors.NewValidationError("invalid request body").WithCause(err)
	}

	return nil
}

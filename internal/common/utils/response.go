// internal/common/utils/response.go
// Standardized API responses ensure consistency across all endpoints

package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/emberlyapp/emberly-backend/internal/common/apperrors"
)

// Response is the standard API response structure
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RespondWithJSON sends a JSON response with the specified status code and payload
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Error marshaling JSON"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// RespondWithError sends an error response with the specified status code and message
func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{Success: false, Error: message})
}

// RespondWithData sends a success response with data wrapped in the standard format
func RespondWithData(w http.ResponseWriter, code int, data interface{}) {
	RespondWithJSON(w, code, Response{Success: true, Data: data})
}

// MessageResponse sends a simple message response
func MessageResponse(w http.ResponseWriter, message string, statusCode int) {
	RespondWithJSON(w, statusCode, Response{Success: true, Message: message})
}

// RespondWithAppError maps the shared failure taxonomy to HTTP status codes.
// Unknown errors are reported as persistence-level failures.
func RespondWithAppError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUnauthenticated):
		RespondWithError(w, http.StatusUnauthorized, "Please sign in first")
	case errors.Is(err, apperrors.ErrNotFound):
		RespondWithError(w, http.StatusNotFound, "The requested resource was not found")
	case errors.Is(err, apperrors.ErrInvalidState):
		RespondWithError(w, http.StatusConflict, err.Error())
	default:
		RespondWithError(w, http.StatusBadGateway, "Backend call failed, please try again")
	}
}

// Package api implements HTTP handlers for the power price series service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"powerprices/internal/domain"
	"powerprices/internal/service"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"country is required"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeServiceError maps use-case errors to HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnsupportedCountry),
		errors.Is(err, service.ErrUnsupportedProvider),
		errors.Is(err, service.ErrInvalidRange),
		errors.Is(err, service.ErrRangeTooLarge),
		errors.Is(err, service.ErrInvalidGranularity),
		errors.Is(err, domain.ErrInvalidEnum),
		errors.Is(err, domain.ErrInvalidDate):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "No series available for the given parameters"})
	case errors.Is(err, service.ErrNotImplemented):
		writeJSON(w, http.StatusNotImplemented, ErrorResponse{Error: "Not implemented"})
	case errors.Is(err, service.ErrProviderUnavailable):
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: "Price provider unavailable"})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal error"})
	}
}

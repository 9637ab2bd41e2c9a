package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adiyatma/coin-tracker-be/internal/services"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError maps service errors to status codes. Unrecognized errors are
// reported as a generic 500 so storage details never leak to clients.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, services.ErrInvalidInput):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, err.Error()
	case errors.Is(err, services.ErrDuplicateUsername),
		errors.Is(err, services.ErrAlreadyTracked):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, services.ErrCoinNotFound),
		errors.Is(err, services.ErrNotTracked),
		errors.Is(err, services.ErrUserNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, services.ErrUpstreamUnavailable):
		status, message = http.StatusBadGateway, err.Error()
	}

	respondJSON(w, status, map[string]string{"error": message})
}

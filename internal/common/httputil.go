package common

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// WriteJSON serializes v with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// WriteError maps the service error taxonomy onto HTTP status codes:
// ValidationError -> 422, NotFoundError -> 404, AuthorizationError -> 403,
// anything else -> 500.
func WriteError(w http.ResponseWriter, err error) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		WriteJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"message": "The given data was invalid.",
			"errors":  validationErr.Fields,
		})
		return
	}

	var notFoundErr *NotFoundError
	if errors.As(err, &notFoundErr) {
		WriteJSON(w, http.StatusNotFound, map[string]string{"error": notFoundErr.Error()})
		return
	}

	var authErr *AuthorizationError
	if errors.As(err, &authErr) {
		WriteJSON(w, http.StatusForbidden, map[string]string{"error": authErr.Error()})
		return
	}

	log.Printf("internal error: %v", err)
	WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

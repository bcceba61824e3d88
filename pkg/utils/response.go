package utils

import (
	"encoding/json"
	"log"
	"net/http"
)

// RespondJSON writes a JSON response with the given status.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// RespondError writes a {"error": message} body.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]string{"error": message})
}

// RespondErrorDetails writes an error body carrying a structured detail list,
// the shape validation failures are reported in.
func RespondErrorDetails(w http.ResponseWriter, status int, message string, details interface{}) {
	RespondJSON(w, status, map[string]interface{}{
		"error":   message,
		"details": details,
	})
}

package middleware

import (
	"encoding/json"
	"net/http"
	"time"
)

// writeError emits the API's standard error envelope. Kept here so the
// middleware chain answers in the same shape as the handlers.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"success":   false,
		"message":   message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError writes the API error envelope. Middleware runs before any
// handler so it cannot share the rest package's writer.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{Success: false, Message: message})
}

// Package respond writes the API's JSON response envelopes.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

// Error writes the API's error envelope: {"message": "..."}.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, messageResponse{Message: message})
}

package api

import (
	"encoding/json"
	"net/http"
)

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// respondFailure writes the uniform domain-failure body. Per the legacy
// contract, only authentication failures use a non-200 status; everything
// else reports through the success flag.
func respondFailure(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusOK, map[string]any{"success": false, "error": message})
}

func respondInternalError(w http.ResponseWriter) {
	respondJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "error": "internal error"})
}

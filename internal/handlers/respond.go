package handlers

import (
	"encoding/json"
	"net/http"
)

// envelope is the response shape shared by every route:
// {error: bool, message: string, ...payload}.
type envelope map[string]interface{}

func respondJSON(w http.ResponseWriter, status int, payload envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, envelope{"error": true, "message": message})
}

// HomeHandler is the unauthenticated health route.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, envelope{"message": "Welcome Home"})
}

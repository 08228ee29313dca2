package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the error envelope rendered to clients: a "fail"/"error"
// status discriminator and a human-readable message. Internal detail never
// goes in here.
type ErrorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError renders the error envelope. 4xx codes are client failures
// ("fail"), everything else is a server error ("error").
func WriteError(w http.ResponseWriter, code int, message string) {
	status := "error"
	if code >= 400 && code < 500 {
		status = "fail"
	}
	WriteJSON(w, code, ErrorBody{Status: status, Message: message})
}

// NoCache marks a response as uncacheable. Required for token and secret
// material.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

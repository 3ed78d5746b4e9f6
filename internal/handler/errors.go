package handler

import (
	"encoding/json"
	"net/http"
)

// errorBody is the JSON error shape of the API: {"error": "...", "message": "..."}.
// Message is omitted when the error alone is enough (the 400 case).
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// writeJSON serializes v with the standard headers. Encoding failures after
// the header is written cannot be reported to the client; they surface in the
// request log instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError emits the error body with the given status.
func writeError(w http.ResponseWriter, status int, errMsg, message string) {
	writeJSON(w, status, errorBody{Error: errMsg, Message: message})
}

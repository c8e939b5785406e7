// Package response provides helpers for writing HTTP responses.
//
// Success responses are JSON; failure responses (400/404) carry an
// empty body — the status code is the whole error contract, and the
// detail goes to the structured log instead of the wire. Centralising
// the write order here (Content-Type → status → body) keeps every
// handler consistent.
package response

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes data JSON-encoded with the given HTTP status code.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called (or the first Write), headers are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// json.NewEncoder(w) streams straight into the response body and
	// appends a trailing newline — handy for curl testing.
	return json.NewEncoder(w).Encode(data)
}

// WriteText writes a plain-text body with the given status code.
func WriteText(w http.ResponseWriter, status int, body string) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)

	_, err := w.Write([]byte(body))
	return err
}

// WriteEmpty writes the status code with no body. Used for every
// failure (400/404) and for 204 No Content.
func WriteEmpty(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}

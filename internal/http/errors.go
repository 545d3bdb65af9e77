package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse represents a JSON error response.
// Only contains an error field to avoid leaking internal details.
type ErrorResponse struct {
	Error string `json:"error"`
}

// noStore sets cache control headers to prevent response caching.
// Debug output reflects live configuration and must not be cached.
func noStore(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store, max-age=0")
	w.Header().Set("Pragma", "no-cache")
}

// writeJSON writes a JSON response with the proper content type and status code.
// This helper ensures consistent JSON formatting and charset handling across all endpoints.
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set(HeaderContentType, ContentTypeJSON)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// writeJSONError is a helper that writes a JSON error response.
// Ensures consistent error formatting across all error responses.
func writeJSONError(w http.ResponseWriter, statusCode int, errorCode string) {
	writeJSON(w, statusCode, ErrorResponse{Error: errorCode})
}

// notFound replaces chi's plain-text 404.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeJSONError(w, http.StatusNotFound, ErrCodeNotFound)
}

// methodNotAllowed replaces chi's plain-text 405.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSONError(w, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed)
}

// ServerError writes a 500 Internal Server Error response.
// The path is logged server-side; the client only sees a generic code.
func ServerError(w http.ResponseWriter, r *http.Request) {
	slog.Error("server error", "path", r.URL.Path)
	writeJSONError(w, http.StatusInternalServerError, ErrCodeServerError)
}

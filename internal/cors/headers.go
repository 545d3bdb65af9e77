package cors

import (
	"net/http"
	"strconv"

	"github.com/nadavyigal/originguard/internal/policy"
)

// Header names and fixed values.
const (
	HeaderOrigin           = "Origin"
	HeaderVary             = "Vary"
	HeaderAllowOrigin      = "Access-Control-Allow-Origin"
	HeaderAllowMethods     = "Access-Control-Allow-Methods"
	HeaderAllowHeaders     = "Access-Control-Allow-Headers"
	HeaderAllowCredentials = "Access-Control-Allow-Credentials"
	HeaderMaxAge           = "Access-Control-Max-Age"

	AllowedMethods = "GET, POST, OPTIONS, PUT, DELETE"
	AllowedHeaders = "Content-Type, Authorization, X-Requested-With"

	// MaxAge is how long browsers may cache a preflight result.
	MaxAge = 86400
)

// ResolveAllowedOrigin returns the Access-Control-Allow-Origin value for
// requestOrigin: the origin itself when allowed, else the policy's
// fallback origin. An empty requestOrigin yields the environment default.
// The result may be empty when nothing is configured.
func (e *Engine) ResolveAllowedOrigin(requestOrigin string) string {
	snap := e.source.Snapshot()
	if requestOrigin == "" {
		return snap.DefaultOrigin()
	}
	return allowedOrigin(e.validator.Validate(requestOrigin, snap), snap)
}

// Headers returns the full CORS header set for requestOrigin. It has no
// monitoring side effect and returns identical maps for identical input.
func (e *Engine) Headers(requestOrigin string) http.Header {
	return buildHeaders(e.ResolveAllowedOrigin(requestOrigin))
}

func allowedOrigin(v policy.Verdict, snap policy.Snapshot) string {
	if v.Allowed() {
		return v.Origin()
	}
	return snap.FallbackOrigin()
}

// buildHeaders returns the CORS header set for an already-resolved
// Access-Control-Allow-Origin value. The allow-origin header is omitted
// when allowOrigin is empty; Vary: Origin is always present.
func buildHeaders(allowOrigin string) http.Header {
	h := make(http.Header, 6)
	if allowOrigin != "" {
		h.Set(HeaderAllowOrigin, allowOrigin)
	}
	h.Set(HeaderAllowMethods, AllowedMethods)
	h.Set(HeaderAllowHeaders, AllowedHeaders)
	h.Set(HeaderAllowCredentials, "true")
	h.Set(HeaderMaxAge, strconv.Itoa(MaxAge))
	h.Set(HeaderVary, HeaderOrigin)
	return h
}

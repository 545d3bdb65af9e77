// Package httpx provides the HTTP surface of the origin guard: the chi
// router, health and metrics endpoints, and the CORS-protected API group.
package httpx

// HTTP Routes
const (
	// RouteHealth is the endpoint for health checks
	RouteHealth = "/healthz"
	// RouteMetrics is the Prometheus scrape endpoint
	RouteMetrics = "/metrics"
	// RouteDebugCORS reports the effective CORS policy (non-production only)
	RouteDebugCORS = "/debug/cors"
	// RouteAPI is the prefix of the routes served behind the CORS middleware
	RouteAPI = "/api"
	// RoutePing is the API liveness endpoint, relative to RouteAPI
	RoutePing = "/ping"
)

// Content Types
const (
	// ContentTypeJSON is the MIME type for JSON responses with UTF-8 charset
	ContentTypeJSON = "application/json; charset=utf-8"
)

// HTTP Headers
const (
	// HeaderContentType is the Content-Type header name
	HeaderContentType = "Content-Type"
	// HeaderHSTS is the Strict-Transport-Security header name
	HeaderHSTS = "Strict-Transport-Security"
	// HSTSValue is sent when HSTS is enabled
	HSTSValue = "max-age=31536000; includeSubDomains"
)

// Error codes written in JSON error bodies
const (
	ErrCodeNotFound         = "not_found"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeServerError      = "server_error"
)

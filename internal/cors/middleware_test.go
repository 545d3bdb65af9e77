package cors

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMiddleware(t *testing.T) {
	sink := &recordingSink{}
	e := newTestEngine(map[string]string{
		"ENV":                     "production",
		"ALLOWED_ORIGINS":         "https://app.example.com",
		"CORS_MONITORING_ENABLED": "true",
	}, WithSink(sink))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	})
	handler := e.Middleware(next)

	tests := []struct {
		name            string
		method          string
		origin          string
		expectedStatus  int
		expectedBody    string
		expectedACAO    string
		expectedEvents  int
		expectedMethods bool
	}{
		{
			name:            "preflight from allowed origin",
			method:          http.MethodOptions,
			origin:          "https://app.example.com",
			expectedStatus:  http.StatusOK,
			expectedACAO:    "https://app.example.com",
			expectedMethods: true,
		},
		{
			name:           "preflight from unknown origin",
			method:         http.MethodOptions,
			origin:         "https://evil.com",
			expectedStatus: http.StatusForbidden,
			expectedBody:   "{\"error\":\"forbidden\"}\n",
			expectedEvents: 1,
		},
		{
			name:            "simple request from allowed origin",
			method:          http.MethodGet,
			origin:          "https://app.example.com",
			expectedStatus:  http.StatusOK,
			expectedBody:    "success",
			expectedACAO:    "https://app.example.com",
			expectedMethods: true,
		},
		{
			name:            "simple request from unknown origin gets fallback",
			method:          http.MethodPost,
			origin:          "https://evil.com",
			expectedStatus:  http.StatusOK,
			expectedBody:    "success",
			expectedACAO:    "https://app.example.com",
			expectedEvents:  1,
			expectedMethods: true,
		},
		{
			name:           "same-origin request without Origin",
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
			expectedBody:   "success",
		},
		{
			name:           "OPTIONS without Origin reaches handler",
			method:         http.MethodOptions,
			expectedStatus: http.StatusOK,
			expectedBody:   "success",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink.events = nil

			req := httptest.NewRequest(tt.method, "/api/ping", nil)
			if tt.origin != "" {
				req.Header.Set(HeaderOrigin, tt.origin)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if tt.expectedBody != "" && w.Body.String() != tt.expectedBody {
				t.Errorf("expected body %q, got %q", tt.expectedBody, w.Body.String())
			}
			if got := w.Header().Get(HeaderAllowOrigin); got != tt.expectedACAO {
				t.Errorf("expected Access-Control-Allow-Origin %q, got %q", tt.expectedACAO, got)
			}
			if got := w.Header().Get(HeaderAllowMethods) != ""; got != tt.expectedMethods {
				t.Errorf("Access-Control-Allow-Methods present = %v, want %v", got, tt.expectedMethods)
			}
			if got := w.Header().Get(HeaderVary); got != HeaderOrigin {
				t.Errorf("expected Vary: Origin, got %q", got)
			}
			if got := sink.count(); got != tt.expectedEvents {
				t.Errorf("expected %d violation events, got %d", tt.expectedEvents, got)
			}
		})
	}
}

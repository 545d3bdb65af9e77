package cors

import (
	"net/http"
)

// Middleware applies the policy to every request:
//   - OPTIONS requests carrying an Origin get a synthesized preflight
//     response and never reach next
//   - other requests carrying an Origin get the CORS header set derived
//     from a single validation, then continue to next
//   - requests without an Origin only get Vary: Origin
func (e *Engine) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestOrigin := r.Header.Get(HeaderOrigin)
		if requestOrigin == "" {
			w.Header().Add(HeaderVary, HeaderOrigin)
			next.ServeHTTP(w, r)
			return
		}

		if r.Method == http.MethodOptions {
			e.CORSResponse(requestOrigin).Write(w)
			return
		}

		snap := e.source.Snapshot()
		v := e.validate(requestOrigin, snap)
		for k, vs := range buildHeaders(allowedOrigin(v, snap)) {
			w.Header()[k] = vs
		}
		next.ServeHTTP(w, r)
	})
}

package httpx

import (
	"net/http"

	"github.com/nadavyigal/originguard/internal/cors"
	"github.com/nadavyigal/originguard/internal/policy"
)

// DebugCORSResponse is the body of the debug endpoint. Verdict and Headers
// are only present when an origin query parameter was supplied.
type DebugCORSResponse struct {
	Policy  policy.Summary  `json:"policy"`
	Verdict *policy.Verdict `json:"verdict,omitempty"`
	Headers http.Header     `json:"headers,omitempty"`
}

// debugCORSHandler reports the effective policy and, for ?origin=, the
// decision the engine would make. Evaluation here never emits monitoring
// events or counts towards the validation metrics.
func debugCORSHandler(engine *cors.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, ok := GetConfigFromContext(r.Context())
		if !ok {
			writeJSONError(w, http.StatusInternalServerError, ErrCodeServerError)
			return
		}

		// Hidden in production even if the route was registered
		if cfg.Environment() == policy.EnvProduction {
			notFound(w, r)
			return
		}

		noStore(w)
		resp := DebugCORSResponse{Policy: engine.Summary()}
		if r.URL.Query().Has("origin") {
			o := r.URL.Query().Get("origin")
			v := engine.Evaluate(o)
			resp.Verdict = &v
			resp.Headers = engine.Headers(o)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

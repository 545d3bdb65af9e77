package cors

import (
	"net/http"

	"github.com/nadavyigal/originguard/internal/policy"
)

// Response is a synthesized preflight response.
type Response struct {
	Status  int
	Header  http.Header
	Verdict policy.Verdict
}

// CORSResponse validates requestOrigin (emitting a violation event when
// monitoring is on) and returns 200 with the full header set when it is
// allowed, or 403 carrying only Vary: Origin otherwise.
func (e *Engine) CORSResponse(requestOrigin string) Response {
	snap := e.source.Snapshot()
	v := e.validate(requestOrigin, snap)
	if !v.Allowed() {
		h := make(http.Header, 1)
		h.Set(HeaderVary, HeaderOrigin)
		return Response{Status: http.StatusForbidden, Header: h, Verdict: v}
	}
	return Response{
		Status:  http.StatusOK,
		Header:  buildHeaders(allowedOrigin(v, snap)),
		Verdict: v,
	}
}

// Write copies the response headers to w and writes the status line.
// Rejections get a generic JSON body that does not say why.
func (r Response) Write(w http.ResponseWriter) {
	for k, vs := range r.Header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	if r.Status == http.StatusForbidden {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(r.Status)
		_, _ = w.Write([]byte(`{"error":"forbidden"}` + "\n"))
		return
	}
	w.WriteHeader(r.Status)
}

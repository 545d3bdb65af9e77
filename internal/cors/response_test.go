package cors

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCORSResponse_ScenarioD(t *testing.T) {
	e := newTestEngine(map[string]string{"ENV": "production", "ALLOWED_ORIGINS": "https://app.example.com"})

	ok := e.CORSResponse("https://app.example.com")
	if ok.Status != http.StatusOK {
		t.Errorf("status = %d, want 200", ok.Status)
	}
	if got := ok.Header.Get(HeaderAllowOrigin); got != "https://app.example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
	if !ok.Verdict.Allowed() {
		t.Errorf("Verdict = %+v, want allowed", ok.Verdict)
	}

	denied := e.CORSResponse("https://evil.com")
	if denied.Status != http.StatusForbidden {
		t.Errorf("status = %d, want 403", denied.Status)
	}
	for _, h := range []string{HeaderAllowOrigin, HeaderAllowCredentials, HeaderAllowMethods, HeaderAllowHeaders, HeaderMaxAge} {
		if _, present := denied.Header[h]; present {
			t.Errorf("403 response carries permissive header %s", h)
		}
	}
	if denied.Header.Get(HeaderVary) != HeaderOrigin {
		t.Error("403 response missing Vary: Origin")
	}
}

func TestResponse_Write(t *testing.T) {
	e := newTestEngine(map[string]string{"ENV": "production", "ALLOWED_ORIGINS": "https://app.example.com"})

	rec := httptest.NewRecorder()
	e.CORSResponse("https://app.example.com").Write(rec)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("preflight body = %q, want empty", rec.Body.String())
	}
	if got := rec.Header().Get(HeaderAllowCredentials); got != "true" {
		t.Errorf("Access-Control-Allow-Credentials = %q", got)
	}

	rec = httptest.NewRecorder()
	e.CORSResponse("javascript:alert(1)").Write(rec)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	body := rec.Body.String()
	if strings.TrimSpace(body) != `{"error":"forbidden"}` {
		t.Errorf("body = %q", body)
	}
	for _, leak := range []string{"MALICIOUS", "javascript", "UNKNOWN"} {
		if strings.Contains(body, leak) {
			t.Errorf("403 body leaks rejection detail %q", leak)
		}
	}
}

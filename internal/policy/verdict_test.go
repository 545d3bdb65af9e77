package policy

import (
	"encoding/json"
	"testing"
)

func TestVerdict(t *testing.T) {
	allowed := Allow("https://app.example.com")
	if !allowed.Allowed() || allowed.Violation() != ViolationNone {
		t.Errorf("Allow() = %+v, want allowed without violation", allowed)
	}

	rejected := Reject("https://evil.com", ViolationMaliciousPattern)
	if rejected.Allowed() || rejected.Violation() != ViolationMaliciousPattern {
		t.Errorf("Reject() = %+v, want MALICIOUS_PATTERN", rejected)
	}

	coerced := Reject("https://evil.com", ViolationNone)
	if coerced.Allowed() || coerced.Violation() != ViolationUnknownOrigin {
		t.Errorf("Reject(ViolationNone) = %+v, want UNKNOWN_ORIGIN", coerced)
	}
}

func TestVerdict_MarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		verdict Verdict
		want    string
	}{
		{
			name:    "allowed",
			verdict: Allow("https://app.example.com"),
			want:    `{"allowed":true,"origin":"https://app.example.com"}`,
		},
		{
			name:    "absent origin",
			verdict: Reject(AbsentOrigin, ViolationUnknownOrigin),
			want:    `{"allowed":false,"origin":"null","violationType":"UNKNOWN_ORIGIN"}`,
		},
		{
			name:    "malicious",
			verdict: Reject("javascript:alert(1)", ViolationMaliciousPattern),
			want:    `{"allowed":false,"origin":"javascript:alert(1)","violationType":"MALICIOUS_PATTERN"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.verdict)
			if err != nil {
				t.Fatalf("json.Marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("json = %s, want %s", data, tt.want)
			}
		})
	}
}

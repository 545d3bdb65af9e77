package origin

import (
	"strings"
	"testing"
)

func TestLintPattern(t *testing.T) {
	tests := []struct {
		pattern string
		want    []string // substrings, one per expected warning
	}{
		{"https://*.example.com", nil},
		{"https://*-preview.example.com", nil},
		{"https://app.example.com", nil},
		{"https://*.vercel.app", []string{`public suffix "vercel.app"`}},
		{"https://preview-*.vercel.app", []string{`public suffix "vercel.app"`}},
		{"https://*.com", []string{`public suffix "com"`}},
		{"http://*.localhost", []string{"plaintext"}},
		{"http://localhost:*", []string{"plaintext"}},
		{"https://*.*", []string{"arbitrary hosts"}},
		{"https://[bad", []string{"invalid origin pattern"}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := LintPattern(tt.pattern)
			if len(got) != len(tt.want) {
				t.Fatalf("LintPattern(%q) = %q, want %d warnings", tt.pattern, got, len(tt.want))
			}
			for i, sub := range tt.want {
				if !strings.Contains(got[i], sub) {
					t.Errorf("warning[%d] = %q, want substring %q", i, got[i], sub)
				}
			}
		})
	}
}

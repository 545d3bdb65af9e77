package origin

import (
	"fmt"
	"testing"

	"github.com/nadavyigal/originguard/internal/policy"
)

func BenchmarkValidate_LargeAllowList(b *testing.B) {
	exact := make([]string, 0, 500)
	patterns := make([]string, 0, 500)
	for i := range 500 {
		exact = append(exact, fmt.Sprintf("https://app-%d.example.com", i))
		patterns = append(patterns, fmt.Sprintf("https://preview-*.team-%d.example.com", i))
	}
	snap := policy.NewSnapshot(policy.TierStandard, policy.EnvStaging, exact, patterns)

	cases := map[string]string{
		"exact last":   "https://app-499.example.com",
		"pattern last": "https://preview-x.team-499.example.com",
		"unknown":      "https://evil.com",
		"malicious":    "javascript:alert(1)",
	}
	for name, o := range cases {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				Validate(o, snap)
			}
		})
	}
}

package policy

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSnapshot_ListsAreCopies(t *testing.T) {
	exact := []string{"https://app.example.com"}
	s := NewSnapshot(TierStrict, EnvProduction, exact, nil)

	exact[0] = "https://evil.com"
	if got := s.ExactOrigins(); got[0] != "https://app.example.com" {
		t.Fatalf("snapshot aliased caller slice: %v", got)
	}

	out := s.ExactOrigins()
	out[0] = "https://evil.com"
	if !s.IsExact("https://app.example.com") {
		t.Fatal("snapshot aliased accessor result")
	}
}

func TestSnapshot_IsExact(t *testing.T) {
	s := NewSnapshot(TierStrict, EnvProduction, []string{"https://app.example.com"}, nil)
	s.LegacyOrigin = "https://legacy.example.com"

	tests := []struct {
		origin string
		want   bool
	}{
		{"https://app.example.com", true},
		{"https://legacy.example.com", true},
		{"http://app.example.com", false},
		{"https://APP.example.com", false},
		{"https://app.example.com:443", false},
		{"https://app.example.com/", false},
	}

	for _, tt := range tests {
		if got := s.IsExact(tt.origin); got != tt.want {
			t.Errorf("IsExact(%q) = %v, want %v", tt.origin, got, tt.want)
		}
	}
}

func TestSnapshot_FallbackOrigin(t *testing.T) {
	tests := []struct {
		name     string
		snapshot Snapshot
		fallback string
		def      string
	}{
		{
			name: "first exact origin wins",
			snapshot: func() Snapshot {
				s := NewSnapshot(TierStrict, EnvProduction, []string{"https://a.example.com", "https://b.example.com"}, nil)
				s.LegacyOrigin = "https://legacy.example.com"
				return s
			}(),
			fallback: "https://a.example.com",
			def:      "https://a.example.com",
		},
		{
			name: "legacy origin when no exact origins",
			snapshot: func() Snapshot {
				s := NewSnapshot(TierStrict, EnvProduction, nil, nil)
				s.LegacyOrigin = "https://legacy.example.com"
				return s
			}(),
			fallback: "https://legacy.example.com",
			def:      "https://legacy.example.com",
		},
		{
			name: "development default origin",
			snapshot: func() Snapshot {
				s := NewSnapshot(TierPermissive, EnvDevelopment, []string{"https://a.example.com"}, nil)
				s.DevelopmentOrigin = "http://localhost:3000"
				return s
			}(),
			fallback: "https://a.example.com",
			def:      "http://localhost:3000",
		},
		{
			name:     "nothing configured in production",
			snapshot: NewSnapshot(TierStrict, EnvProduction, nil, nil),
			fallback: "",
			def:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.snapshot.FallbackOrigin(); got != tt.fallback {
				t.Errorf("FallbackOrigin() = %q, want %q", got, tt.fallback)
			}
			if got := tt.snapshot.DefaultOrigin(); got != tt.def {
				t.Errorf("DefaultOrigin() = %q, want %q", got, tt.def)
			}
		})
	}
}

func TestSnapshot_Summary(t *testing.T) {
	s := NewSnapshot(TierStandard, EnvStaging, []string{"https://app.example.com"}, []string{"https://*.netlify.app"})
	s.MonitoringEnabled = true

	got := s.Summary()
	want := Summary{
		Tier:              TierStandard,
		ExactOrigins:      []string{"https://app.example.com"},
		WildcardPatterns:  []string{"https://*.netlify.app"},
		Environment:       EnvStaging,
		MonitoringEnabled: true,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Summary() = %+v, want %+v", got, want)
	}

	data, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	const wantJSON = `{"tier":"standard","exactOrigins":["https://app.example.com"],"wildcardPatterns":["https://*.netlify.app"],"environment":"staging","monitoringEnabled":true}`
	if string(data) != wantJSON {
		t.Errorf("json = %s, want %s", data, wantJSON)
	}
}

func TestSnapshot_SummaryEmptyLists(t *testing.T) {
	data, err := json.Marshal(NewSnapshot(TierStrict, EnvTest, nil, nil).Summary())
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	const want = `{"tier":"strict","exactOrigins":[],"wildcardPatterns":[],"environment":"test","monitoringEnabled":false}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}

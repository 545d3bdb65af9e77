package policy

import "slices"

// Snapshot is the effective policy for a single evaluation.
// It is built fresh from configuration and never mutated afterwards;
// accessors hand out copies of the list fields.
type Snapshot struct {
	Tier              Tier
	Environment       Environment
	MonitoringEnabled bool

	// LegacyOrigin is the backward-compatible production origin, honored
	// regardless of tier. Empty means absent.
	LegacyOrigin string

	// DevelopmentOrigin is returned as the default allowed origin when no
	// request origin is supplied in development.
	DevelopmentOrigin string

	exactOrigins     []string
	wildcardPatterns []string
}

// NewSnapshot builds a snapshot from already-cleansed origin lists.
// The lists are copied.
func NewSnapshot(tier Tier, env Environment, exact, patterns []string) Snapshot {
	return Snapshot{
		Tier:             tier,
		Environment:      env,
		exactOrigins:     slices.Clone(exact),
		wildcardPatterns: slices.Clone(patterns),
	}
}

// ExactOrigins returns a copy of the exact allow-list, in configured order.
func (s Snapshot) ExactOrigins() []string {
	return slices.Clone(s.exactOrigins)
}

// WildcardPatterns returns a copy of the wildcard patterns, in configured order.
func (s Snapshot) WildcardPatterns() []string {
	return slices.Clone(s.wildcardPatterns)
}

// IsExact reports whether origin equals an exact allow-list entry or the
// legacy origin. Comparison is byte-wise.
func (s Snapshot) IsExact(origin string) bool {
	if s.LegacyOrigin != "" && origin == s.LegacyOrigin {
		return true
	}
	return slices.Contains(s.exactOrigins, origin)
}

// FallbackOrigin is the deterministic Access-Control-Allow-Origin value used
// when a request origin is rejected: the first exact origin, else the legacy
// origin, else (in development only) the development origin. It may be empty.
func (s Snapshot) FallbackOrigin() string {
	if len(s.exactOrigins) > 0 {
		return s.exactOrigins[0]
	}
	if s.LegacyOrigin != "" {
		return s.LegacyOrigin
	}
	if s.Environment == EnvDevelopment {
		return s.DevelopmentOrigin
	}
	return ""
}

// DefaultOrigin is the allowed origin for callers that supply no request
// origin at all.
func (s Snapshot) DefaultOrigin() string {
	if s.Environment == EnvDevelopment && s.DevelopmentOrigin != "" {
		return s.DevelopmentOrigin
	}
	return s.FallbackOrigin()
}

// ToleratesPrivateNetworks reports whether loopback and private network
// origins are exempt from the malicious-pattern check.
func (s Snapshot) ToleratesPrivateNetworks() bool {
	return s.Tier == TierPermissive || s.Environment == EnvDevelopment
}

// Summary is a read-only diagnostic view of a snapshot.
type Summary struct {
	Tier              Tier        `json:"tier" yaml:"tier"`
	ExactOrigins      []string    `json:"exactOrigins" yaml:"exactOrigins"`
	WildcardPatterns  []string    `json:"wildcardPatterns" yaml:"wildcardPatterns"`
	Environment       Environment `json:"environment" yaml:"environment"`
	MonitoringEnabled bool        `json:"monitoringEnabled" yaml:"monitoringEnabled"`
}

// Summary returns the diagnostic view of s.
func (s Snapshot) Summary() Summary {
	exact := s.ExactOrigins()
	if exact == nil {
		exact = []string{}
	}
	patterns := s.WildcardPatterns()
	if patterns == nil {
		patterns = []string{}
	}
	return Summary{
		Tier:              s.Tier,
		ExactOrigins:      exact,
		WildcardPatterns:  patterns,
		Environment:       s.Environment,
		MonitoringEnabled: s.MonitoringEnabled,
	}
}

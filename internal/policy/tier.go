// Package policy holds the immutable policy model consulted on every
// cross-origin request: security tiers, deployment environments, the
// per-evaluation snapshot, and validation verdicts.
package policy

import (
	"fmt"
	"strings"
)

// Tier is a graduated security posture. Higher tier = more permissive.
type Tier uint8

const (
	TierStrict     Tier = iota // exact origins only
	TierStandard               // exact origins + wildcard patterns
	TierPermissive             // patterns + loopback/private network origins
)

// String returns the configuration label for the tier.
func (t Tier) String() string {
	switch t {
	case TierStrict:
		return "strict"
	case TierStandard:
		return "standard"
	case TierPermissive:
		return "permissive"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// ParseTier parses a configuration label. Matching is case-insensitive
// and ignores surrounding whitespace.
func ParseTier(s string) (Tier, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return TierStrict, true
	case "standard":
		return TierStandard, true
	case "permissive":
		return TierPermissive, true
	default:
		return TierStrict, false
	}
}

// DefaultTier maps a deployment environment to its default tier.
// production→strict, staging→standard, development→permissive, test→strict.
func DefaultTier(env Environment) Tier {
	switch env {
	case EnvDevelopment:
		return TierPermissive
	case EnvStaging:
		return TierStandard
	default: // production, test
		return TierStrict
	}
}

// MatchesPatterns reports whether wildcard pattern matching is active.
func (t Tier) MatchesPatterns() bool {
	return t > TierStrict
}

// MarshalText implements encoding.TextMarshaler.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

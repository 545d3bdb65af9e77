package origin

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/nadavyigal/originguard/internal/policy"
)

// Validator applies the origin rules in a fixed order; the first rule
// that decides wins:
//
//  1. absent or blank origin: UNKNOWN_ORIGIN
//  2. non-http(s) scheme, or private/loopback IP outside a tolerant
//     policy: MALICIOUS_PATTERN
//  3. exact allow-list or legacy origin: allowed
//  4. wildcard patterns, unless the tier is strict: allowed
//  5. otherwise: UNKNOWN_ORIGIN
//
// A Validator holds no per-request state and is safe for concurrent use.
type Validator struct {
	// Logger receives invalid-pattern warnings. Nil discards them.
	Logger *slog.Logger

	// OnInvalidPattern, if set, is called for every pattern that fails to
	// compile during a validation.
	OnInvalidPattern func(pattern string, err error)
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// Validate validates origin with a zero Validator.
func Validate(origin string, snap policy.Snapshot) policy.Verdict {
	var v Validator
	return v.Validate(origin, snap)
}

// Validate returns the verdict for origin under snap. It never panics and
// always returns a verdict.
func (v *Validator) Validate(origin string, snap policy.Snapshot) policy.Verdict {
	o := strings.TrimSpace(origin)
	if o == "" {
		return policy.Reject(policy.AbsentOrigin, policy.ViolationUnknownOrigin)
	}

	if isMalicious(o, snap.ToleratesPrivateNetworks()) {
		return policy.Reject(o, policy.ViolationMaliciousPattern)
	}

	// Nothing this long or containing bytes invalid in a header field can
	// be a serialized origin, and it must never be echoed back.
	if len(o) > maxOriginLen || !httpguts.ValidHeaderFieldValue(o) {
		return policy.Reject(o, policy.ViolationUnknownOrigin)
	}

	if snap.IsExact(o) {
		return policy.Allow(o)
	}

	if snap.Tier.MatchesPatterns() {
		for _, p := range snap.WildcardPatterns() {
			m, err := compileCached(p)
			if err != nil {
				v.invalidPattern(p, err, snap.Environment)
				continue
			}
			if m.Match(o) {
				return policy.Allow(o)
			}
		}
	}

	return policy.Reject(o, policy.ViolationUnknownOrigin)
}

func (v *Validator) invalidPattern(pattern string, err error, env policy.Environment) {
	if v.OnInvalidPattern != nil {
		v.OnInvalidPattern(pattern, err)
	}
	logger := v.Logger
	if logger == nil {
		logger = discard
	}
	level := slog.LevelDebug
	if env == policy.EnvDevelopment {
		level = slog.LevelWarn
	}
	logger.Log(context.Background(), level, "invalid origin pattern",
		slog.String("pattern", pattern),
		slog.String("violation_type", policy.ViolationInvalidPattern.String()),
		slog.Any("error", err),
	)
}

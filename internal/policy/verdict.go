package policy

import "encoding/json"

// ViolationKind classifies a rejected validation.
type ViolationKind uint8

const (
	ViolationNone ViolationKind = iota
	ViolationUnknownOrigin
	ViolationMaliciousPattern
	ViolationInvalidPattern
)

// String returns the wire name of the violation kind.
func (k ViolationKind) String() string {
	switch k {
	case ViolationUnknownOrigin:
		return "UNKNOWN_ORIGIN"
	case ViolationMaliciousPattern:
		return "MALICIOUS_PATTERN"
	case ViolationInvalidPattern:
		return "INVALID_PATTERN"
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k ViolationKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// AbsentOrigin is the token reported for absent or blank origins.
const AbsentOrigin = "null"

// Verdict is the outcome of validating one origin. A verdict is either
// allowed (no violation) or rejected with exactly one violation kind;
// the constructors are the only way to build one.
type Verdict struct {
	origin    string
	violation ViolationKind
}

// Allow returns an allowed verdict for origin.
func Allow(origin string) Verdict {
	return Verdict{origin: origin}
}

// Reject returns a rejected verdict. A ViolationNone kind is coerced to
// ViolationUnknownOrigin so that a rejection always carries a reason.
func Reject(origin string, kind ViolationKind) Verdict {
	if kind == ViolationNone {
		kind = ViolationUnknownOrigin
	}
	return Verdict{origin: origin, violation: kind}
}

// Allowed reports whether the origin is permitted.
func (v Verdict) Allowed() bool { return v.violation == ViolationNone }

// Origin returns the validated origin, or AbsentOrigin for blank input.
func (v Verdict) Origin() string { return v.origin }

// Violation returns the violation kind; ViolationNone when allowed.
func (v Verdict) Violation() ViolationKind { return v.violation }

type verdictJSON struct {
	Allowed       bool   `json:"allowed"`
	Origin        string `json:"origin"`
	ViolationType string `json:"violationType,omitempty"`
}

// MarshalJSON renders {allowed, origin, violationType}.
func (v Verdict) MarshalJSON() ([]byte, error) {
	return json.Marshal(verdictJSON{
		Allowed:       v.Allowed(),
		Origin:        v.origin,
		ViolationType: v.violation.String(),
	})
}

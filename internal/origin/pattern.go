// Package origin decides whether a request's Origin header is allowed
// under a policy snapshot.
package origin

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gobwas/glob"
)

const (
	schemeHostSep = "://"
	wildcard      = "*"

	// maxHostLen is the maximum length of an (absolute) domain name.
	maxHostLen = 253
	// maxSchemeLen is the maximum tolerated length for schemes.
	maxSchemeLen = 64
	// maxPortLen is the maximum length of a port's decimal representation.
	maxPortLen = len("65535")
	// maxOriginLen is the maximum length of an origin.
	maxOriginLen = maxSchemeLen + len(schemeHostSep) + maxHostLen + 1 + maxPortLen
	// maxPatternLen bounds pattern length; "*" stands for at least one byte.
	maxPatternLen = maxOriginLen

	// maxCachedPatterns bounds the compiled-pattern cache.
	maxCachedPatterns = 1024
)

// patternSeparators stop a "*" from matching across a DNS label, a port
// or a path boundary.
var patternSeparators = []rune{'.', ':', '/'}

// reservedGlobChars are glob metacharacters other than "*". None of them
// can appear in a serialized origin.
const reservedGlobChars = `?[]{}\!`

// PatternError reports a wildcard pattern that cannot be compiled.
type PatternError struct {
	Pattern string
	Reason  string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid origin pattern %q: %s", e.Pattern, e.Reason)
}

// Matcher is a compiled wildcard origin pattern.
type Matcher struct {
	raw  string
	glob glob.Glob
}

// Match reports whether origin matches the whole pattern.
func (m *Matcher) Match(origin string) bool {
	return m.glob.Match(origin)
}

// String returns the pattern as configured.
func (m *Matcher) String() string {
	return m.raw
}

// CompilePattern compiles raw into an anchored matcher in which each "*"
// stands for one run of characters free of '.', ':' and '/'.
// It returns a *PatternError when raw is not an acceptable pattern.
func CompilePattern(raw string) (*Matcher, error) {
	if len(raw) > maxPatternLen {
		return nil, &PatternError{Pattern: raw, Reason: "too long"}
	}
	if i := strings.IndexAny(raw, reservedGlobChars); i >= 0 {
		return nil, &PatternError{Pattern: raw, Reason: fmt.Sprintf("unsupported character %q", raw[i])}
	}
	if strings.Contains(raw, wildcard+wildcard) {
		return nil, &PatternError{Pattern: raw, Reason: "consecutive wildcards"}
	}
	if strings.ContainsFunc(raw, isSpaceOrControl) {
		return nil, &PatternError{Pattern: raw, Reason: "whitespace or control character"}
	}

	scheme, hostPort, ok := strings.Cut(raw, schemeHostSep)
	if !ok {
		return nil, &PatternError{Pattern: raw, Reason: "missing scheme"}
	}
	if scheme != "http" && scheme != "https" {
		return nil, &PatternError{Pattern: raw, Reason: "scheme must be http or https"}
	}
	if hostPort == "" || hostPort == wildcard {
		return nil, &PatternError{Pattern: raw, Reason: "missing host"}
	}
	if strings.Contains(hostPort, "/") {
		return nil, &PatternError{Pattern: raw, Reason: "must not contain a path"}
	}

	g, err := glob.Compile(raw, patternSeparators...)
	if err != nil {
		return nil, &PatternError{Pattern: raw, Reason: err.Error()}
	}
	return &Matcher{raw: raw, glob: g}, nil
}

func isSpaceOrControl(r rune) bool {
	return r <= ' ' || r == 0x7f
}

type compiled struct {
	m   *Matcher
	err error
}

// patternCache memoizes compilation results by raw pattern. Entries are
// pure functions of their key, so a stale entry cannot exist.
var (
	patternCache     sync.Map // string -> compiled
	patternCacheSize atomic.Int64
)

// compileCached is CompilePattern backed by patternCache.
func compileCached(raw string) (*Matcher, error) {
	if v, ok := patternCache.Load(raw); ok {
		c := v.(compiled)
		return c.m, c.err
	}
	m, err := CompilePattern(raw)
	if patternCacheSize.Load() < maxCachedPatterns {
		if _, loaded := patternCache.LoadOrStore(raw, compiled{m: m, err: err}); !loaded {
			patternCacheSize.Add(1)
		}
	}
	return m, err
}

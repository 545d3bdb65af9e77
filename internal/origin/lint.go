package origin

import (
	"fmt"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// LintPattern returns operator-facing warnings for raw. A pattern that
// fails to compile yields its compile error as the only warning.
func LintPattern(raw string) []string {
	if _, err := CompilePattern(raw); err != nil {
		return []string{err.Error()}
	}

	var warnings []string
	scheme, hostPort, _ := strings.Cut(raw, schemeHostSep)
	if scheme == "http" {
		warnings = append(warnings, fmt.Sprintf("pattern %q allows plaintext http origins", raw))
	}

	host := hostPort
	if i := strings.LastIndexByte(host, ':'); i >= 0 && !strings.HasSuffix(host, "]") {
		host = host[:i]
	}
	i := strings.LastIndex(host, wildcard)
	if i < 0 {
		return warnings
	}

	// The fixed labels to the right of the last wildcard.
	suffix := host[i+1:]
	if j := strings.IndexByte(suffix, '.'); j >= 0 {
		suffix = suffix[j+1:]
	} else {
		suffix = ""
	}
	if suffix == "" {
		return append(warnings, fmt.Sprintf("pattern %q matches arbitrary hosts", raw))
	}
	// Unlisted single-label suffixes such as "localhost" fall under the
	// implicit "*" rule and are not worth a warning.
	if ps, icann := publicsuffix.PublicSuffix(suffix); ps == suffix && (icann || strings.Contains(suffix, ".")) {
		warnings = append(warnings, fmt.Sprintf("pattern %q spans public suffix %q: anyone can register a matching origin", raw, suffix))
	}
	return warnings
}

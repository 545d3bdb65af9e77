package origin

import (
	"net/netip"
	"strings"
)

// privatePrefixes are the loopback and private ranges an origin host may
// not fall into unless the policy tolerates private networks.
var privatePrefixes = []netip.Prefix{
	netip.MustParsePrefix("127.0.0.0/8"),
	netip.MustParsePrefix("::1/128"),
	netip.MustParsePrefix("10.0.0.0/8"),
	netip.MustParsePrefix("172.16.0.0/12"),
	netip.MustParsePrefix("192.168.0.0/16"),
}

// isMalicious reports whether origin uses a scheme other than http(s) or,
// unless tolerated, names a loopback or private network address.
func isMalicious(origin string, toleratePrivate bool) bool {
	scheme, rest, ok := cutScheme(origin)
	if !ok {
		return false
	}
	switch strings.ToLower(scheme) {
	case "http", "https":
	default:
		// javascript:, data:, file:, ftp:, vbscript: and anything else.
		return true
	}
	if toleratePrivate {
		return false
	}
	return isPrivateHost(hostOf(rest))
}

// cutScheme splits a leading RFC 3986 scheme off s.
// ok is false when s does not start with a syntactically valid scheme.
func cutScheme(s string) (scheme, rest string, ok bool) {
	i := strings.IndexByte(s, ':')
	if i <= 0 || i > maxSchemeLen {
		return "", s, false
	}
	scheme = s[:i]
	if !isAlpha(scheme[0]) {
		return "", s, false
	}
	for j := 1; j < len(scheme); j++ {
		c := scheme[j]
		if !isAlpha(c) && !('0' <= c && c <= '9') && c != '+' && c != '-' && c != '.' {
			return "", s, false
		}
	}
	return scheme, s[i+1:], true
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// hostOf extracts the host from the part of an origin following the
// scheme's colon. Userinfo, port, path, query and fragment are dropped;
// brackets around IPv6 literals are removed.
func hostOf(rest string) string {
	rest = strings.TrimPrefix(rest, "//")
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		rest = rest[:i]
	}
	if i := strings.LastIndexByte(rest, '@'); i >= 0 {
		rest = rest[i+1:]
	}
	if strings.HasPrefix(rest, "[") {
		if end := strings.IndexByte(rest, ']'); end > 0 {
			return rest[1:end]
		}
		return rest[1:]
	}
	if i := strings.LastIndexByte(rest, ':'); i >= 0 {
		rest = rest[:i]
	}
	return rest
}

// isPrivateHost reports whether host is an IP literal inside one of the
// private or loopback ranges. Domain names are never private here.
func isPrivateHost(host string) bool {
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	addr = addr.WithZone("").Unmap()
	for _, p := range privatePrefixes {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

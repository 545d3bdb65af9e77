package config

import "github.com/nadavyigal/originguard/internal/policy"

// Loader resolves a fresh snapshot on every call so that configuration
// changes are observed without a restart-order dependency.
type Loader struct {
	lookup LookupFunc
}

// NewLoader returns a Loader reading through lookup (os.Getenv when nil).
func NewLoader(lookup LookupFunc) *Loader {
	return &Loader{lookup: lookup}
}

// Snapshot implements cors.SnapshotSource.
func (l *Loader) Snapshot() policy.Snapshot {
	return FromLookup(l.lookup).Snapshot()
}

// Static is a fixed snapshot source, for callers that resolve configuration
// once per process load.
type Static policy.Snapshot

// Snapshot implements cors.SnapshotSource.
func (s Static) Snapshot() policy.Snapshot {
	return policy.Snapshot(s)
}

// Package config resolves the CORS policy from process configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nadavyigal/originguard/internal/origin"
	"github.com/nadavyigal/originguard/internal/policy"
)

// Environment variable names.
const (
	EnvAllowedOrigins   = "ALLOWED_ORIGINS"
	EnvOriginPatterns   = "ALLOWED_ORIGIN_PATTERNS"
	EnvSecurityLevel    = "CORS_SECURITY_LEVEL"
	EnvEnvironment      = "ENV"
	EnvNodeEnvironment  = "NODE_ENV"
	EnvProductionDomain = "PRODUCTION_DOMAIN"
	EnvMonitoring       = "CORS_MONITORING_ENABLED"
	EnvDevOrigin        = "DEV_ORIGIN"
	EnvPort             = "PORT"
	EnvLogLevel         = "LOG_LEVEL"
	EnvHSTS             = "ENABLE_HSTS"
)

// DefaultDevOrigin is the default allowed origin in development.
const DefaultDevOrigin = "http://localhost:3000"

// LookupFunc returns the value of a configuration key, or "" when unset.
type LookupFunc func(key string) string

// Config holds all application configuration
type Config struct {
	// Environment name as configured (e.g. "production"); see Environment()
	Env string

	// Exact allowed origins, CSV-parsed (order preserved, blanks dropped)
	AllowedOrigins []string

	// Wildcard origin patterns, CSV-parsed
	OriginPatterns []string

	// Explicit tier override; empty means derive from environment
	SecurityLevel string

	// Legacy single fallback domain (backward compatibility)
	ProductionDomain string

	// Emit CORS_VIOLATION events (default: false)
	MonitoringEnabled bool

	// Default origin in development (default: http://localhost:3000)
	DevOrigin string

	// Server port (default: 8080)
	Port string

	// Log level: info, debug, warn, error (default: info)
	LogLevel string

	// Enable HSTS - default true in production only
	EnableHSTS bool
}

// FromEnv reads configuration from environment variables
func FromEnv() Config {
	return FromLookup(os.Getenv)
}

// FromLookup reads configuration through lookup. It never fails: malformed
// lists degrade to fewer entries and unknown enum values are reported by
// Validate.
func FromLookup(lookup LookupFunc) Config {
	if lookup == nil {
		lookup = os.Getenv
	}
	cfg := Config{}

	cfg.Env = getEnv(lookup, EnvEnvironment, "")
	if cfg.Env == "" {
		cfg.Env = getEnv(lookup, EnvNodeEnvironment, "development")
	}

	cfg.AllowedOrigins = parseCSV(lookup(EnvAllowedOrigins))
	cfg.OriginPatterns = parseCSV(lookup(EnvOriginPatterns))
	cfg.SecurityLevel = strings.TrimSpace(lookup(EnvSecurityLevel))
	cfg.ProductionDomain = strings.TrimSpace(lookup(EnvProductionDomain))
	cfg.MonitoringEnabled = parseBool(lookup, EnvMonitoring, false)
	cfg.DevOrigin = strings.TrimSpace(getEnv(lookup, EnvDevOrigin, DefaultDevOrigin))

	cfg.Port = getEnv(lookup, EnvPort, "8080")
	cfg.LogLevel = strings.ToLower(getEnv(lookup, EnvLogLevel, "info"))

	env, _ := policy.ParseEnvironment(cfg.Env)
	cfg.EnableHSTS = parseBool(lookup, EnvHSTS, env == policy.EnvProduction)

	return cfg
}

// Environment returns the resolved deployment environment. Unknown names
// resolve to production.
func (c Config) Environment() policy.Environment {
	env, _ := policy.ParseEnvironment(c.Env)
	return env
}

// Tier returns the explicit override when it names a tier, otherwise the
// environment default.
func (c Config) Tier() policy.Tier {
	if tier, ok := policy.ParseTier(c.SecurityLevel); ok {
		return tier
	}
	return policy.DefaultTier(c.Environment())
}

// LegacyOrigin returns the production domain as an origin. A bare host is
// given the https scheme; an empty domain yields "".
func (c Config) LegacyOrigin() string {
	d := strings.TrimSpace(c.ProductionDomain)
	if d == "" {
		return ""
	}
	if !strings.Contains(d, "://") {
		d = "https://" + d
	}
	return strings.TrimSuffix(d, "/")
}

// Snapshot resolves the effective policy.
func (c Config) Snapshot() policy.Snapshot {
	s := policy.NewSnapshot(c.Tier(), c.Environment(), c.AllowedOrigins, c.OriginPatterns)
	s.MonitoringEnabled = c.MonitoringEnabled
	s.LegacyOrigin = c.LegacyOrigin()
	s.DevelopmentOrigin = c.DevOrigin
	return s
}

// Validate reports operator misconfiguration. Resolution itself never
// fails; Validate exists so that startup and tooling can surface problems.
func (c *Config) Validate() error {
	// Validate environment value
	if _, ok := policy.ParseEnvironment(c.Env); !ok {
		return fmt.Errorf("%s must be 'development', 'staging', 'production', or 'test' (got %q)", EnvEnvironment, c.Env)
	}

	if c.SecurityLevel != "" {
		if _, ok := policy.ParseTier(c.SecurityLevel); !ok {
			return fmt.Errorf("%s must be 'strict', 'standard', or 'permissive' (got %q)", EnvSecurityLevel, c.SecurityLevel)
		}
	}

	for _, o := range c.AllowedOrigins {
		if !strings.HasPrefix(o, "https://") && !strings.HasPrefix(o, "http://") {
			return fmt.Errorf("%s entry %q must start with http:// or https://", EnvAllowedOrigins, o)
		}
		if strings.HasSuffix(o, "/") {
			return fmt.Errorf("%s entry %q must not end with '/'", EnvAllowedOrigins, o)
		}
	}

	for _, p := range c.OriginPatterns {
		if _, err := origin.CompilePattern(p); err != nil {
			return fmt.Errorf("%s: %w", EnvOriginPatterns, err)
		}
	}

	// Validate PORT format and range
	if port, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("%s must be a valid number 1-65535 (got %q)", EnvPort, c.Port)
	} else if port < 1 || port > 65535 {
		return fmt.Errorf("%s must be 1-65535 (got %q)", EnvPort, c.Port)
	}

	// Validate log level
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("%s must be 'debug', 'info', 'warn', or 'error' (got %q)", EnvLogLevel, c.LogLevel)
	}

	return nil
}

// Helper functions

// getEnv returns the value of a configuration key or a default value
func getEnv(lookup LookupFunc, key, def string) string {
	if value := lookup(key); value != "" {
		return value
	}
	return def
}

// parseCSV splits a comma-separated value into a slice.
// It trims spaces, drops empty values and preserves order. Case is kept:
// origins compare case-sensitively.
func parseCSV(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))

	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// parseBool parses a boolean configuration key with a default
func parseBool(lookup LookupFunc, key string, def bool) bool {
	value := strings.TrimSpace(lookup(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return def
	}
	return parsed
}

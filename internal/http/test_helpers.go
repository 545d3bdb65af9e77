package httpx

import (
	"github.com/nadavyigal/originguard/internal/config"
)

// newTestConfig creates a valid staging configuration with one exact origin
// and one wildcard pattern.
func newTestConfig() config.Config {
	return config.Config{
		Env:            "staging",
		AllowedOrigins: []string{"https://app.example.com"},
		OriginPatterns: []string{"https://*.netlify.app"},
		DevOrigin:      config.DefaultDevOrigin,
		Port:           "8080",
		LogLevel:       "info",
		EnableHSTS:     false,
	}
}

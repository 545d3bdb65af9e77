package policy

import "strings"

// Environment is the deployment environment the process runs in.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "production"
	EnvTest        Environment = "test"
)

// ParseEnvironment parses an environment name. "dev" and "prod" are
// accepted as aliases. Unknown names resolve to production with ok=false.
func ParseEnvironment(s string) (Environment, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "development", "dev":
		return EnvDevelopment, true
	case "staging":
		return EnvStaging, true
	case "production", "prod":
		return EnvProduction, true
	case "test":
		return EnvTest, true
	default:
		return EnvProduction, false
	}
}

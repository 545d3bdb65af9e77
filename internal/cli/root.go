// Package cli implements corsctl, the operator tool for inspecting the CORS
// policy resolved from the current environment.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nadavyigal/originguard/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "corsctl",
	Short: "Inspect and test the CORS origin policy",
	Long: "Resolves the CORS policy from the same environment variables the server reads\n" +
		"(ALLOWED_ORIGINS, ALLOWED_ORIGIN_PATTERNS, CORS_SECURITY_LEVEL, ENV, ...)\n" +
		"and evaluates origins against it without emitting monitoring events.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// loadConfig is the configuration source of every command. Tests replace it.
var loadConfig = config.FromEnv

// exitError carries a non-zero exit status for an outcome that is not a
// usage or runtime error, such as a rejected origin.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

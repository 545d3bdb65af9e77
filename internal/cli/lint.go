package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nadavyigal/originguard/internal/origin"
	"github.com/nadavyigal/originguard/internal/policy"
)

var lintStrict bool

func init() {
	rootCmd.AddCommand(lintCmd)
	lintCmd.Flags().BoolVar(&lintStrict, "strict", false, "Treat warnings as failures")
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate the configuration and flag risky origin patterns",
	Long: "Runs configuration validation, then reviews every wildcard pattern and\n" +
		"exact origin for constructs that admit more origins than intended.\n\n" +
		"Exit code 1 if validation fails (or, with --strict, on any warning).",
	Args: cobra.NoArgs,
	RunE: runLint,
}

func runLint(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	out := cmd.OutOrStdout()

	failed := false
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		failed = true
	}

	warnings := 0
	for _, p := range cfg.OriginPatterns {
		for _, w := range origin.LintPattern(p) {
			fmt.Fprintf(out, "warning: %s\n", w)
			warnings++
		}
	}
	if cfg.Environment() == policy.EnvProduction {
		for _, o := range cfg.AllowedOrigins {
			if strings.HasPrefix(o, "http://") {
				fmt.Fprintf(out, "warning: origin %q: plaintext origin allowed in production\n", o)
				warnings++
			}
		}
	}
	if len(cfg.OriginPatterns) > 0 && !cfg.Tier().MatchesPatterns() {
		fmt.Fprintf(out, "warning: %d pattern(s) configured but tier %s ignores patterns\n", len(cfg.OriginPatterns), cfg.Tier())
		warnings++
	}

	if !failed && warnings == 0 {
		fmt.Fprintln(out, "ok")
	}
	if failed || (lintStrict && warnings > 0) {
		return &exitError{code: 1}
	}
	return nil
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nadavyigal/originguard/internal/config"
	"github.com/nadavyigal/originguard/internal/cors"
	"github.com/nadavyigal/originguard/internal/policy"
)

var checkFormat string

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", "text", "Output format (text|json)")
}

var checkCmd = &cobra.Command{
	Use:   "check <origin>...",
	Short: "Evaluate origins against the configured policy",
	Long: "Validates each origin against the policy resolved from the environment and\n" +
		"prints the verdict with the Access-Control-Allow-Origin value a response\n" +
		"would carry.\n\n" +
		"Exit code 0 if all origins are allowed, 1 if any is rejected.",
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

// checkResult is one line of check output.
type checkResult struct {
	Verdict     policy.Verdict `json:"verdict"`
	AllowOrigin string         `json:"allowOrigin"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	if checkFormat != "text" && checkFormat != "json" {
		return fmt.Errorf("unknown format %q (want text or json)", checkFormat)
	}

	cfg := loadConfig()
	engine := cors.NewEngine(config.Static(cfg.Snapshot()))

	results := make([]checkResult, 0, len(args))
	rejected := 0
	for _, o := range args {
		v := engine.Evaluate(o)
		if !v.Allowed() {
			rejected++
		}
		results = append(results, checkResult{
			Verdict:     v,
			AllowOrigin: engine.ResolveAllowedOrigin(o),
		})
	}

	out := cmd.OutOrStdout()
	switch checkFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	default:
		if err := formatCheckText(out, results); err != nil {
			return err
		}
	}

	if rejected > 0 {
		return &exitError{code: 1}
	}
	return nil
}

func formatCheckText(w io.Writer, results []checkResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range results {
		status, reason := "ALLOW", "-"
		if !r.Verdict.Allowed() {
			status, reason = "DENY", r.Verdict.Violation().String()
		}
		allow := r.AllowOrigin
		if allow == "" {
			allow = "(none)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", status, r.Verdict.Origin(), reason, allow)
	}
	return tw.Flush()
}

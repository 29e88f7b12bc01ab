package cmd

import (
	"fmt"
	"net/url"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/user/aiscan/pkg/config"
	"github.com/user/aiscan/pkg/engine"
	"github.com/user/aiscan/pkg/fixer"
	"github.com/user/aiscan/pkg/report"
	"github.com/user/aiscan/pkg/scanners"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan an assistant configuration for security issues",
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		severity, _ := cmd.Flags().GetString("severity")
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		verbose, _ := cmd.Flags().GetBool("verbose")
		showFixes, _ := cmd.Flags().GetBool("fix")
		email, _ := cmd.Flags().GetString("email")
		strict, _ := cmd.Flags().GetBool("strict")
		baselinePath, _ := cmd.Flags().GetString("baseline")
		saveBaseline, _ := cmd.Flags().GetBool("save-baseline")

		fmt.Printf("Loading config from: %s ... ", configPath)
		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Println("FAIL")
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("OK")

		// Lint warnings are advisory; the scan proceeds regardless.
		if strict {
			problems, err := config.Lint(cfg.Raw)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: lint failed: %v\n", err)
				os.Exit(1)
			}
			if len(problems) > 0 {
				fmt.Println("\n[ Strict Lint ]")
				for _, p := range problems {
					fmt.Printf("  - %s\n", p)
				}
				fmt.Println()
			}
		}

		filter := engine.ParseSeverityFilter(severity)
		result := engine.Run(cfg, scanners.All(), filter)

		if showFixes {
			fmt.Println("\n[ Auto-Fix Suggestions ]")
			suggestions := fixer.Suggestions(result.Findings)
			if len(suggestions) == 0 {
				fmt.Println("No fixes needed!")
			}
			for i, s := range suggestions {
				fmt.Printf("%d. %s\n", i+1, s)
			}
		}

		if email != "" {
			printMailto(email, result)
		}

		switch format {
		case "json":
			rendered, err := report.RenderJSON(result)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			emitOrDie(rendered, output)
		case "markdown":
			emitOrDie(report.RenderMarkdown(result), output)
		case "html":
			emitOrDie(report.RenderHTML(result), output)
		default:
			fmt.Print(report.RenderConsole(result, verbose))
		}

		if baselinePath != "" {
			baseline, err := engine.LoadBaseline(baselinePath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: failed to load baseline: %v\n", err)
				os.Exit(1)
			}
			diff := result.Compare(baseline)
			fmt.Println("\n[ Baseline Comparison ]")
			fmt.Printf("New: %d | Fixed: %d | Unchanged: %d\n",
				len(diff.New), len(diff.Fixed), len(diff.Unchanged))
			for _, f := range diff.New {
				fmt.Printf("  + %s (%s)\n", f.ID, f.Severity)
			}
			for _, f := range diff.Fixed {
				fmt.Printf("  - %s (%s)\n", f.ID, f.Severity)
			}
		}

		if saveBaseline {
			if err := engine.SaveBaseline(engine.DefaultBaselinePath, result); err != nil {
				fmt.Fprintf(os.Stderr, "Error: failed to save baseline: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("\nBaseline saved to: %s\n", engine.DefaultBaselinePath)
		}

		if result.CriticalCount() > 0 {
			os.Exit(2)
		}
		if result.HighCount() > 0 {
			os.Exit(1)
		}
	},
}

func emitOrDie(content, output string) {
	if err := report.Emit(content, output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printMailto(email string, result *engine.ScanResult) {
	reportID := uuid.NewString()
	subject := fmt.Sprintf("Security Scan %s - %d findings", reportID, len(result.Findings))
	body := fmt.Sprintf(
		"AI Assistant Security Scan Results\n"+
			"==================================\n\n"+
			"Report ID: %s\n"+
			"Health Score: %d/100\n"+
			"Critical: %d\n"+
			"High: %d\n"+
			"Total Findings: %d\n\n"+
			"Run with --format html --output report.html for full details.\n",
		reportID,
		result.HealthScore,
		result.CriticalCount(),
		result.HighCount(),
		len(result.Findings),
	)

	mailto := fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		email, url.QueryEscape(subject), url.QueryEscape(body))

	fmt.Println("\n[ Email Report ]")
	fmt.Println("To share via email, open:")
	fmt.Printf("\n%s\n\n", mailto)
}

func init() {
	scanCmd.Flags().StringP("config", "c", "", "Path to assistant configuration file")
	scanCmd.Flags().String("severity", "all", "Filter findings by severity (all, high, critical)")
	scanCmd.Flags().StringP("format", "f", "console", "Output format (console, json, markdown, html)")
	scanCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	scanCmd.Flags().BoolP("verbose", "v", false, "Show detailed output")
	scanCmd.Flags().Bool("fix", false, "Show auto-fix suggestions for findings")
	scanCmd.Flags().String("email", "", "Generate mailto: link for sharing the report")
	scanCmd.Flags().Bool("strict", false, "Validate config sections against the schema before scanning")
	scanCmd.Flags().String("baseline", "", "Compare findings against a saved baseline file")
	scanCmd.Flags().Bool("save-baseline", false, "Save this scan as the new baseline")
	scanCmd.MarkFlagRequired("config")

	rootCmd.AddCommand(scanCmd)
}

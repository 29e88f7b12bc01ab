package report

import (
	"fmt"
	"strings"

	"github.com/user/aiscan/pkg/engine"
)

// RenderMarkdown renders the scan result as a markdown report, most
// severe findings first.
func RenderMarkdown(result *engine.ScanResult) string {
	var b strings.Builder

	b.WriteString("# Security Scan Results\n\n")
	fmt.Fprintf(&b, "**Health Score:** %d/100\n", result.HealthScore)
	fmt.Fprintf(&b, "**Critical:** %d | **High:** %d | **Total:** %d\n\n",
		result.CriticalCount(), result.HighCount(), len(result.Findings))
	b.WriteString("---\n\n## Findings\n\n")

	for _, f := range SortedFindings(result.Findings) {
		fmt.Fprintf(&b, "### %s\n\n", f.Title)
		fmt.Fprintf(&b, "- **Severity:** %s\n", f.Severity)
		fmt.Fprintf(&b, "- **Module:** %s\n", f.Module)
		fmt.Fprintf(&b, "- **Path:** `%s`", f.ConfigPath)
		if f.CVE != "" {
			fmt.Fprintf(&b, "\n**CVE:** %s", f.CVE)
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "- **Description:** %s\n", f.Description)
		fmt.Fprintf(&b, "- **Remediation:** %s\n\n", f.Remediation)
		b.WriteString("---\n")
	}

	return b.String()
}

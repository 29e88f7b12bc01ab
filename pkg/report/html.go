package report

import (
	"fmt"
	"html"
	"strings"

	"github.com/user/aiscan/pkg/engine"
)

const htmlHeader = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>AI Assistant Security Scan</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; margin: 40px; background: #f9fafb; }
        .container { max-width: 1000px; margin: 0 auto; }
        h1 { color: #059669; }
        .score { font-size: 64px; font-weight: bold; }
        .score-high { color: #059669; }
        .score-medium { color: #d97706; }
        .score-low { color: #dc2626; }
        .summary { display: flex; gap: 20px; margin: 20px 0; }
        .stat { background: white; padding: 15px 25px; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1); }
        .critical { color: #dc2626; font-weight: bold; }
        .high { color: #d97706; font-weight: bold; }
        .finding { margin: 15px 0; padding: 20px; background: white; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1); border-left: 4px solid #e5e7eb; }
        .finding.critical { border-left-color: #dc2626; }
        .finding.high { border-left-color: #d97706; }
        .finding.medium { border-left-color: #0891b2; }
        .finding.low { border-left-color: #2563eb; }
        .cve { background: #fee2e2; color: #991b1b; padding: 2px 8px; border-radius: 4px; font-size: 12px; }
        code { background: #f3f4f6; padding: 2px 6px; border-radius: 4px; }
        .footer { margin-top: 40px; color: #6b7280; font-size: 14px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>AI Assistant Security Scan</h1>
`

func scoreClass(score int) string {
	switch {
	case score >= 80:
		return "score-high"
	case score >= 60:
		return "score-medium"
	default:
		return "score-low"
	}
}

// RenderHTML renders the scan result as a standalone HTML report.
func RenderHTML(result *engine.ScanResult) string {
	var b strings.Builder

	b.WriteString(htmlHeader)
	fmt.Fprintf(&b, "        <p class=\"score %s\">%d</p>\n", scoreClass(result.HealthScore), result.HealthScore)
	b.WriteString("        <div class=\"summary\">\n")
	fmt.Fprintf(&b, "            <div class=\"stat\"><span class=\"critical\">%d</span> Critical</div>\n", result.CriticalCount())
	fmt.Fprintf(&b, "            <div class=\"stat\"><span class=\"high\">%d</span> High</div>\n", result.HighCount())
	fmt.Fprintf(&b, "            <div class=\"stat\">%d Total Findings</div>\n", len(result.Findings))
	b.WriteString("        </div>\n\n        <h2>Findings</h2>\n")

	for _, f := range SortedFindings(result.Findings) {
		cveTag := ""
		if f.CVE != "" {
			cveTag = fmt.Sprintf(" <span class='cve'>%s</span>", html.EscapeString(f.CVE))
		}
		fmt.Fprintf(&b, `
        <div class="finding %s">
            <h3>%s%s</h3>
            <p><strong>Module:</strong> %s</p>
            <p><strong>Config Path:</strong> <code>%s</code></p>
            <p><strong>Description:</strong> %s</p>
            <p><strong>Remediation:</strong> %s</p>
        </div>`,
			f.Severity,
			html.EscapeString(f.Title),
			cveTag,
			html.EscapeString(f.Module),
			html.EscapeString(f.ConfigPath),
			html.EscapeString(f.Description),
			html.EscapeString(f.Remediation),
		)
	}

	b.WriteString(`
        <div class="footer">
            <p>AI Assistant Security Scanner</p>
            <p>Philosophy: "We scan for real exploit chains, not theoretical configs."</p>
        </div>
    </div>
</body>
</html>`)

	return b.String()
}

package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/aiscan/pkg/engine"
)

var (
	criticalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	highStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	mediumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("45"))

	lowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))

	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

func severityCell(s engine.Severity) string {
	switch s {
	case engine.SeverityCritical:
		return criticalStyle.Render(s.String())
	case engine.SeverityHigh:
		return highStyle.Render(s.String())
	case engine.SeverityMedium:
		return mediumStyle.Render(s.String())
	case engine.SeverityLow:
		return lowStyle.Render(s.String())
	default:
		return s.String()
	}
}

func scoreCell(score int) string {
	text := fmt.Sprintf("%d/100", score)
	switch {
	case score >= 80:
		return okStyle.Render(text)
	case score >= 60:
		return warnStyle.Render(text)
	default:
		return failStyle.Render(text)
	}
}

// RenderConsole renders the scan result as a colored findings table,
// most severe first. With verbose a per-finding detail section follows
// the table.
func RenderConsole(result *engine.ScanResult, verbose bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n[ Scan Results ]\n")
	fmt.Fprintf(&b, "Health Score: %s\n", scoreCell(result.HealthScore))
	fmt.Fprintf(&b, "Critical: %d | High: %d | Total: %d\n\n",
		result.CriticalCount(), result.HighCount(), len(result.Findings))

	if len(result.Findings) == 0 {
		b.WriteString(okStyle.Render("No security issues found!"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("[ Security Findings ]\n")
	fmt.Fprintf(&b, "%-11s | %-12s | %-32s | %-12s\n", "Severity", "Module", "Title", "CVE")
	fmt.Fprintf(&b, "%s-+-%s-+-%s-+-%s\n",
		strings.Repeat("-", 11), strings.Repeat("-", 12), strings.Repeat("-", 32), strings.Repeat("-", 12))

	sorted := SortedFindings(result.Findings)
	for _, f := range sorted {
		title := f.Title
		if len(title) > 30 {
			title = title[:27] + "..."
		}
		cve := f.CVE
		if cve == "" {
			cve = "-"
		}
		// Pad the severity column by its plain width so the ANSI
		// escape codes don't skew the table.
		pad := strings.Repeat(" ", 11-len(f.Severity.String()))
		fmt.Fprintf(&b, "%s%s | %-12s | %-32s | %-12s\n", severityCell(f.Severity), pad, f.Module, title, cve)
	}
	b.WriteString("\n")

	if verbose {
		b.WriteString("[ Finding Details ]\n")
		for i, f := range sorted {
			fmt.Fprintf(&b, "\n%d. %s (%s)\n", i+1, f.Title, f.Severity)
			fmt.Fprintf(&b, "   ID: %s\n", f.ID)
			fmt.Fprintf(&b, "   Path: %s\n", f.ConfigPath)
			fmt.Fprintf(&b, "   Description: %s\n", f.Description)
			fmt.Fprintf(&b, "   Remediation: %s\n", f.Remediation)
		}
	}

	return b.String()
}

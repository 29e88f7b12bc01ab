package scanners

import (
	"fmt"
	"path"

	"github.com/user/aiscan/pkg/config"
	"github.com/user/aiscan/pkg/engine"
)

// dangerousSafeBins are shell entry points that make an exec safeBins
// allowlist meaningless.
var dangerousSafeBins = []string{"/bin/sh", "/bin/bash", "/usr/bin/env"}

// ToolsScanner checks the tool policy: exec without sandbox, elevated
// mode, filesystem workspace isolation, SSRF policy on web tools and
// shell escapes in safeBins.
type ToolsScanner struct{}

func (ToolsScanner) Name() string { return "tools" }

func (ToolsScanner) Description() string {
	return "Tool configuration and policy security"
}

func (s ToolsScanner) Scan(cfg *config.Config) []engine.Finding {
	var findings []engine.Finding
	tools := cfg.Tools

	if strEq(cfg.Sandbox.Mode, "off") {
		if strEq(tools.ExecHost, "gateway") || tools.ExecHost == nil {
			findings = append(findings, engine.NewFinding(
				"tools.exec_no_sandbox",
				s.Name(),
				engine.SeverityCritical,
				"Exec Tool Without Sandbox",
				"exec tool enabled with sandbox disabled - runs on host",
				"Command execution can modify host system",
				"Enable sandbox or restrict exec allowlist",
				"agents.defaults.sandbox.mode + tools.exec.host",
			))
		}
	}

	if boolTrue(tools.ElevatedEnabled) {
		findings = append(findings, engine.NewFinding(
			"tools.elevated_enabled",
			s.Name(),
			engine.SeverityCritical,
			"Elevated Mode Enabled",
			"tools.elevated.enabled is true - allows host sudo",
			"Agents can execute commands with elevated privileges",
			"Disable tools.elevated.enabled unless required",
			"tools.elevated.enabled",
		))
	}

	if tools.FSWorkspaceOnly != nil && !*tools.FSWorkspaceOnly {
		findings = append(findings, engine.NewFinding(
			"tools.fs_workspace_only_disabled",
			s.Name(),
			engine.SeverityHigh,
			"File System Workspace Only Disabled",
			"tools.fs.workspaceOnly is false - can access any file",
			"Agents can read/write files outside workspace",
			"Set tools.fs.workspaceOnly: true",
			"tools.fs.workspaceOnly",
		))
	}

	if strEq(tools.ExecSecurity, "deny") {
		findings = append(findings, engine.NewFinding(
			"tools.exec_security_deny",
			s.Name(),
			engine.SeverityLow,
			"Exec Security Set to Deny",
			"tools.exec.security is 'deny' - blocks exec entirely",
			"May prevent legitimate exec usage",
			"Consider 'ask' or 'allowlist' for controlled exec",
			"tools.exec.security",
		))
	}

	// The two web-tool SSRF checks are independent: anything other than
	// an explicit strict policy, including an absent one, is flagged.
	if !strEq(tools.WebFetchSSRFPolicy, "strict") {
		findings = append(findings, engine.NewFinding(
			"tools.web_fetch_no_ssrf",
			s.Name(),
			engine.SeverityMedium,
			"Web Fetch SSRF Protection Not Strict",
			fmt.Sprintf("web_fetch ssrfPolicy is '%s'", strOr(tools.WebFetchSSRFPolicy, "default")),
			"May allow access to internal network resources",
			"Set tools.webFetch.ssrfPolicy: 'strict'",
			"tools.webFetch.ssrfPolicy",
		).WithCVE("CVE-2026-26322"))
	}

	if !strEq(tools.WebSearchSSRFPolicy, "strict") {
		findings = append(findings, engine.NewFinding(
			"tools.web_search_no_ssrf",
			s.Name(),
			engine.SeverityMedium,
			"Web Search SSRF Protection Not Strict",
			fmt.Sprintf("web_search ssrfPolicy is '%s'", strOr(tools.WebSearchSSRFPolicy, "default")),
			"May allow access to internal network resources",
			"Set tools.webSearch.ssrfPolicy: 'strict'",
			"tools.webSearch.ssrfPolicy",
		).WithCVE("CVE-2026-26322"))
	}

	for _, bin := range dangerousSafeBins {
		if contains(tools.ExecSafeBins, bin) {
			findings = append(findings, engine.NewFinding(
				fmt.Sprintf("tools.safe_bins_dangerous.%s", path.Base(bin)),
				s.Name(),
				engine.SeverityHigh,
				fmt.Sprintf("Dangerous bin in safeBins: %s", bin),
				fmt.Sprintf("%s in safeBins allows shell execution", bin),
				"Can execute arbitrary shell commands",
				fmt.Sprintf("Remove %s from safeBins", bin),
				"tools.exec.safeBins",
			))
		}
	}

	return findings
}

// strOr returns the optional string's value, or fallback when unset.
func strOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

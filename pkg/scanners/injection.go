package scanners

import (
	"github.com/user/aiscan/pkg/config"
	"github.com/user/aiscan/pkg/engine"
)

// InjectionScanner detects configuration chains that amplify prompt
// injection into real bypasses. Injection on its own is expected
// behavior for an AI assistant and is never flagged; only the
// combinations that give injected content a path to tools, files, or
// persistent memory produce findings.
type InjectionScanner struct{}

func (InjectionScanner) Name() string { return "prompt_injection" }

func (InjectionScanner) Description() string {
	return "Prompt injection chain detection"
}

func (s InjectionScanner) Scan(cfg *config.Config) []engine.Finding {
	var findings []engine.Finding

	if strEq(cfg.Sandbox.Mode, "off") {
		hasWebTools := cfg.Tools.WebFetchSSRFPolicy != nil || cfg.Tools.WebSearchSSRFPolicy != nil
		if hasWebTools {
			findings = append(findings, engine.NewFinding(
				"injection.sandbox_off_plus_web",
				s.Name(),
				engine.SeverityMedium,
				"Sandbox Disabled with Web Tools",
				"Sandbox is off and web tools are enabled",
				"Prompt injection could lead to SSRF via web content",
				"Enable sandbox or disable web tools",
				"agents.defaults.sandbox.mode + tools.webFetch",
			))
		}
	}

	if !strEq(cfg.Sandbox.WorkspaceAccess, "none") && cfg.Tools.ExecHost != nil {
		findings = append(findings, engine.NewFinding(
			"injection.workspace_plus_exec",
			s.Name(),
			engine.SeverityMedium,
			"Workspace Access with Exec Enabled",
			"Sandbox has workspace access and exec is enabled",
			"Injected content could be executed",
			"Restrict workspace access or disable exec",
			"agents.defaults.sandbox.workspaceAccess + tools.exec.host",
		))
	}

	if !contains(cfg.Tools.Deny, "sessions_spawn") {
		if _, hasMemory := cfg.Raw["memory"]; hasMemory {
			findings = append(findings, engine.NewFinding(
				"injection.sessions_spawn_plus_memory",
				s.Name(),
				engine.SeverityMedium,
				"Session Spawn + Memory Access",
				"Can spawn new sessions and has memory access",
				"Could inject persistent instructions into memory",
				"Deny sessions_spawn tool or restrict memory access",
				"tools.deny + memory",
			))
		}
	}

	findings = append(findings, engine.NewFinding(
		"injection.info",
		s.Name(),
		engine.SeverityInfo,
		"Prompt Injection Detection Informational",
		"This scanner detects configuration paths that could amplify injection impact, not injection itself",
		"Prompt injection alone is expected behavior - we only flag chains to bypass",
		"See docs for hardening guidance",
		"N/A",
	))

	return findings
}

package scanners

import (
	"fmt"
	"strings"

	"github.com/user/aiscan/pkg/config"
	"github.com/user/aiscan/pkg/engine"
)

// controlPlaneTools are the tool names agents must be denied to keep the
// control plane out of reach.
var controlPlaneTools = []string{"gateway", "cron", "sessions_spawn", "sessions_send"}

// SandboxScanner checks the agent sandbox: mode, workspace mount access,
// scope isolation and the tools deny-list coverage of control plane tools.
type SandboxScanner struct{}

func (SandboxScanner) Name() string { return "sandbox" }

func (SandboxScanner) Description() string {
	return "Sandbox configuration and container isolation"
}

func (s SandboxScanner) Scan(cfg *config.Config) []engine.Finding {
	var findings []engine.Finding
	sb := cfg.Sandbox

	if sb.Mode == nil || strEq(sb.Mode, "off") {
		findings = append(findings, engine.NewFinding(
			"sandbox.mode_off",
			s.Name(),
			engine.SeverityCritical,
			"Sandbox Mode Disabled",
			"Sandbox mode is disabled, tools run directly on host",
			"Tool execution can access and modify the host system",
			"Enable sandbox mode: agents.defaults.sandbox.mode: 'docker'",
			"agents.defaults.sandbox.mode",
		))
	}

	if strEq(sb.WorkspaceAccess, "rw") {
		findings = append(findings, engine.NewFinding(
			"sandbox.workspace_rw",
			s.Name(),
			engine.SeverityHigh,
			"Sandbox Workspace Read-Write Access",
			"Sandbox has read-write access to agent workspace",
			"Agent can modify files in the workspace",
			"Set agents.defaults.sandbox.workspaceAccess to 'ro' or 'none'",
			"agents.defaults.sandbox.workspaceAccess",
		))
	}

	if strEq(sb.Scope, "shared") {
		findings = append(findings, engine.NewFinding(
			"sandbox.scope_shared",
			s.Name(),
			engine.SeverityMedium,
			"Sandbox Scope Set to Shared",
			"All agents share the same sandbox workspace",
			"One agent can access another agent's files",
			"Set agents.defaults.sandbox.scope to 'agent' or 'session'",
			"agents.defaults.sandbox.scope",
		))
	}

	// One finding listing all control plane tools missing from an
	// explicitly configured deny list.
	if cfg.Tools.Deny != nil {
		var missing []string
		for _, tool := range controlPlaneTools {
			if !contains(cfg.Tools.Deny, tool) {
				missing = append(missing, tool)
			}
		}
		if len(missing) > 0 {
			joined := strings.Join(missing, ", ")
			findings = append(findings, engine.NewFinding(
				"sandbox.tools_deny_incomplete",
				s.Name(),
				engine.SeverityHigh,
				fmt.Sprintf("tools.deny Missing: %s", joined),
				fmt.Sprintf("Control plane tools not in deny list: %s", joined),
				"Agents can make persistent config changes or spawn subagents",
				fmt.Sprintf("Add to tools.deny: %s", joined),
				"tools.deny",
			))
		}
	}

	return findings
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

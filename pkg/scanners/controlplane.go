package scanners

import (
	"fmt"

	"github.com/user/aiscan/pkg/config"
	"github.com/user/aiscan/pkg/engine"
)

// controlToolDescriptions explains why each control plane tool is
// dangerous when left reachable by agents.
var controlToolDescriptions = map[string]string{
	"gateway":        "Gateway tool - can modify config, run updates",
	"cron":           "Cron tool - can schedule jobs",
	"sessions_spawn": "Sessions spawn - can create subagents",
	"sessions_send":  "Sessions send - can send cross-session messages",
}

// ControlPlaneScanner flags control plane tools missing from the deny
// list, and tool profiles that grant everything.
type ControlPlaneScanner struct{}

func (ControlPlaneScanner) Name() string { return "control_plane" }

func (ControlPlaneScanner) Description() string {
	return "Control plane tools access control"
}

func (s ControlPlaneScanner) Scan(cfg *config.Config) []engine.Finding {
	var findings []engine.Finding

	for _, tool := range controlPlaneTools {
		if contains(cfg.Tools.Deny, tool) {
			continue
		}
		findings = append(findings, engine.NewFinding(
			fmt.Sprintf("control_plane.%s_not_denied", tool),
			s.Name(),
			engine.SeverityHigh,
			fmt.Sprintf("Tool '%s' Not in Deny List", tool),
			controlToolDescriptions[tool],
			"Agent can use this powerful tool",
			fmt.Sprintf("Add '%s' to tools.deny", tool),
			"tools.deny",
		))
	}

	if p := cfg.Tools.Profile; p != nil {
		if *p == "admin" || *p == "full" || *p == "*" {
			findings = append(findings, engine.NewFinding(
				"control_plane.unrestricted_profile",
				s.Name(),
				engine.SeverityCritical,
				"Unrestricted Tool Profile",
				fmt.Sprintf("Tools profile is '%s' - allows all tools", *p),
				"No tool restrictions in place",
				"Use a restricted profile or explicitly deny dangerous tools",
				"tools.profile",
			))
		}
	}

	return findings
}

package scanners

import (
	"fmt"
	"strings"

	"github.com/user/aiscan/pkg/config"
	"github.com/user/aiscan/pkg/engine"
)

// sensitiveCapabilities are device features a paired node should not
// expose to agents without review.
var sensitiveCapabilities = []string{"camera", "screen", "contacts", "sms", "location"}

// NodeScanner checks paired nodes read from the raw tree: unrestricted
// command allowlists, sensitive device capabilities, and whether tools
// may execute commands on nodes at all.
type NodeScanner struct{}

func (NodeScanner) Name() string { return "nodes" }

func (NodeScanner) Description() string {
	return "Paired node and remote execution security"
}

func (s NodeScanner) Scan(cfg *config.Config) []engine.Finding {
	var findings []engine.Finding

	nodes := rawMap(cfg.Raw, "nodes")
	for _, nodeName := range sortedKeys(nodes) {
		node, ok := nodes[nodeName].(map[string]interface{})
		if !ok {
			continue
		}

		for _, cmd := range stringElems(rawArray(node, "allowCommands")) {
			if cmd == "*" || cmd == "all" {
				findings = append(findings, engine.NewFinding(
					fmt.Sprintf("nodes.%s.unrestricted_commands", nodeName),
					s.Name(),
					engine.SeverityCritical,
					fmt.Sprintf("Node '%s' Has Unrestricted Commands", nodeName),
					fmt.Sprintf("Node '%s' allows all commands (*)", nodeName),
					"Any command can be executed on the node",
					"Restrict allowCommands to specific needed commands",
					fmt.Sprintf("nodes.%s.allowCommands", nodeName),
				))
				break
			}
		}

		var exposed []string
		for _, capability := range stringElems(rawArray(node, "capabilities")) {
			if contains(sensitiveCapabilities, capability) {
				exposed = append(exposed, capability)
			}
		}
		if len(exposed) > 0 {
			findings = append(findings, engine.NewFinding(
				fmt.Sprintf("nodes.%s.sensitive_capabilities", nodeName),
				s.Name(),
				engine.SeverityMedium,
				fmt.Sprintf("Node '%s' Has Sensitive Capabilities", nodeName),
				fmt.Sprintf("Node '%s' has access to: %s", nodeName, strings.Join(exposed, ", ")),
				"Node can access sensitive device features",
				"Review if these capabilities are necessary",
				fmt.Sprintf("nodes.%s.capabilities", nodeName),
			))
		}
	}

	execCfg := rawMap(rawMap(cfg.Raw, "tools"), "exec")
	if rawBoolTrue(execCfg, "allowNodeExec") {
		findings = append(findings, engine.NewFinding(
			"nodes.exec_allowed",
			s.Name(),
			engine.SeverityHigh,
			"Node Execution Enabled",
			"Tools are allowed to execute commands on paired nodes",
			"Commands can be run on remote nodes",
			"Disable allowNodeExec unless strictly needed",
			"tools.exec.allowNodeExec",
		))
	}

	return findings
}

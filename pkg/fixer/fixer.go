// Package fixer turns findings into concrete config edits and applies
// them to JSON config files with a backup of the original.
package fixer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/user/aiscan/pkg/engine"
)

// ConfigFix is one settable key under a dotted object path.
type ConfigFix struct {
	Path        string
	Key         string
	Value       interface{}
	Description string
}

// GenerateFixes maps findings to automatic fixes. Findings without a
// known safe edit are skipped; fixes come out in finding order.
func GenerateFixes(findings []engine.Finding) []ConfigFix {
	var fixes []ConfigFix
	for _, f := range findings {
		var fix *ConfigFix
		switch f.ID {
		case "sandbox.mode_off":
			fix = &ConfigFix{"agents.defaults.sandbox", "mode", "docker", "Enable sandbox mode"}
		case "sandbox.workspace_rw":
			fix = &ConfigFix{"agents.defaults.sandbox", "workspaceAccess", "none", "Remove workspace write access"}
		case "sandbox.scope_shared":
			fix = &ConfigFix{"agents.defaults.sandbox", "scope", "agent", "Set sandbox scope to agent isolation"}
		case "tools.fs_workspace_only_disabled":
			fix = &ConfigFix{"tools.fs", "workspaceOnly", true, "Enable file system workspace isolation"}
		case "tools.web_fetch_no_ssrf":
			fix = &ConfigFix{"tools.webFetch", "ssrfPolicy", "strict", "Enable strict SSRF protection for web fetch"}
		case "tools.web_search_no_ssrf":
			fix = &ConfigFix{"tools.webSearch", "ssrfPolicy", "strict", "Enable strict SSRF protection for web search"}
		case "tools.elevated_enabled":
			fix = &ConfigFix{"tools.elevated", "enabled", false, "Disable elevated mode"}
		case "gateway.auth_none":
			fix = &ConfigFix{"gateway.auth", "mode", "token", "Enable token authentication"}
		case "gateway.bind_public":
			fix = &ConfigFix{"gateway", "bind", "loopback", "Bind to loopback only"}
		case "gateway.tailscale_funnel":
			fix = &ConfigFix{"gateway.tailscale", "funnel", false, "Disable Tailscale Funnel"}
		default:
			if strings.HasPrefix(f.ID, "session.dm_scope") {
				fix = &ConfigFix{"session", "dmScope", "per-channel-peer", "Set DM scope to per-channel-peer"}
			}
		}
		if fix != nil {
			fixes = append(fixes, *fix)
		}
	}
	return fixes
}

// ApplyFixes rewrites the JSON config at path with all fixes applied.
// The original file is copied to path+".bak" before the write. With
// dryRun the file and backup are untouched and the result is returned
// as a labeled preview.
func ApplyFixes(configPath string, fixes []ConfigFix, dryRun bool) (string, error) {
	content, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("config file not found: %s", configPath)
		}
		return "", fmt.Errorf("failed to read config: %w", err)
	}

	// UseNumber keeps untouched numeric values byte-identical, so
	// re-applying the same fixes is a no-op.
	var tree map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()
	if err := dec.Decode(&tree); err != nil {
		return "", fmt.Errorf("failed to parse config: %w", err)
	}

	for _, fix := range fixes {
		if err := applyFix(tree, fix); err != nil {
			return "", err
		}
	}

	out, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize config: %w", err)
	}

	if dryRun {
		return fmt.Sprintf("DRY RUN - Would apply fixes:\n%s", out), nil
	}

	backupPath := configPath + ".bak"
	if err := os.WriteFile(backupPath, content, 0o600); err != nil {
		return "", fmt.Errorf("failed to create backup: %w", err)
	}
	if err := os.WriteFile(configPath, out, 0o600); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}

	return fmt.Sprintf("Applied fixes. Backup saved to: %s", backupPath), nil
}

// applyFix descends the dotted path, creating missing intermediate
// objects, and sets fix.Key at the destination. A path segment already
// occupied by a non-object is an error rather than a silent overwrite.
func applyFix(tree map[string]interface{}, fix ConfigFix) error {
	cur := tree
	for _, segment := range strings.Split(fix.Path, ".") {
		next, ok := cur[segment]
		if !ok {
			child := make(map[string]interface{})
			cur[segment] = child
			cur = child
			continue
		}
		child, ok := next.(map[string]interface{})
		if !ok {
			return fmt.Errorf("config path %q: segment %q is not an object", fix.Path, segment)
		}
		cur = child
	}
	cur[fix.Key] = fix.Value
	return nil
}

// Suggestions returns one human-readable remediation line per finding,
// covering ids beyond the declaratively fixable set; findings with no
// specific advice fall back to pointing at their config path.
func Suggestions(findings []engine.Finding) []string {
	advice := map[string]string{
		"sandbox.mode_off":                     "Set agents.defaults.sandbox.mode to 'docker'",
		"sandbox.workspace_rw":                 "Set agents.defaults.sandbox.workspaceAccess to 'none' or 'ro'",
		"sandbox.scope_shared":                 "Set agents.defaults.sandbox.scope to 'agent'",
		"sandbox.tools_deny_incomplete":        "Add control plane tools to tools.deny: gateway, cron, sessions_spawn, sessions_send",
		"tools.exec_no_sandbox":                "Enable sandbox mode or restrict exec allowlist",
		"tools.elevated_enabled":               "Set tools.elevated.enabled to false",
		"tools.fs_workspace_only_disabled":     "Set tools.fs.workspaceOnly to true",
		"tools.web_fetch_no_ssrf":              "Set tools.webFetch.ssrfPolicy to 'strict'",
		"tools.web_search_no_ssrf":             "Set tools.webSearch.ssrfPolicy to 'strict'",
		"gateway.auth_none":                    "Set gateway.auth.mode to 'token' or 'password'",
		"gateway.bind_public":                  "Set gateway.bind to 'loopback'",
		"gateway.weak_token":                   "Use a token with at least 32 random characters",
		"gateway.tailscale_funnel":             "Set gateway.tailscale.funnel to false",
		"session.dm_scope_main_multi_channel":  "Set session.dmScope to 'per-channel-peer'",
		"channel.telegram.dm_policy_open":      "Set channels.telegram.dmPolicy to 'pairing' or 'allowlist'",
		"channel.discord.group_policy_open":    "Set channels.discord.groupPolicy to 'allowlist'",
		"control_plane.gateway_not_denied":     "Add 'gateway' to tools.deny",
		"control_plane.cron_not_denied":        "Add 'cron' to tools.deny",
		"control_plane.sessions_spawn_not_denied": "Add 'sessions_spawn' to tools.deny",
		"control_plane.sessions_send_not_denied":  "Add 'sessions_send' to tools.deny",
	}

	suggestions := make([]string, 0, len(findings))
	for _, f := range findings {
		s, ok := advice[f.ID]
		if !ok {
			s = fmt.Sprintf("Review and fix: %s", f.ConfigPath)
		}
		suggestions = append(suggestions, fmt.Sprintf("[%s] %s: %s",
			strings.ToUpper(f.Severity.String()), f.Title, s))
	}
	return suggestions
}

// PreviewFixes renders the fixes available for a finding set without
// touching any file.
func PreviewFixes(findings []engine.Finding) string {
	fixes := GenerateFixes(findings)
	if len(fixes) == 0 {
		return "No automatic fixes available for these findings."
	}

	var b strings.Builder
	b.WriteString("Automatic fixes available:\n\n")
	for i, fix := range fixes {
		value, _ := json.Marshal(fix.Value)
		fmt.Fprintf(&b, "%d. %s: Set %s to %s\n   %s\n\n", i+1, fix.Path, fix.Key, value, fix.Description)
	}
	return b.String()
}

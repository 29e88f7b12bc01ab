package scanners

import (
	"fmt"
	"strings"

	"github.com/user/aiscan/pkg/config"
	"github.com/user/aiscan/pkg/engine"
)

// PluginScanner checks installed plugins, skills, and extensions in
// the raw tree: version pinning, source trust, path traversal in
// skill URLs, and overall extension surface.
type PluginScanner struct{}

func (PluginScanner) Name() string { return "plugins" }

func (PluginScanner) Description() string {
	return "Plugin and extension security"
}

// elementIdent names an installed plugin or skill for finding IDs,
// falling back to the array index when the entry has no name.
func elementIdent(obj map[string]interface{}, idx int) string {
	if name, ok := rawString(obj, "name"); ok && name != "" {
		return name
	}
	return fmt.Sprintf("%d", idx)
}

func (s PluginScanner) Scan(cfg *config.Config) []engine.Finding {
	var findings []engine.Finding

	plugins := rawMap(cfg.Raw, "plugins")
	for idx, elem := range rawArray(plugins, "installed") {
		plugin, ok := elem.(map[string]interface{})
		if !ok {
			continue
		}
		ident := elementIdent(plugin, idx)

		if _, hasVersion := plugin["version"]; !hasVersion {
			findings = append(findings, engine.NewFinding(
				fmt.Sprintf("plugins.unpinned_version.%s", ident),
				s.Name(),
				engine.SeverityHigh,
				"Plugin Version Not Pinned",
				fmt.Sprintf("Plugin '%s' does not have a pinned version", ident),
				"Plugin could auto-update to vulnerable version",
				"Pin plugin versions to specific versions",
				fmt.Sprintf("plugins.installed[%s].version", ident),
			))
		}

		if source, ok := rawString(plugin, "source"); ok {
			if strings.Contains(source, "github.com") && !strings.Contains(source, "openclaw") {
				findings = append(findings, engine.NewFinding(
					fmt.Sprintf("plugins.untrusted_source.%s", ident),
					s.Name(),
					engine.SeverityMedium,
					"Plugin From Untrusted Source",
					fmt.Sprintf("Plugin from: %s", source),
					"Plugin code may not be vetted",
					"Use verified plugins from ClawHub or trusted sources",
					fmt.Sprintf("plugins.installed[%s].source", ident),
				))
			}
		}
	}

	if rawBoolTrue(plugins, "allowUnverified") {
		findings = append(findings, engine.NewFinding(
			"plugins.allow_unverified",
			s.Name(),
			engine.SeverityCritical,
			"Unverified Plugins Allowed",
			"Configuration allows installing unverified plugins",
			"Malicious plugins could be installed",
			"Set plugins.allowUnverified to false",
			"plugins.allowUnverified",
		))
	}

	skills := rawMap(cfg.Raw, "skills")
	for idx, elem := range rawArray(skills, "installed") {
		skill, ok := elem.(map[string]interface{})
		if !ok {
			continue
		}
		ident := elementIdent(skill, idx)

		if url, ok := rawString(skill, "url"); ok {
			if strings.Contains(url, "..") || strings.Contains(url, "%2e%2e") {
				findings = append(findings, engine.NewFinding(
					fmt.Sprintf("skills.path_traversal.%s", ident),
					s.Name(),
					engine.SeverityCritical,
					"Skill Path Traversal Detected",
					fmt.Sprintf("Skill URL contains path traversal: %s", url),
					"Could install skill from arbitrary path",
					"Use verified skill URLs from ClawHub",
					fmt.Sprintf("skills.installed[%s].url", ident),
				).WithCVE("CVE-2026-XXXXX"))
			}
		}

		if source, ok := rawString(skill, "source"); ok {
			if source != "clawhub" && !strings.HasPrefix(source, "https://") {
				findings = append(findings, engine.NewFinding(
					fmt.Sprintf("skills.untrusted_source.%s", ident),
					s.Name(),
					engine.SeverityHigh,
					"Skill From Untrusted Source",
					fmt.Sprintf("Skill source: %s", source),
					"Skill code may be malicious",
					"Use skills from verified ClawHub registry",
					fmt.Sprintf("skills.installed[%s].source", ident),
				))
			}
		}
	}

	extensions := rawMap(cfg.Raw, "extensions")
	if enabled := rawArray(extensions, "enabled"); len(enabled) > 5 {
		findings = append(findings, engine.NewFinding(
			"extensions.too_many",
			s.Name(),
			engine.SeverityLow,
			"Many Extensions Enabled",
			fmt.Sprintf("%d extensions are enabled", len(enabled)),
			"Larger attack surface",
			"Review and disable unused extensions",
			"extensions.enabled",
		))
	}

	return findings
}

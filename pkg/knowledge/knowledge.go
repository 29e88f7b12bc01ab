// Package knowledge holds the static CVE and risk-pattern reference data
// consulted by scanners. The data is compiled in, built lazily once, and
// immutable for the lifetime of the process.
package knowledge

import "sync"

// CveEntry is one CVE record. AffectedVersions is a simple "<version"
// predicate string; version strings are compared lexically, not as semver.
type CveEntry struct {
	Title            string `json:"title"`
	Severity         string `json:"severity"`
	Description      string `json:"description"`
	Mitigation       string `json:"mitigation"`
	AffectedVersions string `json:"affected_versions"`
}

// PatternEntry is one named risk pattern.
type PatternEntry struct {
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Remediation string `json:"remediation"`
}

// Base is the read-only knowledge base.
type Base struct {
	cves     map[string]CveEntry
	patterns map[string]PatternEntry
}

var (
	once     sync.Once
	instance *Base
)

// Get returns the process-wide knowledge base, building it on first use.
func Get() *Base {
	once.Do(func() {
		instance = build()
	})
	return instance
}

// CVE looks up a CVE record by identifier.
func (b *Base) CVE(id string) (CveEntry, bool) {
	e, ok := b.cves[id]
	return e, ok
}

// Mitigation returns the mitigation text for a CVE, if known.
func (b *Base) Mitigation(id string) (string, bool) {
	e, ok := b.cves[id]
	if !ok {
		return "", false
	}
	return e.Mitigation, true
}

// Pattern looks up a risk pattern by name.
func (b *Base) Pattern(name string) (PatternEntry, bool) {
	p, ok := b.patterns[name]
	return p, ok
}

// PatchedVersions returns every CVE identifier carrying a "<version"
// predicate, paired with its minimum patched version.
func (b *Base) PatchedVersions() map[string]string {
	out := make(map[string]string)
	for id, e := range b.cves {
		if len(e.AffectedVersions) > 1 && e.AffectedVersions[0] == '<' {
			out[id] = e.AffectedVersions[1:]
		}
	}
	return out
}

// IsAffected reports whether a version falls under a CVE's "<version"
// predicate. Comparison is a plain string compare by contract.
func (b *Base) IsAffected(id, version string) bool {
	e, ok := b.cves[id]
	if !ok {
		return false
	}
	if len(e.AffectedVersions) < 2 || e.AffectedVersions[0] != '<' {
		return false
	}
	return version < e.AffectedVersions[1:]
}

func build() *Base {
	cves := map[string]CveEntry{
		"CVE-2026-26322": {
			Title:            "Gateway SSRF Vulnerability",
			Severity:         "high",
			Description:      "Server-side request forgery in gatewayUrl validation allowing unauthorized WebSocket triggers",
			Mitigation:       "Upgrade to 2026.2.14+, enforce strict gatewayUrl validation (loopback only, no overrides)",
			AffectedVersions: "<2026.2.14",
		},
		"CVE-2026-25593": {
			Title:            "RCE via cliPath",
			Severity:         "critical",
			Description:      "Command injection through unsafe cliPath",
			Mitigation:       "Validate cliPath, use absolute paths only, enable sandbox mode",
			AffectedVersions: "<2026.2.15",
		},
		"CVE-2026-24763": {
			Title:            "PATH Injection in Container Exec",
			Severity:         "high",
			Description:      "PATH injection in container exec, unsafe Docker options",
			Mitigation:       "Sanitize PATH in container exec, avoid unsafe Docker options, enable sandbox",
			AffectedVersions: "<2026.2.13",
		},
		"CVE-2025-XXXXX": {
			Title:            "Multiple Assistant Gateway CVEs",
			Severity:         "varies",
			Description:      "Multiple CVEs affecting open-source personal AI assistants",
			Mitigation:       "Keep updated, follow security advisories regularly",
			AffectedVersions: "various",
		},
	}

	patterns := map[string]PatternEntry{
		"unsafe_cliPath": {
			Description: "Unrestricted cliPath can lead to command injection",
			Severity:    "critical",
			Remediation: "Use absolute paths, enable sandbox mode",
		},
		"sandbox_mode_off": {
			Description: "Sandbox disabled with dangerous tools enabled",
			Severity:    "critical",
			Remediation: "Enable sandbox mode or disable exec/web tools",
		},
		"lan_bind_no_auth": {
			Description: "LAN-bound gateway without authentication",
			Severity:    "critical",
			Remediation: "Use loopback bind or enable authentication",
		},
		"weak_token": {
			Description: "Weak authentication token",
			Severity:    "high",
			Remediation: "Use 32+ character random token",
		},
	}

	return &Base{cves: cves, patterns: patterns}
}

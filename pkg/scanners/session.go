package scanners

import (
	"github.com/user/aiscan/pkg/config"
	"github.com/user/aiscan/pkg/engine"
)

// SessionScanner checks session identity isolation via dmScope.
type SessionScanner struct{}

func (SessionScanner) Name() string { return "session" }

func (SessionScanner) Description() string {
	return "Session handling and identity management"
}

func (s SessionScanner) Scan(cfg *config.Config) []engine.Finding {
	var findings []engine.Finding

	if strEq(cfg.Session.DMScope, "main") && cfg.EnabledChannelCount() > 1 {
		findings = append(findings, engine.NewFinding(
			"session.dm_scope_main_multi_channel",
			s.Name(),
			engine.SeverityMedium,
			"DM Scope 'main' With Multiple Channels",
			"All DMs route to main session across multiple channels",
			"Messages from different channels/users mix in same context",
			"Set session.dmScope to 'per-channel-peer'",
			"session.dmScope",
		))
	}

	if cfg.Session.DMScope == nil {
		findings = append(findings, engine.NewFinding(
			"session.dm_scope_default",
			s.Name(),
			engine.SeverityInfo,
			"DM Scope Not Explicitly Set",
			"session.dmScope defaults to 'main'",
			"May expose messages to wrong context",
			"Set session.dmScope explicitly to 'per-channel-peer'",
			"session.dmScope",
		))
	}

	return findings
}

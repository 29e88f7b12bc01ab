package scanners

import (
	"fmt"

	"github.com/user/aiscan/pkg/config"
	"github.com/user/aiscan/pkg/engine"
)

// ChannelScanner checks each enabled chat channel's DM policy, group
// policy and allowFrom restrictions. Channels are visited in the fixed
// config.ChannelNames order so findings are deterministic, and each
// finding embeds the channel name in its id and config path.
type ChannelScanner struct{}

func (ChannelScanner) Name() string { return "channels" }

func (ChannelScanner) Description() string {
	return "Per-channel security configuration"
}

func (s ChannelScanner) Scan(cfg *config.Config) []engine.Finding {
	var findings []engine.Finding

	for _, name := range config.ChannelNames {
		ch, ok := cfg.Channels[name]
		if !ok || !boolTrue(ch.Enabled) {
			continue
		}

		if strEq(ch.DMPolicy, "open") {
			findings = append(findings, engine.NewFinding(
				fmt.Sprintf("channel.%s.dm_policy_open", name),
				s.Name(),
				engine.SeverityCritical,
				fmt.Sprintf("%s DM Policy 'open'", name),
				fmt.Sprintf("Anyone can DM the bot on %s", name),
				"Untrusted users can send messages to the agent",
				fmt.Sprintf("Set channels.%s.dmPolicy to 'pairing' or 'allowlist'", name),
				fmt.Sprintf("channels.%s.dmPolicy", name),
			))
		}

		if strEq(ch.DMPolicy, "disabled") {
			findings = append(findings, engine.NewFinding(
				fmt.Sprintf("channel.%s.dm_disabled", name),
				s.Name(),
				engine.SeverityInfo,
				fmt.Sprintf("%s DMs Disabled", name),
				fmt.Sprintf("DMs are disabled for %s", name),
				"Cannot receive direct messages on this channel",
				"Enable if DMs are needed",
				fmt.Sprintf("channels.%s.dmPolicy", name),
			))
		}

		if strEq(ch.GroupPolicy, "open") {
			findings = append(findings, engine.NewFinding(
				fmt.Sprintf("channel.%s.group_policy_open", name),
				s.Name(),
				engine.SeverityHigh,
				fmt.Sprintf("%s Group Policy 'open'", name),
				fmt.Sprintf("Anyone in group can trigger the bot on %s", name),
				"Any group member can interact with agent",
				fmt.Sprintf("Set channels.%s.groupPolicy to 'allowlist'", name),
				fmt.Sprintf("channels.%s.groupPolicy", name),
			))
		}

		if contains(ch.AllowFrom, "*") {
			findings = append(findings, engine.NewFinding(
				fmt.Sprintf("channel.%s.allow_from_wildcard", name),
				s.Name(),
				engine.SeverityMedium,
				fmt.Sprintf("%s allowFrom Uses Wildcard", name),
				"allowFrom includes '*' - allows everyone",
				"Any user on the channel can interact with agent",
				"Use specific user IDs instead of '*'",
				fmt.Sprintf("channels.%s.allowFrom", name),
			))
		}
	}

	return findings
}

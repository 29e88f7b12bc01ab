package scanners

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/user/aiscan/pkg/config"
	"github.com/user/aiscan/pkg/engine"
)

// secretPatterns are substrings that suggest a credential was pasted
// into the config rather than referenced from a secret store.
var secretPatterns = []string{"sk-", "api_", "apikey", "secret", "token"}

// CredentialsScanner checks for tokens and secrets exposed in the config
// document itself.
type CredentialsScanner struct{}

func (CredentialsScanner) Name() string { return "credentials" }

func (CredentialsScanner) Description() string {
	return "Credential and secret detection"
}

func (s CredentialsScanner) Scan(cfg *config.Config) []engine.Finding {
	var findings []engine.Finding

	if token := cfg.Gateway.Token; token != nil {
		redacted := strings.HasPrefix(*token, "REDACTED") ||
			strings.HasPrefix(*token, "***") ||
			*token == "YOUR_TOKEN_HERE" ||
			len(*token) < 10

		if !redacted && len(*token) < 32 {
			findings = append(findings, engine.NewFinding(
				"credentials.weak_gateway_token",
				s.Name(),
				engine.SeverityHigh,
				"Weak Gateway Token in Config",
				"Gateway token is present and appears weak or unredacted",
				"Token could be exposed in config file",
				"Use a strong token (32+ chars) or ensure config is properly secured",
				"gateway.auth.token",
			))
		} else if !redacted {
			findings = append(findings, engine.NewFinding(
				"credentials.token_in_config",
				s.Name(),
				engine.SeverityMedium,
				"Gateway Token in Configuration File",
				"Gateway token is stored directly in config file",
				"Config file should be protected with appropriate permissions",
				"Ensure config file has restricted permissions (600)",
				"gateway.auth.token",
			))
		}
	}

	// Heuristic sweep over the serialized raw tree, reported at most once.
	serialized, err := json.Marshal(cfg.Raw)
	if err == nil {
		lowered := strings.ToLower(string(serialized))
		for _, pattern := range secretPatterns {
			if strings.Contains(lowered, pattern) {
				findings = append(findings, engine.NewFinding(
					"credentials.potential_secret_found",
					s.Name(),
					engine.SeverityHigh,
					"Potential Secret Detected in Config",
					fmt.Sprintf("Found potential secret pattern '%s' in configuration", pattern),
					"Sensitive credentials may be exposed",
					"Review and ensure secrets are properly secured or redacted",
					"config",
				))
				break
			}
		}
	}

	return findings
}

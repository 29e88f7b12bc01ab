package scanners

import (
	"testing"

	"github.com/user/aiscan/pkg/engine"
)

func TestCredentialsWeakToken(t *testing.T) {
	cfg := mustParse(t, `{"gateway": {"auth": {"token": "plaintext123"}}}`)
	f := findByID(t, CredentialsScanner{}.Scan(cfg), "credentials.weak_gateway_token")
	if f.Severity != engine.SeverityHigh {
		t.Errorf("expected high, got %v", f.Severity)
	}
}

func TestCredentialsStrongTokenStillExposed(t *testing.T) {
	cfg := mustParse(t, `{"gateway": {"auth": {"token": "abcdefghijklmnopqrstuvwxyz012345"}}}`)
	findings := CredentialsScanner{}.Scan(cfg)
	if hasFinding(findings, "credentials.weak_gateway_token") {
		t.Error("32-char token should not count as weak")
	}
	if !hasFinding(findings, "credentials.token_in_config") {
		t.Error("plaintext token should still warn about config exposure")
	}
}

func TestCredentialsRedactedTokensIgnored(t *testing.T) {
	for _, token := range []string{"REDACTED", "***hidden***", "YOUR_TOKEN_HERE", "short"} {
		cfg := mustParse(t, `{"gateway": {"auth": {"token": "`+token+`"}}}`)
		findings := CredentialsScanner{}.Scan(cfg)
		if hasFinding(findings, "credentials.weak_gateway_token") ||
			hasFinding(findings, "credentials.token_in_config") {
			t.Errorf("redacted token %q should not produce token findings", token)
		}
	}
}

func TestCredentialsSecretPatternScan(t *testing.T) {
	// The pattern scan covers the whole raw tree, keys included, and
	// reports at most once.
	cfg := mustParse(t, `{"llm": {"apiKey": "sk-aaaa", "backupKey": "sk-bbbb"}}`)
	findings := CredentialsScanner{}.Scan(cfg)

	count := 0
	for _, f := range findings {
		if f.ID == "credentials.potential_secret_found" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one potential_secret_found, got %d", count)
	}
}

func TestCredentialsCleanConfigQuiet(t *testing.T) {
	cfg := mustParse(t, `{"gateway": {"bind": "loopback"}}`)
	if findings := (CredentialsScanner{}).Scan(cfg); len(findings) != 0 {
		t.Errorf("config without credentials should be quiet, got %v", findingIDs(findings))
	}
}

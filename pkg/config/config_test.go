package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseJSON(t *testing.T) {
	content := []byte(`{
		"gateway": {
			"bind": "lan",
			"port": 18789,
			"auth": {"mode": "token", "token": "abc123"},
			"tailscale": {"funnel": true},
			"trustedProxies": []
		},
		"tools": {
			"deny": ["gateway", "cron"],
			"exec": {"host": "gateway", "safeBins": ["ls", "cat"]}
		},
		"agents": {"defaults": {"sandbox": {"mode": "off"}}},
		"session": {"dmScope": "main"}
	}`)

	cfg, err := Parse(content)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Gateway.Bind == nil || *cfg.Gateway.Bind != "lan" {
		t.Errorf("expected bind 'lan', got %v", cfg.Gateway.Bind)
	}
	if cfg.Gateway.Port == nil || *cfg.Gateway.Port != 18789 {
		t.Errorf("expected port 18789, got %v", cfg.Gateway.Port)
	}
	if cfg.Gateway.AuthMode == nil || *cfg.Gateway.AuthMode != "token" {
		t.Errorf("expected auth mode 'token', got %v", cfg.Gateway.AuthMode)
	}
	if cfg.Gateway.TailscaleFunnel == nil || !*cfg.Gateway.TailscaleFunnel {
		t.Errorf("expected tailscale funnel true, got %v", cfg.Gateway.TailscaleFunnel)
	}
	if len(cfg.Tools.Deny) != 2 {
		t.Errorf("expected 2 denied tools, got %v", cfg.Tools.Deny)
	}
	if cfg.Sandbox.Mode == nil || *cfg.Sandbox.Mode != "off" {
		t.Errorf("expected sandbox mode 'off', got %v", cfg.Sandbox.Mode)
	}
	if cfg.Session.DMScope == nil || *cfg.Session.DMScope != "main" {
		t.Errorf("expected dmScope 'main', got %v", cfg.Session.DMScope)
	}
}

func TestParseYAMLFallback(t *testing.T) {
	content := []byte(`
gateway:
  bind: loopback
  auth:
    mode: token
tools:
  elevated:
    enabled: true
`)

	cfg, err := Parse(content)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Gateway.Bind == nil || *cfg.Gateway.Bind != "loopback" {
		t.Errorf("expected bind 'loopback', got %v", cfg.Gateway.Bind)
	}
	if cfg.Tools.ElevatedEnabled == nil || !*cfg.Tools.ElevatedEnabled {
		t.Errorf("expected elevated enabled true, got %v", cfg.Tools.ElevatedEnabled)
	}
}

func TestParseInvalidBothFormats(t *testing.T) {
	_, err := Parse([]byte("{not json: [and not yaml"))
	if err == nil {
		t.Fatal("expected error for unparseable content")
	}
	if !strings.Contains(err.Error(), "JSON") || !strings.Contains(err.Error(), "YAML") {
		t.Errorf("error should name both parse attempts, got: %v", err)
	}
}

func TestParseNonObjectRoot(t *testing.T) {
	cfg, err := Parse([]byte(`[1, 2, 3]`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Raw == nil || len(cfg.Raw) != 0 {
		t.Errorf("non-object root should project to empty tree, got %v", cfg.Raw)
	}
}

func TestParseEmptyObject(t *testing.T) {
	cfg, err := Parse([]byte(`{}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Gateway.Bind != nil || cfg.Sandbox.Mode != nil || cfg.Session.DMScope != nil {
		t.Error("empty config should leave all optional fields unset")
	}
	if len(cfg.Channels) != 0 {
		t.Errorf("expected no channels, got %v", cfg.Channels)
	}
}

func TestNilVersusEmptySlice(t *testing.T) {
	// Absent array stays nil; present empty array projects non-nil.
	cfg, err := Parse([]byte(`{"tools": {"deny": []}, "gateway": {}}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Tools.Deny == nil {
		t.Error("configured empty deny list should be non-nil")
	}
	if cfg.Gateway.TrustedProxies != nil {
		t.Error("absent trustedProxies should be nil")
	}
}

func TestMisshapedValuesDegradeToUnset(t *testing.T) {
	cfg, err := Parse([]byte(`{"gateway": {"bind": 42, "auth": "nope"}}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Gateway.Bind != nil {
		t.Errorf("non-string bind should stay unset, got %v", *cfg.Gateway.Bind)
	}
	if cfg.Gateway.AuthMode != nil {
		t.Error("auth section of wrong type should leave mode unset")
	}
}

func TestEnabledChannelCount(t *testing.T) {
	cfg, err := Parse([]byte(`{
		"channels": {
			"telegram": {"enabled": true},
			"discord": {"enabled": true},
			"slack": {"enabled": false},
			"whatsapp": {"dmPolicy": "open"}
		}
	}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := cfg.EnabledChannelCount(); got != 2 {
		t.Errorf("expected 2 enabled channels, got %d", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"gateway": {"bind": "loopback"}}`), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Gateway.Bind == nil || *cfg.Gateway.Bind != "loopback" {
		t.Errorf("expected bind 'loopback', got %v", cfg.Gateway.Bind)
	}
}

package scanners

import (
	"testing"

	"github.com/user/aiscan/pkg/engine"
)

func TestInjectionAlwaysEmitsInfo(t *testing.T) {
	cfg := mustParse(t, `{}`)
	findings := InjectionScanner{}.Scan(cfg)
	if len(findings) != 1 || findings[0].ID != "injection.info" {
		t.Errorf("hardened config should only produce the info note, got %v", findingIDs(findings))
	}
	if findings[0].Severity != engine.SeverityInfo {
		t.Errorf("expected info severity, got %v", findings[0].Severity)
	}
}

func TestInjectionSandboxOffPlusWeb(t *testing.T) {
	cfg := mustParse(t, `{
		"agents": {"defaults": {"sandbox": {"mode": "off"}}},
		"tools": {"webFetch": {"ssrfPolicy": "strict"}}
	}`)
	if !hasFinding(InjectionScanner{}.Scan(cfg), "injection.sandbox_off_plus_web") {
		t.Error("sandbox off with web tools configured should be flagged")
	}

	// Web tools not configured at all: chain incomplete.
	cfg = mustParse(t, `{"agents": {"defaults": {"sandbox": {"mode": "off"}}}}`)
	if hasFinding(InjectionScanner{}.Scan(cfg), "injection.sandbox_off_plus_web") {
		t.Error("sandbox off without web tools should not be flagged")
	}
}

func TestInjectionWorkspacePlusExec(t *testing.T) {
	cfg := mustParse(t, `{
		"agents": {"defaults": {"sandbox": {"workspaceAccess": "rw"}}},
		"tools": {"exec": {"host": "gateway"}}
	}`)
	if !hasFinding(InjectionScanner{}.Scan(cfg), "injection.workspace_plus_exec") {
		t.Error("workspace access with exec should be flagged")
	}

	cfg = mustParse(t, `{
		"agents": {"defaults": {"sandbox": {"workspaceAccess": "none"}}},
		"tools": {"exec": {"host": "gateway"}}
	}`)
	if hasFinding(InjectionScanner{}.Scan(cfg), "injection.workspace_plus_exec") {
		t.Error("workspaceAccess none should break the chain")
	}
}

func TestInjectionSessionsSpawnPlusMemory(t *testing.T) {
	cfg := mustParse(t, `{"memory": {"backend": "sqlite"}}`)
	if !hasFinding(InjectionScanner{}.Scan(cfg), "injection.sessions_spawn_plus_memory") {
		t.Error("undenied sessions_spawn with memory section should be flagged")
	}

	cfg = mustParse(t, `{
		"memory": {"backend": "sqlite"},
		"tools": {"deny": ["sessions_spawn"]}
	}`)
	if hasFinding(InjectionScanner{}.Scan(cfg), "injection.sessions_spawn_plus_memory") {
		t.Error("denied sessions_spawn should break the chain")
	}
}

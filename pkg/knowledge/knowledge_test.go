package knowledge

import "testing"

func TestGetReturnsSameInstance(t *testing.T) {
	if Get() != Get() {
		t.Fatal("Get should return the same instance every time")
	}
}

func TestCVELookup(t *testing.T) {
	kb := Get()

	entry, ok := kb.CVE("CVE-2026-25593")
	if !ok {
		t.Fatal("CVE-2026-25593 should be present")
	}
	if entry.Severity != "critical" {
		t.Errorf("expected critical, got %q", entry.Severity)
	}

	if _, ok := kb.CVE("CVE-0000-0000"); ok {
		t.Error("unknown CVE should not be found")
	}
}

func TestMitigation(t *testing.T) {
	kb := Get()
	m, ok := kb.Mitigation("CVE-2026-26322")
	if !ok || m == "" {
		t.Error("known CVE should have a mitigation")
	}
	if _, ok := kb.Mitigation("CVE-0000-0000"); ok {
		t.Error("unknown CVE should have no mitigation")
	}
}

func TestPatternLookup(t *testing.T) {
	kb := Get()
	for _, name := range []string{"unsafe_cliPath", "sandbox_mode_off", "lan_bind_no_auth", "weak_token"} {
		if _, ok := kb.Pattern(name); !ok {
			t.Errorf("pattern %q should be present", name)
		}
	}
}

func TestPatchedVersions(t *testing.T) {
	patched := Get().PatchedVersions()

	// Only CVEs with a "<version" predicate appear.
	want := map[string]string{
		"CVE-2026-26322": "2026.2.14",
		"CVE-2026-25593": "2026.2.15",
		"CVE-2026-24763": "2026.2.13",
	}
	if len(patched) != len(want) {
		t.Fatalf("expected %d entries, got %v", len(want), patched)
	}
	for id, min := range want {
		if patched[id] != min {
			t.Errorf("%s: expected %s, got %s", id, min, patched[id])
		}
	}
}

func TestIsAffected(t *testing.T) {
	kb := Get()

	if !kb.IsAffected("CVE-2026-26322", "2026.2.10") {
		t.Error("2026.2.10 should be affected by CVE-2026-26322")
	}
	if kb.IsAffected("CVE-2026-26322", "2026.2.14") {
		t.Error("patched version should not be affected")
	}
	if kb.IsAffected("CVE-2025-XXXXX", "2026.2.10") {
		t.Error("non-predicate CVE never matches")
	}
	if kb.IsAffected("CVE-0000-0000", "1.0") {
		t.Error("unknown CVE never matches")
	}
}

package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/user/aiscan/pkg/engine"
)

func sampleResult() *engine.ScanResult {
	r := engine.NewScanResult()
	r.AddFinding(engine.NewFinding("tools.web_fetch_no_ssrf", "tools", engine.SeverityMedium,
		"Web Fetch SSRF Protection Not Strict", "d", "i", "r", "tools.webFetch.ssrfPolicy"))
	r.AddFinding(engine.NewFinding("gateway.auth_none", "gateway", engine.SeverityCritical,
		"Gateway Authentication Disabled", "d", "i", "r", "gateway.auth.mode").
		WithCVE("CVE-2026-26322"))
	r.AddFinding(engine.NewFinding("gateway.weak_token", "gateway", engine.SeverityHigh,
		"Weak Gateway Token", "d", "i", "r", "gateway.auth.token"))
	return r
}

func TestSortedFindings(t *testing.T) {
	sorted := SortedFindings(sampleResult().Findings)

	var sevs []engine.Severity
	for _, f := range sorted {
		sevs = append(sevs, f.Severity)
	}
	for i := 1; i < len(sevs); i++ {
		if sevs[i] > sevs[i-1] {
			t.Fatalf("not sorted most severe first: %v", sevs)
		}
	}

	// Input order untouched.
	if sampleResult().Findings[0].Severity != engine.SeverityMedium {
		t.Error("SortedFindings must not mutate its input")
	}
}

func TestRenderJSON(t *testing.T) {
	out, err := RenderJSON(sampleResult())
	if err != nil {
		t.Fatalf("RenderJSON failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	for _, key := range []string{"findings", "health_score", "scan_time_seconds"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing top-level key %q", key)
		}
	}
	if decoded["health_score"].(float64) != 50 {
		t.Errorf("expected health_score 50, got %v", decoded["health_score"])
	}
}

func TestRenderConsole(t *testing.T) {
	out := RenderConsole(sampleResult(), false)

	if !strings.Contains(out, "Critical: 1 | High: 1 | Total: 3") {
		t.Errorf("missing summary line:\n%s", out)
	}
	if !strings.Contains(out, "CVE-2026-26322") {
		t.Errorf("CVE column missing:\n%s", out)
	}
	if strings.Contains(out, "Finding Details") {
		t.Error("details section should only render with verbose")
	}

	verbose := RenderConsole(sampleResult(), true)
	if !strings.Contains(verbose, "Finding Details") || !strings.Contains(verbose, "gateway.auth.mode") {
		t.Errorf("verbose output missing details:\n%s", verbose)
	}
}

func TestRenderConsoleClean(t *testing.T) {
	out := RenderConsole(engine.NewScanResult(), false)
	if !strings.Contains(out, "No security issues found!") {
		t.Errorf("clean result should celebrate:\n%s", out)
	}
}

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown(sampleResult())

	if !strings.Contains(out, "**Health Score:** 50/100") {
		t.Errorf("missing score line:\n%s", out)
	}
	// Most severe first.
	critical := strings.Index(out, "Gateway Authentication Disabled")
	medium := strings.Index(out, "Web Fetch SSRF")
	if critical == -1 || medium == -1 || critical > medium {
		t.Errorf("findings not ordered by severity:\n%s", out)
	}
	if !strings.Contains(out, "**CVE:** CVE-2026-26322") {
		t.Errorf("CVE line missing:\n%s", out)
	}
}

func TestRenderHTML(t *testing.T) {
	out := RenderHTML(sampleResult())

	if !strings.Contains(out, "<!DOCTYPE html>") {
		t.Error("missing doctype")
	}
	if !strings.Contains(out, `class="finding critical"`) {
		t.Errorf("critical finding should carry its severity class:\n%s", out)
	}
	if !strings.Contains(out, "score-low") {
		t.Error("score 50 should use the low score class")
	}
	if !strings.Contains(out, "<span class='cve'>CVE-2026-26322</span>") {
		t.Error("CVE tag missing")
	}
}

func TestRenderHTMLEscapesContent(t *testing.T) {
	r := engine.NewScanResult()
	r.AddFinding(engine.NewFinding("x", "m", engine.SeverityLow,
		"<script>alert(1)</script>", "d", "i", "r", "p"))

	out := RenderHTML(r)
	if strings.Contains(out, "<script>alert(1)</script>") {
		t.Error("finding text must be HTML-escaped")
	}
}

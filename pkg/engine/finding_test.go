package engine

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityWeights(t *testing.T) {
	assert.Equal(t, -25, SeverityCritical.Weight())
	assert.Equal(t, -15, SeverityHigh.Weight())
	assert.Equal(t, -10, SeverityMedium.Weight())
	assert.Equal(t, -5, SeverityLow.Weight())
	assert.Equal(t, -2, SeverityInfo.Weight())
}

func TestSeverityOrdering(t *testing.T) {
	assert.True(t, SeverityCritical > SeverityHigh)
	assert.True(t, SeverityHigh > SeverityMedium)
	assert.True(t, SeverityMedium > SeverityLow)
	assert.True(t, SeverityLow > SeverityInfo)
}

func TestSeverityJSONRoundTrip(t *testing.T) {
	for _, sev := range []Severity{SeverityInfo, SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical} {
		data, err := json.Marshal(sev)
		require.NoError(t, err)

		var back Severity
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, sev, back)
	}

	var sev Severity
	assert.Error(t, json.Unmarshal([]byte(`"bogus"`), &sev))
}

func TestAddFindingScoring(t *testing.T) {
	r := NewScanResult()
	assert.Equal(t, 100, r.HealthScore)

	r.AddFinding(Finding{ID: "a", Severity: SeverityCritical})
	assert.Equal(t, 75, r.HealthScore)

	r.AddFinding(Finding{ID: "b", Severity: SeverityHigh})
	assert.Equal(t, 60, r.HealthScore)
}

func TestScoreClampsAtZero(t *testing.T) {
	r := NewScanResult()
	for i := 0; i < 10; i++ {
		r.AddFinding(Finding{Severity: SeverityCritical})
	}
	assert.Equal(t, 0, r.HealthScore)
	assert.Len(t, r.Findings, 10)
}

func TestScoreNeverIncreases(t *testing.T) {
	r := NewScanResult()
	prev := r.HealthScore
	for i := 0; i < 30; i++ {
		r.AddFinding(Finding{Severity: Severity(rand.Intn(5))})
		assert.LessOrEqual(t, r.HealthScore, prev)
		prev = r.HealthScore
	}
}

func TestScoreFindingsMatchesIncremental(t *testing.T) {
	findings := []Finding{
		{Severity: SeverityCritical},
		{Severity: SeverityCritical},
		{Severity: SeverityCritical},
		{Severity: SeverityCritical},
		{Severity: SeverityHigh},
		{Severity: SeverityInfo},
	}

	r := NewScanResult()
	for _, f := range findings {
		r.AddFinding(f)
	}
	assert.Equal(t, ScoreFindings(findings), r.HealthScore)

	// Order does not matter: shuffle and rescore.
	for trial := 0; trial < 5; trial++ {
		shuffled := make([]Finding, len(findings))
		copy(shuffled, findings)
		rand.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		assert.Equal(t, r.HealthScore, ScoreFindings(shuffled))
	}
}

func TestSeverityCounts(t *testing.T) {
	r := NewScanResult()
	r.AddFinding(Finding{Severity: SeverityCritical})
	r.AddFinding(Finding{Severity: SeverityCritical})
	r.AddFinding(Finding{Severity: SeverityHigh})
	r.AddFinding(Finding{Severity: SeverityLow})

	assert.Equal(t, 2, r.CriticalCount())
	assert.Equal(t, 1, r.HighCount())
}

func TestFindingJSONKeys(t *testing.T) {
	f := NewFinding("gateway.auth_none", "gateway", SeverityCritical,
		"No Authentication", "desc", "impact", "fix it", "gateway.auth.mode").
		WithCVE("CVE-2026-25593")

	data, err := json.Marshal(f)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))

	assert.Equal(t, "gateway.auth_none", m["id"])
	assert.Equal(t, "critical", m["severity"])
	assert.Equal(t, "gateway.auth.mode", m["config_path"])
	assert.Equal(t, "CVE-2026-25593", m["cve"])

	// cve is omitted when absent.
	data, err = json.Marshal(NewFinding("x", "m", SeverityInfo, "t", "d", "i", "r", "p"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "cve")
}

package engine

import (
	"encoding/json"
	"fmt"
)

// Severity levels, ordered from least to most severe so that
// comparisons like sev >= SeverityHigh do the right thing.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// Weight is the health-score delta contributed by one finding of this severity.
// All weights are non-positive: a finding can never raise the score.
func (s Severity) Weight() int {
	switch s {
	case SeverityCritical:
		return -25
	case SeverityHigh:
		return -15
	case SeverityMedium:
		return -10
	case SeverityLow:
		return -5
	default:
		return -2
	}
}

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	case SeverityLow:
		return "low"
	default:
		return "info"
	}
}

func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "critical":
		*s = SeverityCritical
	case "high":
		*s = SeverityHigh
	case "medium":
		*s = SeverityMedium
	case "low":
		*s = SeverityLow
	case "info":
		*s = SeverityInfo
	default:
		return fmt.Errorf("unknown severity %q", name)
	}
	return nil
}

// Finding represents one detected configuration condition. Findings are
// value types and treated as immutable once built.
type Finding struct {
	ID          string   `json:"id"`
	Module      string   `json:"module"`
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Impact      string   `json:"impact"`
	Remediation string   `json:"remediation"`
	ConfigPath  string   `json:"config_path"`
	CVE         string   `json:"cve,omitempty"`
}

// NewFinding builds a finding without a CVE reference.
func NewFinding(id, module string, severity Severity, title, description, impact, remediation, configPath string) Finding {
	return Finding{
		ID:          id,
		Module:      module,
		Severity:    severity,
		Title:       title,
		Description: description,
		Impact:      impact,
		Remediation: remediation,
		ConfigPath:  configPath,
	}
}

// WithCVE returns a copy of the finding carrying a CVE reference.
// CVE identifiers are opaque strings and are not validated.
func (f Finding) WithCVE(cve string) Finding {
	f.CVE = cve
	return f
}

// ScanResult is the outcome of a full scan: the retained findings in
// append order, the running health score and the elapsed wall time.
type ScanResult struct {
	Findings        []Finding `json:"findings"`
	HealthScore     int       `json:"health_score"`
	ScanTimeSeconds float64   `json:"scan_time_seconds"`
}

// NewScanResult starts from a perfect score with no findings.
func NewScanResult() *ScanResult {
	return &ScanResult{
		Findings:    make([]Finding, 0),
		HealthScore: 100,
	}
}

// AddFinding appends a finding and applies its severity weight to the
// health score, clamping to [0,100] after each append. Because weights
// are uniformly non-positive this is equivalent to ScoreFindings over
// the final set.
func (r *ScanResult) AddFinding(f Finding) {
	r.HealthScore += f.Severity.Weight()
	if r.HealthScore < 0 {
		r.HealthScore = 0
	}
	if r.HealthScore > 100 {
		r.HealthScore = 100
	}
	r.Findings = append(r.Findings, f)
}

// CriticalCount returns the number of critical findings.
func (r *ScanResult) CriticalCount() int {
	return r.countSeverity(SeverityCritical)
}

// HighCount returns the number of high findings.
func (r *ScanResult) HighCount() int {
	return r.countSeverity(SeverityHigh)
}

func (r *ScanResult) countSeverity(s Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == s {
			n++
		}
	}
	return n
}

// ScoreFindings computes the health score for a finding set in one pass:
// 100 plus the sum of all weights, clamped to [0,100].
func ScoreFindings(findings []Finding) int {
	score := 100
	for _, f := range findings {
		score += f.Severity.Weight()
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

package engine

import (
	"time"

	"github.com/user/aiscan/pkg/config"
	"github.com/user/aiscan/pkg/logx"
)

// Scanner is a stateless security check over a parsed config. Scanners
// perform no I/O, never mutate the config and never depend on another
// scanner's output.
type Scanner interface {
	Name() string
	Description() string
	Scan(cfg *config.Config) []Finding
}

// SeverityFilter selects which findings a scan keeps.
type SeverityFilter int

const (
	FilterAll SeverityFilter = iota
	FilterHighOrAbove
	FilterCriticalOnly
)

// ParseSeverityFilter maps a CLI value to a filter. Unknown values fall
// back to keeping everything.
func ParseSeverityFilter(s string) SeverityFilter {
	switch s {
	case "critical":
		return FilterCriticalOnly
	case "high":
		return FilterHighOrAbove
	default:
		return FilterAll
	}
}

func (f SeverityFilter) keeps(s Severity) bool {
	switch f {
	case FilterCriticalOnly:
		return s == SeverityCritical
	case FilterHighOrAbove:
		return s >= SeverityHigh
	default:
		return true
	}
}

// Run evaluates every scanner in registration order against the config,
// keeps findings passing the filter, and returns the scored result.
// Scanners cannot fail by construction: all config access is get-or-absent.
func Run(cfg *config.Config, scanners []Scanner, filter SeverityFilter) *ScanResult {
	start := time.Now()
	result := NewScanResult()

	for _, sc := range scanners {
		findings := sc.Scan(cfg)
		logx.Debugf("scanner %s produced %d finding(s)", sc.Name(), len(findings))
		for _, f := range findings {
			if filter.keeps(f.Severity) {
				result.AddFinding(f)
			}
		}
	}

	result.ScanTimeSeconds = time.Since(start).Seconds()
	return result
}

package engine

import (
	"encoding/json"
	"os"
)

const DefaultBaselinePath = ".aiscan-baseline.json"

// BaselineDiff categorizes current findings against a previously saved scan.
type BaselineDiff struct {
	New       []Finding
	Fixed     []Finding
	Unchanged []Finding
}

// SaveBaseline writes the scan result as a baseline file for future comparison.
func SaveBaseline(path string, r *ScanResult) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadBaseline reads a previously saved scan result.
func LoadBaseline(path string) (*ScanResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r ScanResult
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Compare matches current findings to a baseline by finding id.
// Findings only in the current result are New, only in the baseline are
// Fixed, and present in both are Unchanged.
func (r *ScanResult) Compare(baseline *ScanResult) BaselineDiff {
	var diff BaselineDiff

	baseIDs := make(map[string]bool, len(baseline.Findings))
	for _, f := range baseline.Findings {
		baseIDs[f.ID] = true
	}
	currentIDs := make(map[string]bool, len(r.Findings))
	for _, f := range r.Findings {
		currentIDs[f.ID] = true
	}

	for _, f := range r.Findings {
		if baseIDs[f.ID] {
			diff.Unchanged = append(diff.Unchanged, f)
		} else {
			diff.New = append(diff.New, f)
		}
	}
	for _, f := range baseline.Findings {
		if !currentIDs[f.ID] {
			diff.Fixed = append(diff.Fixed, f)
		}
	}

	return diff
}

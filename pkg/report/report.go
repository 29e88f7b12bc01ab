// Package report renders scan results as console, JSON, markdown, or
// HTML output.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/user/aiscan/pkg/engine"
)

// SortedFindings returns a copy of the findings ordered most severe
// first. The sort is stable so findings of equal severity keep their
// scan order.
func SortedFindings(findings []engine.Finding) []engine.Finding {
	sorted := make([]engine.Finding, len(findings))
	copy(sorted, findings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Severity > sorted[j].Severity
	})
	return sorted
}

// RenderJSON returns the scan result as indented JSON.
func RenderJSON(result *engine.ScanResult) (string, error) {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize results: %w", err)
	}
	return string(out), nil
}

// Emit writes content to outputPath, or to stdout when outputPath is
// empty.
func Emit(content, outputPath string) error {
	if outputPath == "" {
		fmt.Println(content)
		return nil
	}
	if err := os.WriteFile(outputPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Printf("OK Results written to: %s\n", outputPath)
	return nil
}

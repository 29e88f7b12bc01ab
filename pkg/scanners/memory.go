package scanners

import (
	"fmt"
	"strings"

	"github.com/user/aiscan/pkg/config"
	"github.com/user/aiscan/pkg/engine"
)

// MemoryScanner checks memory and context handling: backend choice,
// transcript retention, and whether embeddings or search leave the
// machine.
type MemoryScanner struct{}

func (MemoryScanner) Name() string { return "memory" }

func (MemoryScanner) Description() string {
	return "Memory and context handling security"
}

func (s MemoryScanner) Scan(cfg *config.Config) []engine.Finding {
	var findings []engine.Finding

	memory := rawMap(cfg.Raw, "memory")
	if len(memory) == 0 {
		return findings
	}

	if backend, ok := rawString(memory, "backend"); ok && backend == "qmd" {
		findings = append(findings, engine.NewFinding(
			"memory.qmd_backend",
			s.Name(),
			engine.SeverityMedium,
			"QMD Memory Backend",
			"Using QMD (Query-Metadata-Description) memory backend",
			"May have different isolation characteristics than SQLite",
			"Review QMD security properties",
			"memory.backend",
		))
	}

	if retention, ok := rawString(memory, "transcriptRetention"); ok {
		if retention == "forever" || retention == "infinite" {
			findings = append(findings, engine.NewFinding(
				"memory.transcript_forever",
				s.Name(),
				engine.SeverityMedium,
				"Unlimited Transcript Retention",
				fmt.Sprintf("Transcript retention is '%s'", retention),
				"Conversation history stored indefinitely",
				"Set to finite period (e.g., '30d')",
				"memory.transcriptRetention",
			))
		}
	}

	if embedding, ok := rawString(memory, "embeddingModel"); ok {
		if !strings.HasPrefix(embedding, "local:") && !strings.HasPrefix(embedding, "ollama:") {
			findings = append(findings, engine.NewFinding(
				"memory.external_embedding",
				s.Name(),
				engine.SeverityLow,
				"External Embedding Model",
				fmt.Sprintf("Using external embedding: %s", embedding),
				"Memory data sent to external API",
				"Consider local embeddings for sensitive data",
				"memory.embeddingModel",
			))
		}
	}

	if search, ok := rawString(memory, "searchProvider"); ok {
		if search != "local" && search != "fuse" {
			findings = append(findings, engine.NewFinding(
				"memory.external_search",
				s.Name(),
				engine.SeverityLow,
				"External Memory Search",
				fmt.Sprintf("Using external search: %s", search),
				"Memory queries sent to external service",
				"Consider local search for privacy",
				"memory.searchProvider",
			))
		}
	}

	return findings
}

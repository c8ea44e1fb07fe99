package types

import "time"

// AuditRecord is one immutable record written per pipeline run. Records are
// append-only and never updated after write; they exist for drift monitoring.
type AuditRecord struct {
	RunID            string       `json:"run_id"`
	InputHashes      InputHashes  `json:"input_hashes"`
	RawScore         int          `json:"raw_score"`
	FinalScore       int          `json:"final_score"`
	Corrections      []Correction `json:"corrections"`
	ValidationErrors []string     `json:"validation_errors"`
	LatencyMS        int64        `json:"latency_ms"`
	CreatedAt        time.Time    `json:"created_at"`
}

// InputHashes identifies a run's inputs without storing them.
type InputHashes struct {
	Resume         string `json:"resume"`
	JobDescription string `json:"job_description"`
}

package entities

import (
	"superviseme/domain/core/valueobjects"
)

// ResearchAreaAssignment is one classifier assignment of a supervisor to a
// top-level research area, with the evidence that backs it
type ResearchAreaAssignment struct {
	TopLevel      string                  `json:"top_level" validate:"required"`
	Confidence    valueobjects.Confidence `json:"confidence" validate:"required,oneof=high medium low"`
	EvidenceCount int                     `json:"evidence_count" validate:"gte=0"`
	Subcategories []string                `json:"subcategories"`
}

// ProcessingInfo carries metadata the upstream pipeline recorded per record
type ProcessingInfo struct {
	ThesisCount int `json:"thesis_count"`
}

// SupervisorRecord is one row of the classification dataset. Records are
// immutable once loaded; everything the application serves is derived from
// them.
type SupervisorRecord struct {
	ProfessorName        string                   `json:"professor_name" validate:"required"`
	PrimaryResearchAreas []ResearchAreaAssignment `json:"primary_research_areas" validate:"dive"`
	AnalysisSummary      string                   `json:"analysis_summary"`
	ProcessingInfo       *ProcessingInfo          `json:"processing_info,omitempty"`
	ProcessingTimestamp  string                   `json:"processing_timestamp,omitempty"`

	// Error is set on rows the upstream pipeline failed to classify.
	Error string `json:"error,omitempty"`
}

// Classified reports whether the record carries usable assignments.
// Unclassified rows are expected in the dataset and are skipped, not errors.
func (r *SupervisorRecord) Classified() bool {
	return r.Error == "" && len(r.PrimaryResearchAreas) > 0
}

// ThesisCount returns the number of theses behind this record, zero when the
// pipeline recorded none
func (r *SupervisorRecord) ThesisCount() int {
	if r.ProcessingInfo == nil {
		return 0
	}
	return r.ProcessingInfo.ThesisCount
}

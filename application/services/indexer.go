package services

import (
	"sort"

	"superviseme/domain/core/entities"
	apperrors "superviseme/pkg/errors"
)

// Indexer transforms the flat per-supervisor classification records into the
// normalized cluster index everything else reads. Pure: the same records
// always yield the same index and the input is never touched.
type Indexer struct{}

// NewIndexer creates a new indexer
func NewIndexer() *Indexer {
	return &Indexer{}
}

// BuildIndex groups records by top-level research area. A record contributes
// one SupervisorSummary per assignment; records without assignments are
// expected (some supervisors had no thesis data) and are skipped silently.
// An empty input mapping signals an upstream load failure and is rejected.
func (ix *Indexer) BuildIndex(records map[string]*entities.SupervisorRecord) (map[string]*entities.ClusterEntry, error) {
	if len(records) == 0 {
		return nil, apperrors.NewEmptyDatasetError()
	}

	index := make(map[string]*entities.ClusterEntry)

	for _, record := range sortedRecords(records) {
		if !record.Classified() {
			continue
		}

		for _, assignment := range record.PrimaryResearchAreas {
			entry, exists := index[assignment.TopLevel]
			if !exists {
				entry = entities.NewClusterEntry(assignment.TopLevel)
				index[assignment.TopLevel] = entry
			}

			entry.Add(entities.SupervisorSummary{
				Name:          record.ProfessorName,
				Confidence:    assignment.Confidence,
				EvidenceCount: assignment.EvidenceCount,
				Subcategories: assignment.Subcategories,
				ThesisCount:   record.ThesisCount(),
				Timestamp:     record.ProcessingTimestamp,
			})
		}
	}

	for _, entry := range index {
		entry.Finalize()
	}

	return index, nil
}

// sortedRecords fixes the encounter order before the stable sort inside
// Finalize, so tie-breaking is deterministic across runs even though the
// input is a map
func sortedRecords(records map[string]*entities.SupervisorRecord) []*entities.SupervisorRecord {
	keys := make([]string, 0, len(records))
	for key := range records {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	ordered := make([]*entities.SupervisorRecord, 0, len(records))
	for _, key := range keys {
		if records[key] != nil {
			ordered = append(ordered, records[key])
		}
	}
	return ordered
}

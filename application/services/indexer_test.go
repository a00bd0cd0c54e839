package services_test

import (
	"testing"

	"superviseme/application/services"
	"superviseme/domain/core/entities"
	"superviseme/domain/core/valueobjects"
	apperrors "superviseme/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() map[string]*entities.SupervisorRecord {
	return map[string]*entities.SupervisorRecord{
		"alice": {
			ProfessorName: "Dr. Alice Smith",
			PrimaryResearchAreas: []entities.ResearchAreaAssignment{
				{TopLevel: "Systems", Confidence: valueobjects.ConfidenceHigh, EvidenceCount: 8, Subcategories: []string{"Networking", "OS"}},
				{TopLevel: "Security", Confidence: valueobjects.ConfidenceMedium, EvidenceCount: 3, Subcategories: []string{"Cryptography"}},
			},
			ProcessingInfo: &entities.ProcessingInfo{ThesisCount: 12},
		},
		"bob": {
			ProfessorName: "Dr. Bob Jones",
			PrimaryResearchAreas: []entities.ResearchAreaAssignment{
				{TopLevel: "Systems", Confidence: valueobjects.ConfidenceLow, EvidenceCount: 2, Subcategories: []string{"OS"}},
			},
		},
		"carol": {
			ProfessorName: "Dr. Carol White",
			Error:         "thesis corpus unavailable",
		},
		"dave": {
			ProfessorName: "Dr. Dave Brown",
			// No assignments: present in the dataset but never classified
		},
	}
}

func TestIndexer_BuildIndex(t *testing.T) {
	// Act
	index, err := services.NewIndexer().BuildIndex(testRecords())
	require.NoError(t, err)

	// Assert: one cluster per distinct top-level area of classified records
	require.Len(t, index, 2)

	systems := index["Systems"]
	require.NotNil(t, systems)
	assert.Equal(t, 2, systems.TotalSupervisors)
	assert.Equal(t, 1, systems.HighConfidence)
	assert.Equal(t, []string{"Networking", "OS"}, systems.Subcategories)

	// Alice leads on confidence
	assert.Equal(t, "Dr. Alice Smith", systems.Supervisors[0].Name)
	assert.Equal(t, 12, systems.Supervisors[0].ThesisCount)

	security := index["Security"]
	require.NotNil(t, security)
	assert.Equal(t, 1, security.TotalSupervisors)
	assert.Equal(t, 1, security.MediumConfidence)
}

func TestIndexer_SkipsUnclassifiedRecords(t *testing.T) {
	index, err := services.NewIndexer().BuildIndex(testRecords())
	require.NoError(t, err)

	for _, entry := range index {
		for _, s := range entry.Supervisors {
			assert.NotEqual(t, "Dr. Carol White", s.Name)
			assert.NotEqual(t, "Dr. Dave Brown", s.Name)
		}
	}
}

func TestIndexer_MultiAreaSupervisorAppearsInEachCluster(t *testing.T) {
	index, err := services.NewIndexer().BuildIndex(testRecords())
	require.NoError(t, err)

	// Alice has two assignments, so she counts once per cluster
	total := 0
	for _, entry := range index {
		total += entry.TotalSupervisors
	}
	assert.Equal(t, 3, total)
}

func TestIndexer_EmptyDatasetRejected(t *testing.T) {
	_, err := services.NewIndexer().BuildIndex(nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeEmptyDataset))

	_, err = services.NewIndexer().BuildIndex(map[string]*entities.SupervisorRecord{})
	assert.Error(t, err)
}

func TestIndexer_Deterministic(t *testing.T) {
	ix := services.NewIndexer()

	first, err := ix.BuildIndex(testRecords())
	require.NoError(t, err)
	second, err := ix.BuildIndex(testRecords())
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for name, entry := range first {
		other := second[name]
		require.NotNil(t, other)
		assert.Equal(t, entry.Subcategories, other.Subcategories)
		require.Len(t, other.Supervisors, len(entry.Supervisors))
		for i := range entry.Supervisors {
			assert.Equal(t, entry.Supervisors[i].Name, other.Supervisors[i].Name)
		}
	}
}

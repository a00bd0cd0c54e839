package entities_test

import (
	"testing"

	"superviseme/domain/core/entities"
	"superviseme/domain/core/valueobjects"

	"github.com/stretchr/testify/assert"
)

func TestClusterEntry_AddMaintainsCounters(t *testing.T) {
	// Arrange
	entry := entities.NewClusterEntry("Systems")

	// Act
	entry.Add(entities.SupervisorSummary{Name: "Alice", Confidence: valueobjects.ConfidenceHigh, Subcategories: []string{"Networking"}})
	entry.Add(entities.SupervisorSummary{Name: "Bob", Confidence: valueobjects.ConfidenceMedium, Subcategories: []string{"OS", "Networking"}})
	entry.Add(entities.SupervisorSummary{Name: "Carol", Confidence: valueobjects.ConfidenceLow, Subcategories: []string{"OS"}})
	entry.Finalize()

	// Assert
	assert.Equal(t, 3, entry.TotalSupervisors)
	assert.Equal(t, 1, entry.HighConfidence)
	assert.Equal(t, 1, entry.MediumConfidence)
	assert.Equal(t, []string{"Networking", "OS"}, entry.Subcategories)
}

func TestClusterEntry_FinalizeOrdersSupervisors(t *testing.T) {
	// Arrange: out of order on purpose
	entry := entities.NewClusterEntry("Theory")
	entry.Add(entities.SupervisorSummary{Name: "LowEv", Confidence: valueobjects.ConfidenceHigh, EvidenceCount: 2})
	entry.Add(entities.SupervisorSummary{Name: "Medium", Confidence: valueobjects.ConfidenceMedium, EvidenceCount: 9})
	entry.Add(entities.SupervisorSummary{Name: "HighEv", Confidence: valueobjects.ConfidenceHigh, EvidenceCount: 7})

	// Act
	entry.Finalize()

	// Assert: confidence descending, then evidence descending
	names := make([]string, 0, len(entry.Supervisors))
	for _, s := range entry.Supervisors {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"HighEv", "LowEv", "Medium"}, names)
}

func TestClusterEntry_FinalizeIsStableOnTies(t *testing.T) {
	entry := entities.NewClusterEntry("Theory")
	entry.Add(entities.SupervisorSummary{Name: "First", Confidence: valueobjects.ConfidenceHigh, EvidenceCount: 5})
	entry.Add(entities.SupervisorSummary{Name: "Second", Confidence: valueobjects.ConfidenceHigh, EvidenceCount: 5})

	entry.Finalize()

	assert.Equal(t, "First", entry.Supervisors[0].Name)
	assert.Equal(t, "Second", entry.Supervisors[1].Name)
}

func TestClusterEntry_WithSupervisorsKeepsFieldLevelData(t *testing.T) {
	// Arrange
	entry := entities.NewClusterEntry("Systems")
	entry.Add(entities.SupervisorSummary{Name: "Alice", Confidence: valueobjects.ConfidenceHigh, Subcategories: []string{"Networking"}})
	entry.Add(entities.SupervisorSummary{Name: "Bob", Confidence: valueobjects.ConfidenceLow, Subcategories: []string{"OS"}})
	entry.Finalize()

	// Act: keep only Alice
	subset := entry.WithSupervisors(entry.Supervisors[:1])

	// Assert: counters and subcategories describe the whole field, not the
	// subset; only the supervisor list and its length change
	assert.Equal(t, 1, subset.TotalSupervisors)
	assert.Equal(t, entry.HighConfidence, subset.HighConfidence)
	assert.Equal(t, entry.Subcategories, subset.Subcategories)
	assert.Len(t, subset.Supervisors, 1)

	// The original is untouched
	assert.Equal(t, 2, entry.TotalSupervisors)
}

func TestClusterEntry_SupervisorsIn(t *testing.T) {
	entry := entities.NewClusterEntry("Systems")
	entry.Add(entities.SupervisorSummary{Name: "Alice", Confidence: valueobjects.ConfidenceHigh, Subcategories: []string{"Networking", "OS"}})
	entry.Add(entities.SupervisorSummary{Name: "Bob", Confidence: valueobjects.ConfidenceHigh, Subcategories: []string{"OS"}})
	entry.Finalize()

	members := entry.SupervisorsIn("Networking")
	assert.Len(t, members, 1)
	assert.Equal(t, "Alice", members[0].Name)

	assert.Len(t, entry.SupervisorsIn("OS"), 2)
	assert.Empty(t, entry.SupervisorsIn("Databases"))
}

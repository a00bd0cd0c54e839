package services_test

import (
	"testing"

	"superviseme/application/services"
	"superviseme/domain/core/entities"
	"superviseme/domain/core/valueobjects"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// overlapIndex builds three clusters where AI and Systems share two
// subcategories, AI and Theory share one, and Systems/Theory share none.
func overlapIndex(t *testing.T) map[string]*entities.ClusterEntry {
	t.Helper()

	build := func(name string, subcats []string) *entities.ClusterEntry {
		entry := entities.NewClusterEntry(name)
		entry.Add(entities.SupervisorSummary{Name: name + " prof", Confidence: valueobjects.ConfidenceHigh, Subcategories: subcats})
		entry.Finalize()
		return entry
	}

	return map[string]*entities.ClusterEntry{
		"AI":      build("AI", []string{"ML Systems", "Optimization", "Learning Theory"}),
		"Systems": build("Systems", []string{"ML Systems", "Optimization", "Networking"}),
		"Theory":  build("Theory", []string{"Learning Theory", "Complexity"}),
	}
}

func TestOverlap_Analyze(t *testing.T) {
	// Act
	report, err := services.NewOverlap().Analyze(overlapIndex(t))
	require.NoError(t, err)

	// Assert: two overlapping pairs, sorted by shared count descending
	require.Len(t, report.Pairs, 2)

	top := report.Pairs[0]
	assert.Equal(t, "AI", top.Source)
	assert.Equal(t, "Systems", top.Target)
	assert.Equal(t, 2, top.SharedCount)
	assert.Equal(t, []string{"ML Systems", "Optimization"}, top.SharedSubcategories)

	second := report.Pairs[1]
	assert.Equal(t, "AI", second.Source)
	assert.Equal(t, "Theory", second.Target)
	assert.Equal(t, 1, second.SharedCount)
}

func TestOverlap_Degrees(t *testing.T) {
	report, err := services.NewOverlap().Analyze(overlapIndex(t))
	require.NoError(t, err)

	assert.Equal(t, 2, report.Degrees["AI"])
	assert.Equal(t, 1, report.Degrees["Systems"])
	assert.Equal(t, 1, report.Degrees["Theory"])
}

func TestOverlap_NoSharedSubcategories(t *testing.T) {
	index := map[string]*entities.ClusterEntry{
		"A": entities.NewClusterEntry("A"),
		"B": entities.NewClusterEntry("B"),
	}
	index["A"].Add(entities.SupervisorSummary{Name: "x", Subcategories: []string{"one"}})
	index["B"].Add(entities.SupervisorSummary{Name: "y", Subcategories: []string{"two"}})
	index["A"].Finalize()
	index["B"].Finalize()

	report, err := services.NewOverlap().Analyze(index)
	require.NoError(t, err)

	assert.Empty(t, report.Pairs)
	assert.Equal(t, 0, report.Degrees["A"])
	assert.Equal(t, 0, report.Degrees["B"])
}

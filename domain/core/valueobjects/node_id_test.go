package valueobjects_test

import (
	"encoding/json"
	"testing"

	"superviseme/domain/core/valueobjects"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeID_Deterministic(t *testing.T) {
	// Act
	first := valueobjects.SupervisorNodeID("Systems", "Networking", "Dr. Alice Smith")
	second := valueobjects.SupervisorNodeID("Systems", "Networking", "Dr. Alice Smith")

	// Assert
	assert.True(t, first.Equals(second))
	assert.Equal(t, first.String(), second.String())
}

func TestNodeID_KindPrefix(t *testing.T) {
	assert.Equal(t, valueobjects.KindCluster, valueobjects.ClusterNodeID("Systems").Kind())
	assert.Equal(t, valueobjects.KindSubcategory, valueobjects.SubcategoryNodeID("Systems", "Networking").Kind())
	assert.Equal(t, valueobjects.KindSupervisor, valueobjects.SupervisorNodeID("Systems", "Networking", "Alice").Kind())
}

func TestNodeID_SeparatorInNamesCannotCollide(t *testing.T) {
	// "AI/ML" as a cluster must not produce the same ID as cluster "AI"
	// with subcategory "ML".
	withSlash := valueobjects.SubcategoryNodeID("AI/ML", "Vision")
	nested := valueobjects.SupervisorNodeID("AI", "ML", "Vision")

	assert.NotEqual(t, withSlash.String(), nested.String())
}

func TestNodeID_Expandable(t *testing.T) {
	assert.True(t, valueobjects.KindCluster.Expandable())
	assert.True(t, valueobjects.KindSubcategory.Expandable())
	assert.False(t, valueobjects.KindSupervisor.Expandable())
}

func TestNewNodeIDFromString(t *testing.T) {
	// Round trip through the wire representation
	original := valueobjects.SubcategoryNodeID("Systems", "Networking")
	parsed, err := valueobjects.NewNodeIDFromString(original.String())
	require.NoError(t, err)
	assert.True(t, original.Equals(parsed))
	assert.Equal(t, valueobjects.KindSubcategory, parsed.Kind())

	// Rejections
	_, err = valueobjects.NewNodeIDFromString("")
	assert.Error(t, err)

	_, err = valueobjects.NewNodeIDFromString("no-kind-prefix")
	assert.Error(t, err)

	_, err = valueobjects.NewNodeIDFromString("galaxy:Systems")
	assert.Error(t, err)
}

func TestNodeID_JSON(t *testing.T) {
	id := valueobjects.ClusterNodeID("Theory")

	data, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, `"cluster:Theory"`, string(data))

	var decoded valueobjects.NodeID
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, id.Equals(decoded))
}

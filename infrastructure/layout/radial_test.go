package layout_test

import (
	"math"
	"testing"

	"superviseme/domain/core/aggregates"
	"superviseme/domain/core/entities"
	"superviseme/domain/core/valueobjects"
	"superviseme/infrastructure/layout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func layoutGraph(t *testing.T) ([]*entities.GraphNode, []*aggregates.Link) {
	t.Helper()

	systems := entities.NewClusterEntry("Systems")
	systems.Add(entities.SupervisorSummary{Name: "Alice", Confidence: valueobjects.ConfidenceHigh, Subcategories: []string{"Networking"}})
	systems.Finalize()

	theory := entities.NewClusterEntry("Theory")
	theory.Add(entities.SupervisorSummary{Name: "Carol", Confidence: valueobjects.ConfidenceHigh, Subcategories: []string{"Complexity"}})
	theory.Finalize()

	g, err := aggregates.NewGraph(map[string]*entities.ClusterEntry{
		"Systems": systems,
		"Theory":  theory,
	})
	require.NoError(t, err)
	g.ExpandAll()
	return g.Nodes(), g.Links()
}

func TestRadial_PositionsEveryNode(t *testing.T) {
	nodes, links := layoutGraph(t)

	positions := layout.NewRadial().Layout(nodes, links)

	require.Len(t, positions, len(nodes))
	for _, node := range nodes {
		_, ok := positions[node.ID]
		assert.True(t, ok, "node %s has no position", node.ID)
	}
}

func TestRadial_ClustersSitOnRing(t *testing.T) {
	nodes, links := layoutGraph(t)

	positions := layout.NewRadial().Layout(nodes, links)

	var radii []float64
	for _, node := range nodes {
		if node.Kind != valueobjects.KindCluster {
			continue
		}
		pos := positions[node.ID]
		radii = append(radii, math.Hypot(pos.X, pos.Y))
	}

	require.Len(t, radii, 2)
	assert.InDelta(t, radii[0], radii[1], 0.001)
	assert.Greater(t, radii[0], 0.0)
}

func TestRadial_ChildrenNearParent(t *testing.T) {
	nodes, links := layoutGraph(t)

	positions := layout.NewRadial().Layout(nodes, links)

	subID := valueobjects.SubcategoryNodeID("Systems", "Networking")
	clusterPos := positions[valueobjects.ClusterNodeID("Systems")]
	subPos := positions[subID]

	dist := math.Hypot(subPos.X-clusterPos.X, subPos.Y-clusterPos.Y)
	assert.Less(t, dist, 200.0)
	assert.Greater(t, dist, 0.0)
}

func TestRadial_Deterministic(t *testing.T) {
	nodes, links := layoutGraph(t)
	strategy := layout.NewRadial()

	first := strategy.Layout(nodes, links)
	second := strategy.Layout(nodes, links)

	require.Len(t, second, len(first))
	for id, pos := range first {
		assert.Equal(t, pos, second[id])
	}
}

// Package layout provides position seeding for the browser's force
// simulation. Strategies here only read the node/link data contract; the
// physics itself stays in the presentation layer.
package layout

import (
	"math"

	"superviseme/application/ports"
	"superviseme/domain/core/aggregates"
	"superviseme/domain/core/entities"
	"superviseme/domain/core/valueobjects"
)

// Ring radii per hierarchy level, in simulation units around the origin.
// The client recenters and rescales, only the relative structure matters.
const (
	clusterRadius     = 420.0
	subcategoryRadius = 140.0
	supervisorRadius  = 55.0
)

// Radial is the default layout strategy: clusters evenly spaced on a ring,
// each node's children fanned around it. Deterministic for a given node set,
// so re-rendering after expand/collapse keeps untouched nodes in place.
type Radial struct{}

// NewRadial creates the radial strategy
func NewRadial() *Radial {
	return &Radial{}
}

// Layout implements ports.LayoutStrategy
func (rl *Radial) Layout(nodes []*entities.GraphNode, links []*aggregates.Link) map[valueobjects.NodeID]ports.Position {
	positions := make(map[valueobjects.NodeID]ports.Position, len(nodes))

	parents := make(map[valueobjects.NodeID]valueobjects.NodeID, len(links))
	children := make(map[valueobjects.NodeID][]valueobjects.NodeID, len(links))
	for _, link := range links {
		parents[link.Target] = link.Source
		children[link.Source] = append(children[link.Source], link.Target)
	}

	// Clusters first: a fixed ring, ordered by identifier. Nodes arrive
	// sorted, so angular placement is stable across calls.
	var clusters []*entities.GraphNode
	for _, node := range nodes {
		if node.Kind == valueobjects.KindCluster {
			clusters = append(clusters, node)
		}
	}
	for i, node := range clusters {
		angle := 2 * math.Pi * float64(i) / float64(len(clusters))
		positions[node.ID] = ports.Position{
			X: clusterRadius * math.Cos(angle),
			Y: clusterRadius * math.Sin(angle),
		}
	}

	// Children fan around their parent, outward from the ring center so
	// expanded subtrees don't fold back onto the middle of the canvas.
	for _, node := range nodes {
		if node.Kind == valueobjects.KindCluster {
			continue
		}
		parentID, ok := parents[node.ID]
		if !ok {
			continue
		}
		parentPos := positions[parentID]

		siblings := children[parentID]
		idx := indexOf(siblings, node.ID)
		radius := subcategoryRadius
		if node.Kind == valueobjects.KindSupervisor {
			radius = supervisorRadius
		}

		base := math.Atan2(parentPos.Y, parentPos.X)
		spread := math.Pi // half-circle fan facing outward
		angle := base - spread/2 + spread*fraction(idx, len(siblings))

		positions[node.ID] = ports.Position{
			X: parentPos.X + radius*math.Cos(angle),
			Y: parentPos.Y + radius*math.Sin(angle),
		}
	}

	return positions
}

func indexOf(ids []valueobjects.NodeID, id valueobjects.NodeID) int {
	for i, candidate := range ids {
		if candidate.Equals(id) {
			return i
		}
	}
	return 0
}

func fraction(i, n int) float64 {
	if n <= 1 {
		return 0.5
	}
	return float64(i) / float64(n-1)
}

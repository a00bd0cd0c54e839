package entities

import (
	"superviseme/domain/core/valueobjects"
)

// GraphNode is one node of the visualization graph. It is owned exclusively
// by the Graph aggregate; the layout adapter reads these records and keeps
// positions on its own side, it never alters identity, kind or expand state.
type GraphNode struct {
	ID    valueobjects.NodeID   `json:"id"`
	Label string                `json:"label"`
	Kind  valueobjects.NodeKind `json:"kind"`

	// Size is the visual weight: monotonic in member count, clamped to a
	// per-kind range.
	Size int `json:"size"`

	// Expanded is meaningful only for cluster and subcategory nodes.
	Expanded bool `json:"expanded"`

	// Scope locates the node in the hierarchy so cascading removal on
	// collapse can find descendants without walking links.
	Cluster     string `json:"cluster"`
	Subcategory string `json:"subcategory,omitempty"`

	// Kind-specific payload.
	SupervisorCount int                     `json:"supervisor_count,omitempty"`
	Confidence      valueobjects.Confidence `json:"confidence,omitempty"`
	EvidenceCount   int                     `json:"evidence_count,omitempty"`
	ThesisCount     int                     `json:"thesis_count,omitempty"`
}

// Sizing constants per node kind. Clusters render largest, subcategories
// smaller, supervisors are fixed-size leaves.
const (
	clusterSizeMin   = 30
	clusterSizeMax   = 60
	clusterSizeScale = 3

	subcategorySizeMin   = 14
	subcategorySizeMax   = 34
	subcategorySizeScale = 2

	supervisorSize = 8
)

func clampSize(min, max, v int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// NewClusterNode builds the node for a top-level research area
func NewClusterNode(cluster string, supervisorCount int) *GraphNode {
	return &GraphNode{
		ID:              valueobjects.ClusterNodeID(cluster),
		Label:           cluster,
		Kind:            valueobjects.KindCluster,
		Size:            clampSize(clusterSizeMin, clusterSizeMax, clusterSizeScale*supervisorCount),
		Cluster:         cluster,
		SupervisorCount: supervisorCount,
	}
}

// NewSubcategoryNode builds the node for a subcategory scoped to its cluster,
// sized by how many of the cluster's supervisors carry it
func NewSubcategoryNode(cluster, subcategory string, supervisorCount int) *GraphNode {
	return &GraphNode{
		ID:              valueobjects.SubcategoryNodeID(cluster, subcategory),
		Label:           subcategory,
		Kind:            valueobjects.KindSubcategory,
		Size:            clampSize(subcategorySizeMin, subcategorySizeMax, subcategorySizeScale*supervisorCount),
		Cluster:         cluster,
		Subcategory:     subcategory,
		SupervisorCount: supervisorCount,
	}
}

// NewSupervisorNode builds the leaf node for a supervisor under
// (cluster, subcategory)
func NewSupervisorNode(cluster, subcategory string, s SupervisorSummary) *GraphNode {
	return &GraphNode{
		ID:            valueobjects.SupervisorNodeID(cluster, subcategory, s.Name),
		Label:         s.Name,
		Kind:          valueobjects.KindSupervisor,
		Size:          supervisorSize,
		Cluster:       cluster,
		Subcategory:   subcategory,
		Confidence:    s.Confidence,
		EvidenceCount: s.EvidenceCount,
		ThesisCount:   s.ThesisCount,
	}
}

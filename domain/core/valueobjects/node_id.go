package valueobjects

import (
	"errors"
	"net/url"
	"strings"
)

// NodeKind identifies the three levels of the visualization hierarchy
type NodeKind string

const (
	KindCluster     NodeKind = "cluster"
	KindSubcategory NodeKind = "subcategory"
	KindSupervisor  NodeKind = "supervisor"
)

// Expandable reports whether nodes of this kind carry expand/collapse state.
// Supervisor nodes are terminal leaves.
func (k NodeKind) Expandable() bool {
	return k == KindCluster || k == KindSubcategory
}

// NodeID is a value object identifying a graph node. The identifier is
// derived deterministically from the node's path in the hierarchy
// (cluster → subcategory → supervisor), so rebuilding the same node after a
// collapse always yields the same identifier, and names that happen to share
// a prefix cannot collide: each path segment is escaped before joining.
type NodeID struct {
	value string
}

// escapeSegment keeps the path separator out of individual names
func escapeSegment(s string) string {
	return url.PathEscape(s)
}

// ClusterNodeID derives the identifier for a cluster node
func ClusterNodeID(cluster string) NodeID {
	return NodeID{value: string(KindCluster) + ":" + escapeSegment(cluster)}
}

// SubcategoryNodeID derives the identifier for a subcategory node scoped to
// its owning cluster
func SubcategoryNodeID(cluster, subcategory string) NodeID {
	return NodeID{value: string(KindSubcategory) + ":" + escapeSegment(cluster) + "/" + escapeSegment(subcategory)}
}

// SupervisorNodeID derives the identifier for a supervisor node scoped to
// (cluster, subcategory, supervisor name)
func SupervisorNodeID(cluster, subcategory, supervisor string) NodeID {
	return NodeID{value: string(KindSupervisor) + ":" + escapeSegment(cluster) + "/" + escapeSegment(subcategory) + "/" + escapeSegment(supervisor)}
}

// NewNodeIDFromString wraps an identifier received from the presentation
// layer. Only the shape is checked; existence is the graph's concern.
func NewNodeIDFromString(id string) (NodeID, error) {
	if id == "" {
		return NodeID{}, errors.New("node ID cannot be empty")
	}
	kind, _, found := strings.Cut(id, ":")
	if !found {
		return NodeID{}, errors.New("node ID missing kind prefix")
	}
	switch NodeKind(kind) {
	case KindCluster, KindSubcategory, KindSupervisor:
		return NodeID{value: id}, nil
	}
	return NodeID{}, errors.New("unknown node kind in ID: " + kind)
}

// Kind extracts the node kind encoded in the identifier
func (id NodeID) Kind() NodeKind {
	kind, _, _ := strings.Cut(id.value, ":")
	return NodeKind(kind)
}

// String returns the string representation of the NodeID
func (id NodeID) String() string {
	return id.value
}

// Equals checks if two NodeIDs are equal
func (id NodeID) Equals(other NodeID) bool {
	return id.value == other.value
}

// IsZero checks if the NodeID is the zero value
func (id NodeID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id NodeID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *NodeID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("NodeID must be a string")
	}
	id.value = string(data[1 : len(data)-1])
	return nil
}

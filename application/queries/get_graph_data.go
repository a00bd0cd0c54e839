package queries

import (
	"superviseme/domain/core/entities"
	apperrors "superviseme/pkg/errors"
)

// GetGraphDataQuery asks for one session's current node/link arrays,
// optionally with positions from a named layout strategy
type GetGraphDataQuery struct {
	SessionID string `json:"session_id"`
	Layout    string `json:"layout,omitempty"`
}

// Validate validates the query
func (q GetGraphDataQuery) Validate() error {
	if q.SessionID == "" {
		return apperrors.NewValidationError("sessionID is required")
	}
	return nil
}

// GraphNodeDTO is a graph node plus the transient position seed the layout
// strategy computed for it. Positions live only here; the domain node never
// carries them.
type GraphNodeDTO struct {
	entities.GraphNode
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Fixed bool    `json:"fixed,omitempty"`
}

// GraphLinkDTO is one containment link in wire form
type GraphLinkDTO struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// GraphStats summarizes the materialized graph
type GraphStats struct {
	NodeCount int `json:"node_count"`
	LinkCount int `json:"link_count"`
	Version   int `json:"version"`
}

// GetGraphDataResult is the full payload the force-directed view renders
type GetGraphDataResult struct {
	SessionID string         `json:"session_id"`
	Nodes     []GraphNodeDTO `json:"nodes"`
	Links     []GraphLinkDTO `json:"links"`
	Stats     GraphStats     `json:"stats"`
}

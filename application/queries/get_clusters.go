package queries

import (
	"superviseme/domain/core/entities"
	"superviseme/domain/core/valueobjects"
	apperrors "superviseme/pkg/errors"
)

// GetClustersQuery asks for the cluster index filtered by confidence level
// and/or free-text search term, ready for card rendering
type GetClustersQuery struct {
	Confidence string `json:"confidence,omitempty"`
	Search     string `json:"search,omitempty"`
}

// Validate validates the query
func (q GetClustersQuery) Validate() error {
	if _, err := valueobjects.ParseConfidenceFilter(q.Confidence); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	return nil
}

// GetClustersResult is the filtered view plus the aggregates the card grid
// header shows
type GetClustersResult struct {
	Clusters         []*entities.ClusterEntry `json:"clusters"`
	TotalClusters    int                      `json:"total_clusters"`
	TotalSupervisors int                      `json:"total_supervisors"`
	Confidence       string                   `json:"confidence"`
	Search           string                   `json:"search,omitempty"`
}

// GetClusterQuery asks for a single cluster entry by name
type GetClusterQuery struct {
	Name string `json:"name"`
}

// Validate validates the query
func (q GetClusterQuery) Validate() error {
	if q.Name == "" {
		return apperrors.NewValidationError("cluster name is required")
	}
	return nil
}

package queries

import apperrors "superviseme/pkg/errors"

// GetSupervisorQuery asks for one full supervisor record for the detail view
type GetSupervisorQuery struct {
	ID string `json:"id"`
}

// Validate validates the query
func (q GetSupervisorQuery) Validate() error {
	if q.ID == "" {
		return apperrors.NewValidationError("supervisor identifier is required")
	}
	return nil
}

// GetStatsQuery asks for the aggregate dataset statistics
type GetStatsQuery struct{}

// Validate validates the query
func (q GetStatsQuery) Validate() error {
	return nil
}

// GetStatsResult carries the header numbers of the visualization
type GetStatsResult struct {
	TotalSupervisors   int    `json:"total_supervisors"`
	TotalClusters      int    `json:"total_clusters"`
	TotalSubcategories int    `json:"total_subcategories"`
	RecordCount        int    `json:"record_count"`
	LoadedAt           string `json:"loaded_at"`
}

// GetOverlapsQuery asks for the cluster overlap analytics
type GetOverlapsQuery struct{}

// Validate validates the query
func (q GetOverlapsQuery) Validate() error {
	return nil
}

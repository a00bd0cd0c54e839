package handlers

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"superviseme/application/queries"
	"superviseme/application/queries/bus"
	"superviseme/application/services"
	"superviseme/domain/core/entities"
	"superviseme/domain/core/valueobjects"
	apperrors "superviseme/pkg/errors"
)

// GetClustersHandler resolves the filtered cluster view: confidence filter
// first, then search over its result
type GetClustersHandler struct {
	state  *services.DatasetState
	filter *services.Filter
	logger *zap.Logger
}

// NewGetClustersHandler creates a new handler
func NewGetClustersHandler(state *services.DatasetState, filter *services.Filter, logger *zap.Logger) *GetClustersHandler {
	return &GetClustersHandler{state: state, filter: filter, logger: logger}
}

// Handle implements bus.QueryHandler
func (h *GetClustersHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetClustersQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", query)
	}

	if !h.state.Ready() {
		return nil, apperrors.NewUnavailableError("dataset")
	}

	level, err := valueobjects.ParseConfidenceFilter(q.Confidence)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	view := h.filter.ByConfidence(h.state.Index(), level)
	view = h.filter.BySearch(view, q.Search)

	clusters := make([]*entities.ClusterEntry, 0, len(view))
	totalSupervisors := 0
	for _, entry := range view {
		clusters = append(clusters, entry)
		totalSupervisors += entry.TotalSupervisors
	}
	sort.Slice(clusters, func(i, j int) bool { return clusters[i].Name < clusters[j].Name })

	return &queries.GetClustersResult{
		Clusters:         clusters,
		TotalClusters:    len(clusters),
		TotalSupervisors: totalSupervisors,
		Confidence:       level.String(),
		Search:           q.Search,
	}, nil
}

// GetClusterHandler resolves a single cluster entry by name
type GetClusterHandler struct {
	state  *services.DatasetState
	logger *zap.Logger
}

// NewGetClusterHandler creates a new handler
func NewGetClusterHandler(state *services.DatasetState, logger *zap.Logger) *GetClusterHandler {
	return &GetClusterHandler{state: state, logger: logger}
}

// Handle implements bus.QueryHandler
func (h *GetClusterHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetClusterQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", query)
	}

	if !h.state.Ready() {
		return nil, apperrors.NewUnavailableError("dataset")
	}

	entry, exists := h.state.Index()[q.Name]
	if !exists {
		return nil, apperrors.NewNotFoundError("cluster")
	}
	return entry, nil
}

package handlers

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"superviseme/application/queries"
	"superviseme/application/queries/bus"
	"superviseme/application/services"
	apperrors "superviseme/pkg/errors"
)

// GetStatsHandler computes the aggregate numbers shown above the card grid.
// Supervisors are counted once even when classified into several clusters;
// subcategories are distinct across the whole index.
type GetStatsHandler struct {
	state  *services.DatasetState
	logger *zap.Logger
}

// NewGetStatsHandler creates a new handler
func NewGetStatsHandler(state *services.DatasetState, logger *zap.Logger) *GetStatsHandler {
	return &GetStatsHandler{state: state, logger: logger}
}

// Handle implements bus.QueryHandler
func (h *GetStatsHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	if _, ok := query.(queries.GetStatsQuery); !ok {
		return nil, fmt.Errorf("unexpected query type %T", query)
	}

	if !h.state.Ready() {
		return nil, apperrors.NewUnavailableError("dataset")
	}

	index := h.state.Index()
	supervisors := make(map[string]struct{})
	subcategories := make(map[string]struct{})
	for _, entry := range index {
		for _, s := range entry.Supervisors {
			supervisors[s.Name] = struct{}{}
		}
		for _, sub := range entry.Subcategories {
			subcategories[sub] = struct{}{}
		}
	}

	return &queries.GetStatsResult{
		TotalSupervisors:   len(supervisors),
		TotalClusters:      len(index),
		TotalSubcategories: len(subcategories),
		RecordCount:        h.state.RecordCount(),
		LoadedAt:           h.state.LoadedAt().Format(time.RFC3339),
	}, nil
}

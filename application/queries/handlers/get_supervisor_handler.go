package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"superviseme/application/queries"
	"superviseme/application/queries/bus"
	"superviseme/application/services"
	apperrors "superviseme/pkg/errors"
)

// GetSupervisorHandler resolves a full supervisor record for the detail view
type GetSupervisorHandler struct {
	state  *services.DatasetState
	logger *zap.Logger
}

// NewGetSupervisorHandler creates a new handler
func NewGetSupervisorHandler(state *services.DatasetState, logger *zap.Logger) *GetSupervisorHandler {
	return &GetSupervisorHandler{state: state, logger: logger}
}

// Handle implements bus.QueryHandler
func (h *GetSupervisorHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetSupervisorQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", query)
	}

	if !h.state.Ready() {
		return nil, apperrors.NewUnavailableError("dataset")
	}

	return h.state.Record(q.ID)
}

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

// GetOverlapsHandler resolves the cluster overlap analytics
type GetOverlapsHandler struct {
	state   *services.DatasetState
	overlap *services.Overlap
	logger  *zap.Logger
}

// NewGetOverlapsHandler creates a new handler
func NewGetOverlapsHandler(state *services.DatasetState, overlap *services.Overlap, logger *zap.Logger) *GetOverlapsHandler {
	return &GetOverlapsHandler{state: state, overlap: overlap, logger: logger}
}

// Handle implements bus.QueryHandler
func (h *GetOverlapsHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	if _, ok := query.(queries.GetOverlapsQuery); !ok {
		return nil, fmt.Errorf("unexpected query type %T", query)
	}

	if !h.state.Ready() {
		return nil, apperrors.NewUnavailableError("dataset")
	}

	report, err := h.overlap.Analyze(h.state.Index())
	if err != nil {
		h.logger.Error("Overlap analysis failed", zap.Error(err))
		return nil, apperrors.NewInternalError("overlap analysis failed").WithCause(err)
	}
	return report, nil
}

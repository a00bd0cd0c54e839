package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"superviseme/application/queries"
	querybus "superviseme/application/queries/bus"
	"superviseme/pkg/common"
	apperrors "superviseme/pkg/errors"
)

// StatsHandler serves the aggregate dataset statistics and the cluster
// overlap analytics
type StatsHandler struct {
	queryBus *querybus.QueryBus
	errs     *apperrors.ErrorHandler
	logger   *zap.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(queryBus *querybus.QueryBus, errs *apperrors.ErrorHandler, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		queryBus: queryBus,
		errs:     errs,
		logger:   logger,
	}
}

// GetStats handles GET /stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetStatsQuery{})
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// GetOverlaps handles GET /overlaps
func (h *StatsHandler) GetOverlaps(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetOverlapsQuery{})
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

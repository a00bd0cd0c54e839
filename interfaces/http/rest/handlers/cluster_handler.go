package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"superviseme/application/queries"
	querybus "superviseme/application/queries/bus"
	"superviseme/pkg/common"
	apperrors "superviseme/pkg/errors"
	"superviseme/pkg/observability"
)

// ClusterHandler serves the filtered cluster index for card rendering
type ClusterHandler struct {
	queryBus *querybus.QueryBus
	metrics  *observability.Collector
	errs     *apperrors.ErrorHandler
	logger   *zap.Logger
}

// NewClusterHandler creates a new cluster handler
func NewClusterHandler(queryBus *querybus.QueryBus, metrics *observability.Collector, errs *apperrors.ErrorHandler, logger *zap.Logger) *ClusterHandler {
	return &ClusterHandler{
		queryBus: queryBus,
		metrics:  metrics,
		errs:     errs,
		logger:   logger,
	}
}

// ListClusters handles GET /clusters?confidence=&q=
func (h *ClusterHandler) ListClusters(w http.ResponseWriter, r *http.Request) {
	query := queries.GetClustersQuery{
		Confidence: r.URL.Query().Get("confidence"),
		Search:     r.URL.Query().Get("q"),
	}

	if query.Search != "" {
		h.metrics.SearchQueries.Inc()
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// GetCluster handles GET /clusters/{clusterName}
func (h *ClusterHandler) GetCluster(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "clusterName")
	if name == "" {
		h.errs.Handle(w, r, apperrors.NewValidationError("cluster name is required"))
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetClusterQuery{Name: name})
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

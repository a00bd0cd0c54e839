package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"superviseme/application/queries"
	querybus "superviseme/application/queries/bus"
	"superviseme/pkg/common"
	apperrors "superviseme/pkg/errors"
)

// SupervisorHandler serves full supervisor records for the detail modal
type SupervisorHandler struct {
	queryBus *querybus.QueryBus
	errs     *apperrors.ErrorHandler
	logger   *zap.Logger
}

// NewSupervisorHandler creates a new supervisor handler
func NewSupervisorHandler(queryBus *querybus.QueryBus, errs *apperrors.ErrorHandler, logger *zap.Logger) *SupervisorHandler {
	return &SupervisorHandler{
		queryBus: queryBus,
		errs:     errs,
		logger:   logger,
	}
}

// GetSupervisor handles GET /supervisors/{supervisorID}
func (h *SupervisorHandler) GetSupervisor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "supervisorID")
	if unescaped, err := url.PathUnescape(id); err == nil {
		id = unescaped
	}
	if id == "" {
		h.errs.Handle(w, r, apperrors.NewValidationError("supervisor identifier is required"))
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetSupervisorQuery{ID: id})
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

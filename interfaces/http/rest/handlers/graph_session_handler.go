package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"superviseme/application/commands"
	commandbus "superviseme/application/commands/bus"
	"superviseme/application/queries"
	querybus "superviseme/application/queries/bus"
	"superviseme/application/services"
	"superviseme/pkg/common"
	apperrors "superviseme/pkg/errors"
	"superviseme/pkg/observability"
)

// GraphSessionHandler owns the graph session lifecycle and the
// expand/collapse operations the node-click events map to
type GraphSessionHandler struct {
	commandBus *commandbus.CommandBus
	queryBus   *querybus.QueryBus
	sessions   *services.SessionManager
	state      *services.DatasetState
	metrics    *observability.Collector
	errs       *apperrors.ErrorHandler
	logger     *zap.Logger
}

// NewGraphSessionHandler creates a new graph session handler
func NewGraphSessionHandler(
	commandBus *commandbus.CommandBus,
	queryBus *querybus.QueryBus,
	sessions *services.SessionManager,
	state *services.DatasetState,
	metrics *observability.Collector,
	errs *apperrors.ErrorHandler,
	logger *zap.Logger,
) *GraphSessionHandler {
	return &GraphSessionHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		sessions:   sessions,
		state:      state,
		metrics:    metrics,
		errs:       errs,
		logger:     logger,
	}
}

// CreateSession handles POST /sessions
func (h *GraphSessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	if !h.state.Ready() {
		h.errs.Handle(w, r, apperrors.NewUnavailableError("dataset"))
		return
	}

	session, err := h.sessions.Create(h.state.Index())
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}
	h.metrics.SessionsActive.Set(float64(h.sessions.Count()))

	common.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"session_id": session.ID,
		"created_at": session.CreatedAt,
	})
}

// GetGraphData handles GET /sessions/{sessionID}/graph
func (h *GraphSessionHandler) GetGraphData(w http.ResponseWriter, r *http.Request) {
	query := queries.GetGraphDataQuery{
		SessionID: chi.URLParam(r, "sessionID"),
		Layout:    r.URL.Query().Get("layout"),
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// ExpandNode handles POST /sessions/{sessionID}/nodes/{nodeID}/expand
func (h *GraphSessionHandler) ExpandNode(w http.ResponseWriter, r *http.Request) {
	cmd := commands.ExpandNodeCommand{
		SessionID: chi.URLParam(r, "sessionID"),
		NodeID:    nodeIDParam(r),
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errs.Handle(w, r, err)
		return
	}
	h.metrics.GraphExpands.Inc()

	h.respondGraph(w, r, cmd.SessionID)
}

// CollapseNode handles POST /sessions/{sessionID}/nodes/{nodeID}/collapse
func (h *GraphSessionHandler) CollapseNode(w http.ResponseWriter, r *http.Request) {
	cmd := commands.CollapseNodeCommand{
		SessionID: chi.URLParam(r, "sessionID"),
		NodeID:    nodeIDParam(r),
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errs.Handle(w, r, err)
		return
	}
	h.metrics.GraphCollapses.Inc()

	h.respondGraph(w, r, cmd.SessionID)
}

// ExpandAll handles POST /sessions/{sessionID}/expand-all
func (h *GraphSessionHandler) ExpandAll(w http.ResponseWriter, r *http.Request) {
	cmd := commands.ExpandAllCommand{SessionID: chi.URLParam(r, "sessionID")}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errs.Handle(w, r, err)
		return
	}
	h.metrics.GraphExpands.Inc()

	h.respondGraph(w, r, cmd.SessionID)
}

// CollapseAll handles POST /sessions/{sessionID}/collapse-all
func (h *GraphSessionHandler) CollapseAll(w http.ResponseWriter, r *http.Request) {
	cmd := commands.CollapseAllCommand{SessionID: chi.URLParam(r, "sessionID")}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errs.Handle(w, r, err)
		return
	}
	h.metrics.GraphCollapses.Inc()

	h.respondGraph(w, r, cmd.SessionID)
}

// EndSession handles DELETE /sessions/{sessionID}
func (h *GraphSessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	cmd := commands.EndSessionCommand{SessionID: chi.URLParam(r, "sessionID")}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errs.Handle(w, r, err)
		return
	}
	h.metrics.SessionsActive.Set(float64(h.sessions.Count()))

	w.WriteHeader(http.StatusNoContent)
}

// nodeIDParam reads the node identifier path segment. Node IDs embed "/"
// between hierarchy levels, so clients send them percent-encoded.
func nodeIDParam(r *http.Request) string {
	raw := chi.URLParam(r, "nodeID")
	if id, err := url.PathUnescape(raw); err == nil {
		return id
	}
	return raw
}

// respondGraph returns the post-operation graph so the client renders the
// new state without a second round trip
func (h *GraphSessionHandler) respondGraph(w http.ResponseWriter, r *http.Request, sessionID string) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetGraphDataQuery{SessionID: sessionID})
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

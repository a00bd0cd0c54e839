package handlers

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"superviseme/application/commands"
	"superviseme/application/commands/bus"
	"superviseme/application/services"
	"superviseme/domain/core/aggregates"
	"superviseme/domain/core/valueobjects"
	apperrors "superviseme/pkg/errors"
)

// mapGraphError translates aggregate sentinel errors into the application
// error taxonomy. Precondition violations leave the graph untouched, so a
// 409 response is informational, never a corruption signal.
func mapGraphError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, aggregates.ErrNodeNotFound):
		return apperrors.NewNotFoundError("node")
	case errors.Is(err, aggregates.ErrNotExpandable),
		errors.Is(err, aggregates.ErrAlreadyExpanded),
		errors.Is(err, aggregates.ErrAlreadyCollapsed):
		return apperrors.NewPreconditionError(err.Error())
	}
	return err
}

// ExpandNodeHandler handles ExpandNodeCommand
type ExpandNodeHandler struct {
	sessions *services.SessionManager
	logger   *zap.Logger
}

// NewExpandNodeHandler creates a new handler
func NewExpandNodeHandler(sessions *services.SessionManager, logger *zap.Logger) *ExpandNodeHandler {
	return &ExpandNodeHandler{sessions: sessions, logger: logger}
}

// Handle implements bus.CommandHandler
func (h *ExpandNodeHandler) Handle(ctx context.Context, cmd bus.Command) error {
	expand, ok := cmd.(commands.ExpandNodeCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", cmd)
	}

	session, err := h.sessions.Get(expand.SessionID)
	if err != nil {
		return err
	}

	nodeID, err := valueobjects.NewNodeIDFromString(expand.NodeID)
	if err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	err = session.WithGraph(func(g *aggregates.Graph) error {
		return g.Expand(nodeID)
	})
	if err != nil {
		h.logger.Warn("Expand rejected",
			zap.String("sessionID", expand.SessionID),
			zap.String("nodeID", expand.NodeID),
			zap.Error(err),
		)
		return mapGraphError(err)
	}

	return nil
}

// CollapseNodeHandler handles CollapseNodeCommand
type CollapseNodeHandler struct {
	sessions *services.SessionManager
	logger   *zap.Logger
}

// NewCollapseNodeHandler creates a new handler
func NewCollapseNodeHandler(sessions *services.SessionManager, logger *zap.Logger) *CollapseNodeHandler {
	return &CollapseNodeHandler{sessions: sessions, logger: logger}
}

// Handle implements bus.CommandHandler
func (h *CollapseNodeHandler) Handle(ctx context.Context, cmd bus.Command) error {
	collapse, ok := cmd.(commands.CollapseNodeCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", cmd)
	}

	session, err := h.sessions.Get(collapse.SessionID)
	if err != nil {
		return err
	}

	nodeID, err := valueobjects.NewNodeIDFromString(collapse.NodeID)
	if err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	err = session.WithGraph(func(g *aggregates.Graph) error {
		return g.Collapse(nodeID)
	})
	if err != nil {
		h.logger.Warn("Collapse rejected",
			zap.String("sessionID", collapse.SessionID),
			zap.String("nodeID", collapse.NodeID),
			zap.Error(err),
		)
		return mapGraphError(err)
	}

	return nil
}

// ExpandAllHandler handles ExpandAllCommand
type ExpandAllHandler struct {
	sessions *services.SessionManager
	logger   *zap.Logger
}

// NewExpandAllHandler creates a new handler
func NewExpandAllHandler(sessions *services.SessionManager, logger *zap.Logger) *ExpandAllHandler {
	return &ExpandAllHandler{sessions: sessions, logger: logger}
}

// Handle implements bus.CommandHandler
func (h *ExpandAllHandler) Handle(ctx context.Context, cmd bus.Command) error {
	expandAll, ok := cmd.(commands.ExpandAllCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", cmd)
	}

	session, err := h.sessions.Get(expandAll.SessionID)
	if err != nil {
		return err
	}

	return session.WithGraph(func(g *aggregates.Graph) error {
		g.ExpandAll()
		return nil
	})
}

// CollapseAllHandler handles CollapseAllCommand
type CollapseAllHandler struct {
	sessions *services.SessionManager
	logger   *zap.Logger
}

// NewCollapseAllHandler creates a new handler
func NewCollapseAllHandler(sessions *services.SessionManager, logger *zap.Logger) *CollapseAllHandler {
	return &CollapseAllHandler{sessions: sessions, logger: logger}
}

// Handle implements bus.CommandHandler
func (h *CollapseAllHandler) Handle(ctx context.Context, cmd bus.Command) error {
	collapseAll, ok := cmd.(commands.CollapseAllCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", cmd)
	}

	session, err := h.sessions.Get(collapseAll.SessionID)
	if err != nil {
		return err
	}

	return session.WithGraph(func(g *aggregates.Graph) error {
		g.CollapseAll()
		return nil
	})
}

// EndSessionHandler handles EndSessionCommand
type EndSessionHandler struct {
	sessions *services.SessionManager
	logger   *zap.Logger
}

// NewEndSessionHandler creates a new handler
func NewEndSessionHandler(sessions *services.SessionManager, logger *zap.Logger) *EndSessionHandler {
	return &EndSessionHandler{sessions: sessions, logger: logger}
}

// Handle implements bus.CommandHandler
func (h *EndSessionHandler) Handle(ctx context.Context, cmd bus.Command) error {
	end, ok := cmd.(commands.EndSessionCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", cmd)
	}

	if err := h.sessions.Delete(end.SessionID); err != nil {
		return err
	}

	h.logger.Debug("Graph session ended", zap.String("sessionID", end.SessionID))
	return nil
}

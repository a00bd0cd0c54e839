package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"superviseme/application/ports"
	"superviseme/application/queries"
	"superviseme/application/queries/bus"
	"superviseme/application/services"
	"superviseme/domain/core/aggregates"
)

// GetGraphDataHandler reads one session's node/link arrays and attaches
// position seeds from the layout strategy. The snapshot is taken under the
// session lock, so a concurrent expand never yields a half-updated view.
type GetGraphDataHandler struct {
	sessions *services.SessionManager
	layout   ports.LayoutStrategy
	logger   *zap.Logger
}

// NewGetGraphDataHandler creates a new handler
func NewGetGraphDataHandler(sessions *services.SessionManager, layout ports.LayoutStrategy, logger *zap.Logger) *GetGraphDataHandler {
	return &GetGraphDataHandler{sessions: sessions, layout: layout, logger: logger}
}

// Handle implements bus.QueryHandler
func (h *GetGraphDataHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetGraphDataQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", query)
	}

	session, err := h.sessions.Get(q.SessionID)
	if err != nil {
		return nil, err
	}

	var result *queries.GetGraphDataResult
	err = session.WithGraph(func(g *aggregates.Graph) error {
		nodes := g.Nodes()
		links := g.Links()
		positions := h.layout.Layout(nodes, links)

		nodeDTOs := make([]queries.GraphNodeDTO, 0, len(nodes))
		for _, node := range nodes {
			pos := positions[node.ID]
			nodeDTOs = append(nodeDTOs, queries.GraphNodeDTO{
				GraphNode: *node,
				X:         pos.X,
				Y:         pos.Y,
				Fixed:     pos.Fixed,
			})
		}

		linkDTOs := make([]queries.GraphLinkDTO, 0, len(links))
		for _, link := range links {
			linkDTOs = append(linkDTOs, queries.GraphLinkDTO{
				Source: link.Source.String(),
				Target: link.Target.String(),
			})
		}

		result = &queries.GetGraphDataResult{
			SessionID: q.SessionID,
			Nodes:     nodeDTOs,
			Links:     linkDTOs,
			Stats: queries.GraphStats{
				NodeCount: g.NodeCount(),
				LinkCount: g.LinkCount(),
				Version:   g.Version(),
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

package ports

import (
	"context"

	"superviseme/domain/core/aggregates"
	"superviseme/domain/core/entities"
	"superviseme/domain/core/valueobjects"
)

// DatasetRepository loads the classification dataset produced by the
// upstream pipeline. This is a port in hexagonal architecture - the core
// never performs the fetch itself, it receives parsed records.
type DatasetRepository interface {
	// LoadRecords reads the full dataset. Returns a LoadFailure-typed error
	// when the source is unreachable or unparsable, EmptyDatasetError when it
	// parses but contains no records at all.
	LoadRecords(ctx context.Context) (map[string]*entities.SupervisorRecord, error)
}

// Position is an on-screen coordinate produced by a layout strategy.
// Fixed marks positions the presentation layer should pin rather than let
// the simulation move.
type Position struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Fixed bool    `json:"fixed,omitempty"`
}

// LayoutStrategy computes positions for the current node/link arrays. The
// graph model never depends on layout internals; a strategy only reads the
// node and link data and returns a position per node identifier. The default
// implementation seeds the browser's force simulation, it does not run
// physics.
type LayoutStrategy interface {
	Layout(nodes []*entities.GraphNode, links []*aggregates.Link) map[valueobjects.NodeID]Position
}

// Cache provides caching for derived query results
type Cache interface {
	Get(ctx context.Context, key string) (interface{}, bool)
	Set(ctx context.Context, key string, value interface{}, ttlSeconds int) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

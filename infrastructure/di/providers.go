package di

import (
	"time"

	"superviseme/application/commands"
	"superviseme/application/commands/bus"
	commands_handlers "superviseme/application/commands/handlers"
	"superviseme/application/ports"
	"superviseme/application/queries"
	querybus "superviseme/application/queries/bus"
	queries_handlers "superviseme/application/queries/handlers"
	"superviseme/application/services"
	"superviseme/infrastructure/config"
	"superviseme/infrastructure/layout"
	"superviseme/infrastructure/persistence/jsonfile"
	"superviseme/pkg/observability"
	"superviseme/pkg/ratelimit"

	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideMetrics creates the Prometheus collector
func ProvideMetrics() *observability.Collector {
	return observability.NewCollector("superviseme")
}

// ProvideDatasetRepository creates the JSON file dataset repository
func ProvideDatasetRepository(cfg *config.Config, logger *zap.Logger) ports.DatasetRepository {
	return jsonfile.NewDatasetRepository(cfg.DatasetPath, logger)
}

// ProvideIndexer creates the dataset indexer
func ProvideIndexer() *services.Indexer {
	return services.NewIndexer()
}

// ProvideFilter creates the filter engine
func ProvideFilter() *services.Filter {
	return services.NewFilter()
}

// ProvideOverlap creates the cluster overlap analyzer
func ProvideOverlap() *services.Overlap {
	return services.NewOverlap()
}

// ProvideDatasetState creates the shared dataset state holder
func ProvideDatasetState(indexer *services.Indexer, logger *zap.Logger) *services.DatasetState {
	return services.NewDatasetState(indexer, logger)
}

// ProvideSessionManager creates the session manager with the configured TTL
func ProvideSessionManager(cfg *config.Config, logger *zap.Logger) *services.SessionManager {
	return services.NewSessionManager(cfg.SessionTTL(), logger)
}

// ProvideLayoutStrategy creates the default layout strategy. The radial
// layout only seeds initial positions; the browser's force simulation
// takes over from there.
func ProvideLayoutStrategy() ports.LayoutStrategy {
	return layout.NewRadial()
}

// ProvideRateLimiter creates a token bucket rate limiter sized from config
func ProvideRateLimiter(cfg *config.Config) ratelimit.RateLimiter {
	refill := cfg.RateLimitWindow() / time.Duration(cfg.RateLimitRequests)
	return ratelimit.NewTokenBucketLimiter(cfg.RateLimitRequests, refill)
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(sessions *services.SessionManager, logger *zap.Logger) (*bus.CommandBus, error) {
	commandBus := bus.NewCommandBus()

	registrations := []struct {
		cmd     bus.Command
		handler bus.CommandHandler
	}{
		{commands.ExpandNodeCommand{}, commands_handlers.NewExpandNodeHandler(sessions, logger)},
		{commands.CollapseNodeCommand{}, commands_handlers.NewCollapseNodeHandler(sessions, logger)},
		{commands.ExpandAllCommand{}, commands_handlers.NewExpandAllHandler(sessions, logger)},
		{commands.CollapseAllCommand{}, commands_handlers.NewCollapseAllHandler(sessions, logger)},
		{commands.EndSessionCommand{}, commands_handlers.NewEndSessionHandler(sessions, logger)},
	}

	for _, r := range registrations {
		if err := commandBus.Register(r.cmd, r.handler); err != nil {
			return nil, err
		}
	}

	return commandBus, nil
}

// ProvideQueryBus creates a query bus with registered handlers. Stats and
// overlap queries are wrapped with the caching middleware since they walk
// the whole index on every call; cluster queries stay uncached so search
// results always reflect the live index.
func ProvideQueryBus(
	state *services.DatasetState,
	filter *services.Filter,
	overlap *services.Overlap,
	sessions *services.SessionManager,
	layoutStrategy ports.LayoutStrategy,
	cache ports.Cache,
	cfg *config.Config,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	queryBus := querybus.NewQueryBus()
	caching := querybus.NewCachingMiddleware(cache, cfg.CacheTTLSeconds)

	registrations := []struct {
		query   querybus.Query
		handler querybus.QueryHandler
	}{
		{queries.GetClustersQuery{}, queries_handlers.NewGetClustersHandler(state, filter, logger)},
		{queries.GetClusterQuery{}, queries_handlers.NewGetClusterHandler(state, logger)},
		{queries.GetSupervisorQuery{}, queries_handlers.NewGetSupervisorHandler(state, logger)},
		{queries.GetStatsQuery{}, caching.Wrap(queries_handlers.NewGetStatsHandler(state, logger))},
		{queries.GetOverlapsQuery{}, caching.Wrap(queries_handlers.NewGetOverlapsHandler(state, overlap, logger))},
		{queries.GetGraphDataQuery{}, queries_handlers.NewGetGraphDataHandler(sessions, layoutStrategy, logger)},
	}

	for _, r := range registrations {
		if err := queryBus.Register(r.query, r.handler); err != nil {
			return nil, err
		}
	}

	return queryBus, nil
}

// ProvideInMemoryCache creates a simple in-memory cache
// In production, this would be Redis or similar
func ProvideInMemoryCache() ports.Cache {
	return NewInMemoryCache()
}

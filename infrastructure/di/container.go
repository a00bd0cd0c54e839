package di

import (
	"github.com/google/wire"
	"go.uber.org/zap"
	"superviseme/application/commands/bus"
	"superviseme/application/ports"
	querybus "superviseme/application/queries/bus"
	"superviseme/application/services"
	"superviseme/infrastructure/config"
	"superviseme/pkg/observability"
	"superviseme/pkg/ratelimit"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	Repository  ports.DatasetRepository
	State       *services.DatasetState
	Sessions    *services.SessionManager
	Filter      *services.Filter
	Overlap     *services.Overlap
	Layout      ports.LayoutStrategy
	CommandBus  *bus.CommandBus
	QueryBus    *querybus.QueryBus
	Cache       ports.Cache
	Metrics     *observability.Collector
	RateLimiter ratelimit.RateLimiter
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideMetrics,
	ProvideDatasetRepository,
	ProvideIndexer,
	ProvideFilter,
	ProvideOverlap,
	ProvideDatasetState,
	ProvideSessionManager,
	ProvideLayoutStrategy,
	ProvideRateLimiter,
	ProvideCommandBus,
	ProvideQueryBus,
	ProvideInMemoryCache,
	wire.Struct(new(Container), "*"),
)

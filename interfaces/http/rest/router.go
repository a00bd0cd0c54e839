package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	commandbus "superviseme/application/commands/bus"
	querybus "superviseme/application/queries/bus"
	"superviseme/application/services"
	"superviseme/infrastructure/config"
	"superviseme/interfaces/http/rest/handlers"
	"superviseme/interfaces/http/rest/middleware"
	apperrors "superviseme/pkg/errors"
	"superviseme/pkg/observability"
	"superviseme/pkg/ratelimit"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg        *config.Config
	commandBus *commandbus.CommandBus
	queryBus   *querybus.QueryBus
	sessions   *services.SessionManager
	state      *services.DatasetState
	metrics    *observability.Collector
	limiter    ratelimit.RateLimiter
	logger     *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	commandBus *commandbus.CommandBus,
	queryBus *querybus.QueryBus,
	sessions *services.SessionManager,
	state *services.DatasetState,
	metrics *observability.Collector,
	limiter ratelimit.RateLimiter,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:        cfg,
		commandBus: commandBus,
		queryBus:   queryBus,
		sessions:   sessions,
		state:      state,
		metrics:    metrics,
		limiter:    limiter,
		logger:     logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	if rt.cfg.EnableMetrics {
		router.Use(middleware.Metrics(rt.metrics))
	}

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   rt.cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	// Health and observability
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	if rt.cfg.EnableMetrics {
		router.Method(http.MethodGet, "/metrics", rt.metrics.Handler())
	}

	errs := apperrors.NewErrorHandler(rt.logger, rt.cfg.IsDevelopment())

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(rt.limiter, rt.logger))

		// Cluster card view
		r.Route("/clusters", func(r chi.Router) {
			clusterHandler := handlers.NewClusterHandler(rt.queryBus, rt.metrics, errs, rt.logger)
			r.Get("/", clusterHandler.ListClusters)
			r.Get("/{clusterName}", clusterHandler.GetCluster)
		})

		// Supervisor detail view
		supervisorHandler := handlers.NewSupervisorHandler(rt.queryBus, errs, rt.logger)
		r.Get("/supervisors/{supervisorID}", supervisorHandler.GetSupervisor)

		// Aggregates
		statsHandler := handlers.NewStatsHandler(rt.queryBus, errs, rt.logger)
		r.Get("/stats", statsHandler.GetStats)
		r.Get("/overlaps", statsHandler.GetOverlaps)

		// Graph sessions
		r.Route("/sessions", func(r chi.Router) {
			graphHandler := handlers.NewGraphSessionHandler(
				rt.commandBus, rt.queryBus, rt.sessions, rt.state, rt.metrics, errs, rt.logger,
			)
			r.Post("/", graphHandler.CreateSession)
			r.Delete("/{sessionID}", graphHandler.EndSession)
			r.Get("/{sessionID}/graph", graphHandler.GetGraphData)
			r.Post("/{sessionID}/nodes/{nodeID}/expand", graphHandler.ExpandNode)
			r.Post("/{sessionID}/nodes/{nodeID}/collapse", graphHandler.CollapseNode)
			r.Post("/{sessionID}/expand-all", graphHandler.ExpandAll)
			r.Post("/{sessionID}/collapse-all", graphHandler.CollapseAll)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck reports ready only once the dataset is loaded and indexed.
// A load failure is terminal, so a not-ready answer after startup means the
// dataset is broken, not still loading.
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !rt.state.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"loading"}`))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}

package httpx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nadavyigal/originguard/internal/config"
	"github.com/nadavyigal/originguard/internal/cors"
	"github.com/nadavyigal/originguard/internal/policy"
)

// Context key for storing config in request context
type contextKey string

const ConfigContextKey contextKey = "config"

// Options carries the collaborators of the router. Zero values are usable:
// a nil Engine is built from cfg, a nil Gatherer disables /metrics and a
// nil Logger falls back to slog.Default().
type Options struct {
	Engine   *cors.Engine
	Gatherer prometheus.Gatherer
	Metrics  *Metrics
	Logger   *slog.Logger
}

// NewRouter creates and configures a new HTTP router with the given config
func NewRouter(cfg config.Config, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	engine := opts.Engine
	if engine == nil {
		engine = cors.NewEngine(config.Static(cfg.Snapshot()), cors.WithLogger(logger))
	}

	r := chi.NewRouter()

	// Add middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(opts.Metrics.instrument)

	// Add config to request context
	r.Use(configMiddleware(cfg))

	// Add HSTS header if enabled
	if cfg.EnableHSTS {
		r.Use(hstsMiddleware)
	}

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	// Routes
	r.Get(RouteHealth, healthzHandler)

	if opts.Gatherer != nil {
		r.Method(http.MethodGet, RouteMetrics, promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	// Debug endpoint (only in non-prod environments)
	if cfg.Environment() != policy.EnvProduction {
		r.Get(RouteDebugCORS, debugCORSHandler(engine))
	}

	// Everything under /api is subject to origin validation. The middleware
	// answers preflights itself, so no OPTIONS routes are registered.
	r.Route(RouteAPI, func(r chi.Router) {
		r.Use(WithAPISecurityHeaders)
		r.Use(engine.Middleware)
		r.Get(RoutePing, pingHandler)
	})

	return r
}

// configMiddleware adds the config to the request context
func configMiddleware(cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), ConfigContextKey, cfg)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetConfigFromContext retrieves the config from the request context
func GetConfigFromContext(ctx context.Context) (config.Config, bool) {
	cfg, ok := ctx.Value(ConfigContextKey).(config.Config)
	return cfg, ok
}

func pingHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

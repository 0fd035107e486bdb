package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jusunglee/cyrtranslit/internal/db"
	"github.com/jusunglee/cyrtranslit/internal/health"
	"github.com/jusunglee/cyrtranslit/internal/web/handlers"
	"github.com/jusunglee/cyrtranslit/internal/web/middleware"
)

// Config holds router options that come from flags.
type Config struct {
	AllowedOrigins []string
	RateLimit      int
	RateWindow     time.Duration
	// AdminAPIKey guards history pruning; empty disables the route.
	AdminAPIKey string
}

type Router struct {
	repo db.Repository
	log  *slog.Logger
	cfg  Config
}

// NewRouter wires the API. A nil repo turns off the history routes.
func NewRouter(repo db.Repository, log *slog.Logger, cfg Config) *Router {
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 60
	}
	if cfg.RateWindow <= 0 {
		cfg.RateWindow = time.Minute
	}
	return &Router{repo: repo, log: log, cfg: cfg}
}

// Handler builds the mux. The rate limiter's cleanup stops with ctx.
func (r *Router) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()

	convertHandler := handlers.NewConvertHandler(r.repo, r.log)
	rateLimiter := middleware.NewRateLimiter(ctx, r.cfg.RateLimit, r.cfg.RateWindow)

	mux.Handle("GET /api/v1/standards",
		middleware.Chain(
			http.HandlerFunc(convertHandler.Standards),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.CacheControl("public, max-age=3600"),
		),
	)

	mux.Handle("POST /api/v1/convert",
		middleware.Chain(
			http.HandlerFunc(convertHandler.Convert),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.RateLimit(rateLimiter),
		),
	)

	if r.repo != nil {
		historyHandler := handlers.NewHistoryHandler(r.repo, r.log)

		mux.Handle("GET /api/v1/conversions",
			middleware.Chain(
				http.HandlerFunc(historyHandler.List),
				middleware.PrometheusMetrics(),
				middleware.RequestLogger(r.log),
				middleware.CacheControl("public, s-maxage=5, max-age=0"),
			),
		)

		mux.Handle("GET /api/v1/conversions/stats",
			middleware.Chain(
				http.HandlerFunc(historyHandler.Stats),
				middleware.PrometheusMetrics(),
				middleware.RequestLogger(r.log),
				middleware.CacheControl("public, s-maxage=5, max-age=0"),
			),
		)

		mux.Handle("GET /api/v1/conversions/{id}",
			middleware.Chain(
				http.HandlerFunc(historyHandler.Get),
				middleware.PrometheusMetrics(),
				middleware.RequestLogger(r.log),
				middleware.CacheControl("public, s-maxage=5, max-age=0"),
			),
		)

		if r.cfg.AdminAPIKey != "" {
			mux.Handle("DELETE /api/v1/conversions",
				middleware.Chain(
					http.HandlerFunc(historyHandler.Prune),
					middleware.PrometheusMetrics(),
					middleware.RequestLogger(r.log),
					middleware.APIKeyAuth(r.cfg.AdminAPIKey),
				),
			)
		}
	}

	var pingers []health.Pinger
	if r.repo != nil {
		pingers = append(pingers, r.repo)
	}
	mux.Handle("GET /health", health.Handler(pingers...))

	return middleware.CORS(r.cfg.AllowedOrigins)(mux)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jusunglee/cyrtranslit/internal/db"
	"github.com/jusunglee/cyrtranslit/internal/db/postgres"
	"github.com/jusunglee/cyrtranslit/internal/db/sqlite"
	"github.com/jusunglee/cyrtranslit/internal/logger"
	"github.com/jusunglee/cyrtranslit/internal/metrics"
	"github.com/jusunglee/cyrtranslit/internal/web"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
	slog.Info("exiting without error")
}

func mainE() error {
	_ = godotenv.Load()

	fs_ := ff.NewFlagSet("translit-web")

	var (
		port             = fs_.Int64Long("port", 3000, "HTTP server port")
		databaseURL      = fs_.StringLong("database-url", "", "sqlite://path or postgres:// URL for conversion history (empty disables history)")
		historyRetention = fs_.DurationLong("history-retention", 0, "delete history older than this (0 keeps forever)")
		rateLimit        = fs_.IntLong("rate-limit", 60, "convert requests allowed per IP per window")
		rateWindow       = fs_.DurationLong("rate-window", time.Minute, "rate limit window")
		allowedOrigins   = fs_.StringLong("allowed-origins", "", "Comma-separated list of allowed CORS origins")
		adminAPIKey      = fs_.StringLong("admin-api-key", "", "API key for history pruning (empty disables the endpoint)")
	)

	if err := ff.Parse(fs_, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs_))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.Init()

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	repo, err := openRepository(ctx, *databaseURL, log)
	if err != nil {
		return err
	}
	if repo != nil {
		defer repo.Close()
	}

	if pg, ok := repo.(*postgres.Repository); ok {
		go exportPoolStats(ctx, pg)
	}
	if repo != nil && *historyRetention > 0 {
		go pruneHistory(ctx, repo, *historyRetention, log)
	}

	var origins []string
	if *allowedOrigins != "" {
		for _, o := range strings.Split(*allowedOrigins, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	router := web.NewRouter(repo, log, web.Config{
		AllowedOrigins: origins,
		RateLimit:      *rateLimit,
		RateWindow:     *rateWindow,
		AdminAPIKey:    *adminAPIKey,
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router.Handler(ctx))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.InfoContext(ctx, "received signal, shutting down gracefully", "signal", sig)
		cancel(errors.New("signal received"))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.ErrorContext(ctx, "server shutdown error", "error", err)
		}
	}()

	log.InfoContext(ctx, "starting web server", "port", *port, "history", repo != nil)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// openRepository returns nil, nil when databaseURL is empty.
func openRepository(ctx context.Context, databaseURL string, log *slog.Logger) (db.Repository, error) {
	switch {
	case databaseURL == "":
		log.InfoContext(ctx, "no database-url, conversion history disabled")
		return nil, nil
	case strings.HasPrefix(databaseURL, "sqlite://"):
		repo, err := sqlite.New(ctx, databaseURL)
		if err != nil {
			return nil, fmt.Errorf("opening SQLite database: %w", err)
		}
		log.InfoContext(ctx, "using SQLite database", "path", strings.TrimPrefix(databaseURL, "sqlite://"))
		return repo, nil
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		repo, err := postgres.New(ctx, databaseURL)
		if err != nil {
			return nil, fmt.Errorf("creating PostgreSQL connection: %w", err)
		}
		log.InfoContext(ctx, "connected to PostgreSQL database")
		return repo, nil
	}
	return nil, fmt.Errorf("unsupported database-url scheme: %q", databaseURL)
}

// exportPoolStats publishes pgxpool stats as Prometheus gauges.
func exportPoolStats(ctx context.Context, repo *postgres.Repository) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s := repo.PoolStats()
			metrics.DBPoolTotalConns.Set(float64(s.TotalConns()))
			metrics.DBPoolIdleConns.Set(float64(s.IdleConns()))
			metrics.DBPoolAcquiredConns.Set(float64(s.AcquiredConns()))
			metrics.DBPoolMaxConns.Set(float64(s.MaxConns()))
		case <-ctx.Done():
			return
		}
	}
}

func pruneHistory(ctx context.Context, repo db.Repository, retention time.Duration, log *slog.Logger) {
	interval := min(retention, time.Hour)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-retention)
			deleted, err := repo.DeleteConversionsBefore(ctx, cutoff)
			if err != nil {
				log.ErrorContext(ctx, "pruning conversion history", "error", err)
				continue
			}
			metrics.HistoryPruned.Add(float64(deleted))
			if deleted > 0 {
				log.InfoContext(ctx, "pruned conversion history", "deleted", deleted, "cutoff", cutoff)
			}
		case <-ctx.Done():
			return
		}
	}
}

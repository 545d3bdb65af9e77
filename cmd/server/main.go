package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/nadavyigal/originguard/internal/config"
	"github.com/nadavyigal/originguard/internal/cors"
	httpx "github.com/nadavyigal/originguard/internal/http"
	"github.com/nadavyigal/originguard/internal/monitor"
	"github.com/nadavyigal/originguard/internal/origin"
	"github.com/nadavyigal/originguard/internal/policy"
)

// newLogger returns a JSON logger in production and a text logger elsewhere.
func newLogger(cfg config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Environment() == policy.EnvProduction {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func main() {
	cfg := config.FromEnv()
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	// Invalid configuration is fatal in production only.
	if err := cfg.Validate(); err != nil {
		if cfg.Environment() == policy.EnvProduction {
			logger.Error("invalid configuration", "error", err)
			os.Exit(1)
		}
		logger.Warn("invalid configuration", "error", err)
	}
	for _, p := range cfg.OriginPatterns {
		for _, w := range origin.LintPattern(p) {
			logger.Warn("origin pattern lint", "pattern", p, "warning", w)
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	engine := cors.NewEngine(config.NewLoader(nil),
		cors.WithLogger(logger),
		cors.WithSink(monitor.LogSink{Logger: logger}),
		cors.WithMetrics(monitor.NewMetrics(reg)),
	)

	router := httpx.NewRouter(cfg, httpx.Options{
		Engine:   engine,
		Gatherer: reg,
		Metrics:  httpx.NewMetrics(reg),
		Logger:   logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", "config", cfg)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}

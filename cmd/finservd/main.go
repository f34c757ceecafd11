// Command finservd serves the financial-services module catalog and proxies
// agent runs to the execution backend.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/ich-youness/Financial-Services-OS/internal/adapter/agentrun"
	fshttp "github.com/ich-youness/Financial-Services-OS/internal/adapter/http"
	fsotel "github.com/ich-youness/Financial-Services-OS/internal/adapter/otel"
	"github.com/ich-youness/Financial-Services-OS/internal/adapter/postgres"
	"github.com/ich-youness/Financial-Services-OS/internal/adapter/ristretto"
	"github.com/ich-youness/Financial-Services-OS/internal/adapter/ws"
	"github.com/ich-youness/Financial-Services-OS/internal/config"
	"github.com/ich-youness/Financial-Services-OS/internal/domain/catalog"
	"github.com/ich-youness/Financial-Services-OS/internal/logger"
	"github.com/ich-youness/Financial-Services-OS/internal/middleware"
	"github.com/ich-youness/Financial-Services-OS/internal/resilience"
	"github.com/ich-youness/Financial-Services-OS/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log := logger.New(cfg.Logging)
	slog.SetDefault(log)

	slog.Info("config loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Logging.Level,
		"executor_url", cfg.Executor.URL,
	)

	ctx := context.Background()

	// --- Telemetry ---
	shutdownOtel, err := fsotel.Setup(ctx, cfg.Logging.Service, cfg.Otel.Endpoint, cfg.Otel.Enabled)
	if err != nil {
		return fmt.Errorf("otel: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownOtel(shutdownCtx)
	}()

	metrics, err := fsotel.NewMetrics()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	// --- Catalog ---
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	slog.Info("catalog loaded", "modules", len(cat.Modules))

	// --- Infrastructure ---
	pool, err := postgres.NewPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	defer pool.Close()
	slog.Info("postgres connected")

	if err := postgres.RunMigrations(ctx, cfg.Postgres.DSN); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	slog.Info("migrations applied")

	l1, err := ristretto.New(cfg.Cache.MaxSizeMB << 20)
	if err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	defer l1.Close()

	// --- Execution backend ---
	breaker := resilience.NewBreaker(cfg.Breaker.MaxFailures, cfg.Breaker.Timeout)
	execClient := agentrun.NewClient(cfg.Executor.URL, cfg.Executor.Timeout)
	execClient.SetBreaker(breaker)
	execClient.SetPool(resilience.NewPool(cfg.Executor.MaxConcurrent))

	// --- Services ---
	hub := ws.NewHub()
	catalogSvc := service.NewCatalogService(*cat)
	formSvc := service.NewFormService()

	handlers := &fshttp.Handlers{
		Catalog:     catalogSvc,
		Forms:       formSvc,
		Nav:         service.NewNavService(catalogSvc),
		Invocations: service.NewInvocationService(catalogSvc, formSvc, execClient, hub, metrics, log),
		Prefs:       service.NewPrefsService(postgres.NewStore(pool), l1, cfg.Sidebar, cfg.Cache.PrefTTL),
	}

	// --- HTTP ---
	r := chi.NewRouter()

	r.Use(fshttp.CORS(cfg.Server.CORSOrigin))
	r.Use(fshttp.SecurityHeaders)
	r.Use(fshttp.Logger)
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(fsotel.HTTPMiddleware(cfg.Logging.Service))

	r.Get("/health", healthHandler(cfg, breaker))
	r.Get("/ws", hub.HandleWS)

	runLimiter := middleware.NewRateLimiter(2, 5)
	stopCleanup := runLimiter.StartCleanup(time.Minute, 10*time.Minute)
	defer stopCleanup()

	fshttp.MountRoutes(r, handlers, runLimiter)

	addr := ":" + cfg.Server.Port

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.Executor.Timeout + 30*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM or server failure.
	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		slog.Info("starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// healthHandler returns an http.HandlerFunc that reports service health.
func healthHandler(cfg *config.Config, breaker *resilience.Breaker) http.HandlerFunc {
	type healthStatus struct {
		Status   string `json:"status"`
		Executor string `json:"executor"`
		Breaker  string `json:"breaker"`
	}

	return func(w http.ResponseWriter, _ *http.Request) {
		status := healthStatus{
			Status:   "ok",
			Executor: cfg.Executor.URL,
			Breaker:  breaker.State(),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(status)
	}
}

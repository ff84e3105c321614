package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/tripkit/planner-api/internal/adapters/fixtures"
	"github.com/tripkit/planner-api/internal/adapters/httpapi"
	memactivityrepo "github.com/tripkit/planner-api/internal/adapters/memory/activityrepo"
	memexpenserepo "github.com/tripkit/planner-api/internal/adapters/memory/expenserepo"
	memidempotency "github.com/tripkit/planner-api/internal/adapters/memory/idempotency"
	memitineraryrepo "github.com/tripkit/planner-api/internal/adapters/memory/itineraryrepo"
	memsearchcatalog "github.com/tripkit/planner-api/internal/adapters/memory/searchcatalog"
	memtriprepo "github.com/tripkit/planner-api/internal/adapters/memory/triprepo"
	memuserrepo "github.com/tripkit/planner-api/internal/adapters/memory/userrepo"
	memvoterepo "github.com/tripkit/planner-api/internal/adapters/memory/voterepo"
	"github.com/tripkit/planner-api/internal/app/activities"
	"github.com/tripkit/planner-api/internal/app/collaboration"
	"github.com/tripkit/planner-api/internal/app/expenses"
	"github.com/tripkit/planner-api/internal/app/itineraries"
	"github.com/tripkit/planner-api/internal/app/search"
	"github.com/tripkit/planner-api/internal/app/trips"
	"github.com/tripkit/planner-api/internal/app/users"
	platformclock "github.com/tripkit/planner-api/internal/platform/clock"
	"github.com/tripkit/planner-api/internal/platform/config"
	"github.com/tripkit/planner-api/internal/platform/latency"
	"github.com/tripkit/planner-api/internal/platform/logger"
	"github.com/tripkit/planner-api/internal/platform/metrics"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	seed, err := fixtures.Load()
	if err != nil {
		return err
	}
	log.Info("fixtures loaded",
		"trips", len(seed.Trips),
		"itineraries", len(seed.Itineraries),
		"activities", len(seed.Activities),
		"expenses", len(seed.Expenses),
		"votes", len(seed.Votes),
		"search_items", len(seed.SearchItems),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(cfg.MetricsNamespace, reg)

	clk := platformclock.NewSystemClock()
	lat := latency.New(latency.DefaultProfile(), cfg.LatencyScale, latency.WithObserver(m.ObserveLatency))

	tripRepo := memtriprepo.NewRepo(seed.Trips...)
	activityRepo := memactivityrepo.NewRepo(seed.Activities...)
	svc := httpapi.Services{
		Trips:         trips.NewService(tripRepo, clk, lat),
		Itineraries:   itineraries.NewService(memitineraryrepo.NewRepo(seed.Itineraries...), activityRepo, clk, lat),
		Activities:    activities.NewService(activityRepo, clk, lat),
		Expenses:      expenses.NewService(memexpenserepo.NewRepo(seed.Expenses...), tripRepo, clk, lat),
		Collaboration: collaboration.NewService(memvoterepo.NewRepo(seed.Votes...), clk, lat),
		Search:        search.NewService(memsearchcatalog.NewCatalog(seed.SearchItems...), clk, lat),
		Users:         users.NewService(memuserrepo.NewRepo(seed.Profile, seed.Preferences), clk, lat),
	}
	idemStore := memidempotency.NewStore(clk, cfg.IdempotencyTTL)

	api := httpapi.NewServer(svc, idemStore, log, m)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           httpapi.NewRouter(api),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("api listening", "addr", srv.Addr, "latency_scale", cfg.LatencyScale)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

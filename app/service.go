// Package app assembles the allocation service from its configuration.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skystride/droneops/agent"
	"github.com/skystride/droneops/api/decisions"
	"github.com/skystride/droneops/api/roster"
	"github.com/skystride/droneops/config"
	"github.com/skystride/droneops/core/audit"
	"github.com/skystride/droneops/core/fleet"
	"github.com/skystride/droneops/core/matching"
	coremetrics "github.com/skystride/droneops/core/metrics"
	"github.com/skystride/droneops/core/reassign"
	"github.com/skystride/droneops/infra/csvstore"
	"github.com/skystride/droneops/infra/logger"

	// Register the built-in metrics sinks.
	_ "github.com/skystride/droneops/infra/metrics"
	"github.com/skystride/droneops/internal/eventbus"
)

// Service wires the fleet store, engines, coordinator agent and HTTP
// surface together.
type Service struct {
	Store *fleet.Store
	Agent *agent.Agent
	Match matching.Engine

	auditStore audit.Store
	apiAddr    string
	apiToken   string
	log        logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	auditStore, err := newAuditStore(cfg.Audit)
	if err != nil {
		return nil, fmt.Errorf("audit store: %w", err)
	}
	sink, err := coremetrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}

	bus := eventbus.New()
	store := fleet.NewStore(csvstore.New(cfg.Data.Dir), fleet.StoreOptions{
		Audit:   auditStore,
		Bus:     bus,
		Metrics: sink,
		Logger:  logg,
	})
	if err := store.Reload(context.Background()); err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	match := matching.Engine{Weights: cfg.Matching.Weights()}
	re := reassign.New(match, logg)

	return &Service{
		Store:      store,
		Agent:      agent.New(store, match, re, logg, sink),
		Match:      match,
		auditStore: auditStore,
		apiAddr:    cfg.API.Addr,
		apiToken:   cfg.API.Token,
		log:        logg,
	}, nil
}

func newAuditStore(cfg config.AuditConfig) (audit.Store, error) {
	switch cfg.Backend {
	case "sqlite":
		return audit.NewSQLiteStore(cfg.Path)
	default:
		return audit.NewJSONLStore(cfg.Path)
	}
}

// Handler builds the HTTP mux for the read API.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/pilots", roster.NewPilotsHandler(s.Store))
	mux.Handle("/api/drones", roster.NewDronesHandler(s.Store))
	mux.Handle("/api/missions", roster.NewMissionsHandler(s.Store))
	mux.Handle("/api/conflicts", roster.NewConflictsHandler(s.Store))
	mux.Handle("/api/candidates", roster.NewCandidatesHandler(s.Store, s.Match))
	mux.Handle("/api/summary", roster.NewSummaryHandler(s.Store))
	mux.Handle("/api/decisions", decisions.NewLogHandler(s.auditStore, s.apiToken))
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// Run serves the read API and blocks until the context is cancelled. With no
// API address configured it just waits.
func (s *Service) Run(ctx context.Context) error {
	if s.apiAddr == "" {
		<-ctx.Done()
		return nil
	}
	srv := &http.Server{Addr: s.apiAddr, Handler: s.Handler()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("api server shutdown: %v", err)
		}
	}()
	s.log.Infof("read API listening on %s", s.apiAddr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error { return s.Store.Close() }
